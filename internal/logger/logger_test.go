package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ablehire/jobs-api/internal/config"
)

func Test_Setup_OpensLogFileForCleanup(t *testing.T) {
	t.Cleanup(func() {
		Cleanup()
		logFile = nil
		_ = os.RemoveAll("./logs")
	})

	Setup(config.LoggerConfig{
		LogLevel:   config.LevelInfo,
		OutputFile: "test.log",
	})

	assert.NotNil(t, logFile)

	_, err := logFile.WriteString("ping\n")
	assert.NoError(t, err)
}
