package config

import "github.com/spf13/viper"

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
	LevelFatal   logLevel = "FATAL"
)

type LoggerConfig struct {
	LogLevel   logLevel `mapstructure:"log_level" validate:"required"`
	OutputFile string   `mapstructure:"output_file" validate:"required"`
}

func (config LoggerConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("logger.log_level", "LOG_LEVEL")
}
