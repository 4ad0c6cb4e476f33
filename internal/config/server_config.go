package config

import "github.com/spf13/viper"

type ServerConfig struct {
	Port        int `mapstructure:"port" validate:"gt=0"`
	MetricsPort int `mapstructure:"metrics_port" validate:"gt=0"`
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.metrics_port", "METRICS_PORT")
}
