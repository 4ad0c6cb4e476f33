package config

import "github.com/spf13/viper"

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
