package config

import (
	"time"

	"github.com/spf13/viper"
)

type SearchConfig struct {
	// APIKey may be empty: the service then serves its fallback payload
	// instead of calling the upstream provider.
	APIKey                       string  `mapstructure:"api_key"`
	CacheTTLMs                   int     `mapstructure:"cache_ttl_ms" validate:"gt=0"`
	UpstreamMaxRequestsPerSecond float32 `mapstructure:"upstream_max_requests_per_second" validate:"gt=0"`
	HistoryRetentionInDays       int     `mapstructure:"history_retention_days" validate:"gt=0"`
}

func (config SearchConfig) CacheTTL() time.Duration {
	return time.Duration(config.CacheTTLMs) * time.Millisecond
}

func (config SearchConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("search.api_key", "JSEARCH_API_KEY"); err != nil {
		return err
	}

	if err := viper.BindEnv("search.cache_ttl_ms", "CACHE_TTL_MS"); err != nil {
		return err
	}

	if err := viper.BindEnv("search.upstream_max_requests_per_second", "UPSTREAM_MAX_REQUESTS_PER_SECOND"); err != nil {
		return err
	}

	return viper.BindEnv("search.history_retention_days", "HISTORY_RETENTION_DAYS")
}
