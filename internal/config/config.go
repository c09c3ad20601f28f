// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL         string `mapstructure:"api_base_url"`
	RefreshIntervalSec int    `mapstructure:"refresh_interval_sec"`
	HistoryDays        int    `mapstructure:"history_days"`
	RequestTimeoutSec  int    `mapstructure:"request_timeout_sec"`
	StartupTimeoutSec  int    `mapstructure:"startup_timeout_sec"`
	DebugLogging       bool   `mapstructure:"debug_logging"`
	LogFile            string `mapstructure:"log_file"`
}

const (
	DefaultAPIBaseURL      = "http://127.0.0.1:8000"
	DefaultRefreshInterval = 30
	DefaultHistoryDays     = 30
	DefaultRequestTimeout  = 10
	DefaultStartupTimeout  = 60
)

// RefreshInterval returns the refresh period as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSec) * time.Second
}

// RequestTimeout returns the per-request HTTP timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// StartupTimeout returns how long to wait for the bot API at startup.
func (c *Config) StartupTimeout() time.Duration {
	return time.Duration(c.StartupTimeoutSec) * time.Second
}

// LoadConfig reads the config file at path. A missing file is fine:
// every field has a usable default and environment variables still
// apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"api_base_url":         DefaultAPIBaseURL,
		"refresh_interval_sec": DefaultRefreshInterval,
		"history_days":         DefaultHistoryDays,
		"request_timeout_sec":  DefaultRequestTimeout,
		"startup_timeout_sec":  DefaultStartupTimeout,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound *os.PathError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.APIBaseURL == "" {
		return errors.New("missing api_base_url in configuration")
	}
	if err := validateHTTPURL(cfg.APIBaseURL); err != nil {
		return err
	}
	return validateNumericParams(cfg)
}

func validateNumericParams(cfg *Config) error {
	if cfg.RefreshIntervalSec <= 0 {
		return errors.New("invalid refresh_interval_sec")
	}
	if cfg.HistoryDays <= 0 {
		return errors.New("invalid history_days")
	}
	if cfg.RequestTimeoutSec <= 0 {
		return errors.New("invalid request_timeout_sec")
	}
	if cfg.StartupTimeoutSec <= 0 {
		return errors.New("invalid startup_timeout_sec")
	}
	return nil
}

func validateHTTPURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid api_base_url format")
	}
	if !strings.HasPrefix(parsed.Scheme, "http") {
		return errors.New("api_base_url must use HTTP or HTTPS")
	}
	if parsed.Host == "" {
		return errors.New("api_base_url is missing a host")
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	v.AutomaticEnv()
	v.SetEnvPrefix("FUNDING_MONITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if envURL := v.GetString("API_BASE_URL"); envURL != "" {
		cfg.APIBaseURL = envURL
	}
	if envLogFile := v.GetString("LOG_FILE"); envLogFile != "" {
		cfg.LogFile = envLogFile
	}
	return nil
}
