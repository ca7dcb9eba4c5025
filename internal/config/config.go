package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samvad-hq/samvad-account-client/pkg/httpclient"
	"github.com/spf13/viper"
)

// DefaultAPIBase is used when no api_base override is configured.
const DefaultAPIBase = httpclient.DefaultBaseURL

const defaultRequestTimeoutMs = 300000 // 5 minutes

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName          string        `mapstructure:"app_name"`
	Env              string        `mapstructure:"app_env"`
	LogLevel         string        `mapstructure:"log_level"`
	APIBase          string        `mapstructure:"api_base"`
	EndpointsFile    string        `mapstructure:"endpoints_file"`
	RequestTimeoutMs int64         `mapstructure:"request_timeout_ms"`
	RequestTimeout   time.Duration `mapstructure:"-"`
	MaxBodyBytes     int64         `mapstructure:"max_body_bytes"`

	SessionType  string `mapstructure:"session_type"`
	SessionPath  string `mapstructure:"session_path"`
	SessionToken string `mapstructure:"session_token" json:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "samvad-account-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base", "")
	v.SetDefault("endpoints_file", "")
	v.SetDefault("request_timeout_ms", defaultRequestTimeoutMs)
	v.SetDefault("max_body_bytes", httpclient.DefaultMaxBodyBytes)
	v.SetDefault("session_type", "bbolt")
	v.SetDefault("session_path", "./data/session.db")
	v.SetDefault("session_token", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIBase = ResolveBaseURL(cfg.APIBase)
	u, err := url.Parse(cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid api_base: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api_base %q (must be an absolute url)", cfg.APIBase)
	}

	if cfg.RequestTimeoutMs <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_ms (must be positive milliseconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutMs) * time.Millisecond

	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("invalid max_body_bytes (must be positive)")
	}

	cfg.SessionToken = strings.TrimSpace(cfg.SessionToken)
	return &cfg, nil
}

// ResolveBaseURL returns override when it is set, otherwise DefaultAPIBase.
func ResolveBaseURL(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	return DefaultAPIBase
}
