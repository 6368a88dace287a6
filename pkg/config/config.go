package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/greenloop/greenloop-go/pkg/env"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	API        APIConfig
	Tokens     TokenStoreConfig
	Redis      RedisConfig
	LocalStore LocalStoreConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.ensureBaseURL(); err != nil {
		return nil, err
	}
	if err := cfg.Tokens.validate(); err != nil {
		return nil, err
	}
	if err := cfg.LocalStore.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GREENLOOP_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"GREENLOOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GREENLOOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type APIConfig struct {
	BaseURL           string        `envconfig:"GREENLOOP_API_URL"`
	Timeout           time.Duration `envconfig:"GREENLOOP_HTTP_TIMEOUT" default:"0s"`
	ValidateResponses bool          `envconfig:"GREENLOOP_VALIDATE_RESPONSES" default:"true"`
	UserAgent         string        `envconfig:"GREENLOOP_USER_AGENT" default:"greenloop-go"`
}

// ensureBaseURL resolves the backend URL, falling back to the frontend's
// NEXT_PUBLIC_API_URL or a bare API_URL so both deployments share one .env file.
func (a *APIConfig) ensureBaseURL() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		a.BaseURL = env.First(EnvPublicAPIURL, EnvBareAPIURL)
	}
	if a.BaseURL == "" {
		a.BaseURL = DefaultAPIURL
	}
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", EnvAPIURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) url, got %q", EnvAPIURL, a.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host", EnvAPIURL)
	}
	return nil
}

type TokenStoreConfig struct {
	Kind string `envconfig:"GREENLOOP_TOKEN_STORE" default:"local"`
}

func (t TokenStoreConfig) validate() error {
	switch strings.ToLower(t.Kind) {
	case TokenStoreMemory, TokenStoreLocal, TokenStoreRedis:
		return nil
	default:
		return fmt.Errorf("%s must be one of %s, %s, %s; got %q", EnvTokenStore, TokenStoreMemory, TokenStoreLocal, TokenStoreRedis, t.Kind)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"GREENLOOP_REDIS_URL"`
	Address      string        `envconfig:"GREENLOOP_REDIS_ADDR"`
	Password     string        `envconfig:"GREENLOOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GREENLOOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GREENLOOP_REDIS_POOL_SIZE" default:"4"`
	MinIdleConns int           `envconfig:"GREENLOOP_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"GREENLOOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GREENLOOP_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"GREENLOOP_REDIS_WRITE_TIMEOUT" default:"3s"`
	Namespace    string        `envconfig:"GREENLOOP_REDIS_NAMESPACE" default:"gl"`
	Profile      string        `envconfig:"GREENLOOP_REDIS_PROFILE" default:"default"`
}

type LocalStoreConfig struct {
	Driver          string        `envconfig:"GREENLOOP_LOCAL_DRIVER" default:"sqlite"`
	DSN             string        `envconfig:"GREENLOOP_LOCAL_DSN" default:"greenloop.db"`
	AutoMigrate     bool          `envconfig:"GREENLOOP_LOCAL_AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"GREENLOOP_LOCAL_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"GREENLOOP_LOCAL_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"GREENLOOP_LOCAL_CONN_MAX_LIFETIME" default:"0s"`
}

func (l LocalStoreConfig) validate() error {
	switch strings.ToLower(l.Driver) {
	case LocalDriverSQLite, LocalDriverPostgres:
	default:
		return fmt.Errorf("%s must be %s or %s; got %q", EnvLocalDriver, LocalDriverSQLite, LocalDriverPostgres, l.Driver)
	}
	if strings.TrimSpace(l.DSN) == "" {
		return fmt.Errorf("%s is required", EnvLocalDSN)
	}
	return nil
}
