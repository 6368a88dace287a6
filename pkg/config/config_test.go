package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvPublicAPIURL, "")
	t.Setenv(EnvBareAPIURL, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.API.BaseURL != DefaultAPIURL {
		t.Fatalf("expected default base url, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Fatalf("expected no timeout by default, got %v", cfg.API.Timeout)
	}
	if cfg.Tokens.Kind != TokenStoreLocal {
		t.Fatalf("expected local token store, got %q", cfg.Tokens.Kind)
	}
	if cfg.LocalStore.Driver != "sqlite" {
		t.Fatalf("unexpected local driver %q", cfg.LocalStore.Driver)
	}
}

func TestLoad_PublicURLFallback(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvPublicAPIURL, "https://api.greenloop.test/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.greenloop.test" {
		t.Fatalf("expected trimmed fallback url, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_ExplicitURLWins(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://backend:9000")
	t.Setenv(EnvPublicAPIURL, "https://ignored.test")
	t.Setenv(EnvHTTPTimeout, "15s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://backend:9000" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
}

func TestLoad_RejectsBadURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "ftp://backend")
	if _, err := Load(); err == nil {
		t.Fatal("expected scheme validation error")
	}
}

func TestLoad_RejectsUnknownTokenStore(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvTokenStore, "cookie")
	if _, err := Load(); err == nil {
		t.Fatal("expected token store validation error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

func TestLoad_RejectsUnknownLocalDriver(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLocalDriver, "mysql")
	if _, err := Load(); err == nil {
		t.Fatal("expected local driver validation error")
	}
}

func TestLoad_PostgresLocalStore(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLocalDriver, "postgres")
	t.Setenv(EnvLocalDSN, "postgres://greenloop@localhost/greenloop")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.LocalStore.Driver != LocalDriverPostgres || cfg.LocalStore.MaxOpenConns != 1 {
		t.Fatalf("unexpected local store config %+v", cfg.LocalStore)
	}
}
