package config

const (
	EnvPrefix = "GREENLOOP"

	EnvAppEnv       = "GREENLOOP_APP_ENV"
	EnvLogLevel     = "GREENLOOP_LOG_LEVEL"
	EnvAPIURL       = "GREENLOOP_API_URL"
	EnvPublicAPIURL = "NEXT_PUBLIC_API_URL"
	EnvBareAPIURL   = "API_URL"
	EnvHTTPTimeout  = "GREENLOOP_HTTP_TIMEOUT"
	EnvTokenStore   = "GREENLOOP_TOKEN_STORE"
	EnvRedisURL     = "GREENLOOP_REDIS_URL"
	EnvLocalDriver  = "GREENLOOP_LOCAL_DRIVER"
	EnvLocalDSN     = "GREENLOOP_LOCAL_DSN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DefaultAPIURL = "http://localhost:8000"

	TokenStoreMemory = "memory"
	TokenStoreLocal  = "local"
	TokenStoreRedis  = "redis"

	LocalDriverSQLite   = "sqlite"
	LocalDriverPostgres = "postgres"
)
