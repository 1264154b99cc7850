package config

const (
	EnvPrefix = "PACKFINDERZ"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv        = "PACKFINDERZ_APP_ENV"
	EnvPort          = "PACKFINDERZ_APP_PORT"
	EnvLogLevel      = "PACKFINDERZ_LOG_LEVEL"
	EnvLogFormat     = "PACKFINDERZ_LOG_FORMAT"
	EnvRedisURL      = "PACKFINDERZ_REDIS_URL"
	EnvExportTTL     = "PACKFINDERZ_EXPORT_CACHE_TTL"
	EnvExportMaxRows = "PACKFINDERZ_EXPORT_MAX_ROWS"
	EnvCurrency      = "PACKFINDERZ_CURRENCY"
	EnvTimeZone      = "PACKFINDERZ_TIME_ZONE"
)
