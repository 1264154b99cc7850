package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Export  ExportConfig
	Locale  LocaleConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Locale.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PACKFINDERZ_APP_ENV" required:"true"`
	Port         string `envconfig:"PACKFINDERZ_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PACKFINDERZ_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"PACKFINDERZ_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"PACKFINDERZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional; an empty URL and address disables the export cache.
type RedisConfig struct {
	URL          string        `envconfig:"PACKFINDERZ_REDIS_URL"`
	Address      string        `envconfig:"PACKFINDERZ_REDIS_ADDR"`
	Password     string        `envconfig:"PACKFINDERZ_REDIS_PASSWORD"`
	DB           int           `envconfig:"PACKFINDERZ_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PACKFINDERZ_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PACKFINDERZ_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PACKFINDERZ_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PACKFINDERZ_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PACKFINDERZ_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type ExportConfig struct {
	CacheTTL    time.Duration `envconfig:"PACKFINDERZ_EXPORT_CACHE_TTL" default:"10m"`
	TitlePrefix string        `envconfig:"PACKFINDERZ_EXPORT_TITLE_PREFIX" default:"PackFinderz Admin"`
	MaxRows     int           `envconfig:"PACKFINDERZ_EXPORT_MAX_ROWS" default:"10000"`
}

type LocaleConfig struct {
	Currency string `envconfig:"PACKFINDERZ_CURRENCY" default:"USD"`
	TimeZone string `envconfig:"PACKFINDERZ_TIME_ZONE" default:"UTC"`
}

// CurrencyCode returns the configured currency as an enum value.
func (l LocaleConfig) CurrencyCode() enums.Currency {
	cur, err := enums.ParseCurrency(strings.ToUpper(strings.TrimSpace(l.Currency)))
	if err != nil {
		return enums.CurrencyUSD
	}
	return cur
}

// Location resolves the configured time zone, falling back to UTC.
func (l LocaleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(l.TimeZone))
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l LocaleConfig) validate() error {
	if _, err := enums.ParseCurrency(strings.ToUpper(strings.TrimSpace(l.Currency))); err != nil {
		return fmt.Errorf("%s: %w", EnvCurrency, err)
	}
	if _, err := time.LoadLocation(strings.TrimSpace(l.TimeZone)); err != nil {
		return fmt.Errorf("%s: %w", EnvTimeZone, err)
	}
	return nil
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"PACKFINDERZ_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"PACKFINDERZ_METRICS_PATH" default:"/metrics"`
}
