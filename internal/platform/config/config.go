// Package config loads and validates the service configuration. Values are
// layered: built-in defaults -> base.yaml -> {profile}.yaml -> APP_* env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Clients   ClientsConfig   `koanf:"clients"`
	Storage   StorageConfig   `koanf:"storage"`
	Collab    CollabConfig    `koanf:"collab"`
	Campus    CampusConfig    `koanf:"campus"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientsConfig holds one outbound client per university endpoint.
type ClientsConfig struct {
	FinancialSchedule ClientConfig `koanf:"fa_schedule"`
	FinancialSite     ClientConfig `koanf:"fa_site"`
	FinancialLibrary  ClientConfig `koanf:"fa_library"`
	RSUESchedule      ClientConfig `koanf:"rsue_schedule"`
	RSUESite          ClientConfig `koanf:"rsue_site"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds outbound request rate. Zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StorageConfig configures the local cache database and the optional remote
// database it replicates to.
type StorageConfig struct {
	LocalPath      string               `koanf:"local_path"`
	ResyncInterval time.Duration        `koanf:"resync_interval"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	Remote         RemoteStorageConfig  `koanf:"remote"`
}

// RemoteStorageConfig configures the PostgreSQL document store.
type RemoteStorageConfig struct {
	Enabled         bool          `koanf:"enabled"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	LogQueries      bool          `koanf:"log_queries"`
}

// CollabConfig tunes the project collaboration engine.
type CollabConfig struct {
	PersistTimeout time.Duration `koanf:"persist_timeout"`
	NoticeTTL      time.Duration `koanf:"notice_ttl"`
	SeedFile       string        `koanf:"seed_file"`
}

// CampusConfig describes the university directory and content caching.
type CampusConfig struct {
	DefaultUniversity string             `koanf:"default_university"`
	ContentCacheTTL   time.Duration      `koanf:"content_cache_ttl"`
	ContentCacheSize  int                `koanf:"content_cache_size"`
	Universities      []UniversityConfig `koanf:"universities"`
}

// UniversityConfig is one directory entry. Adapter names the site client
// serving its content; entries without one are directory-only.
type UniversityConfig struct {
	ID             string                `koanf:"id"`
	Title          string                `koanf:"title"`
	ShortTitle     string                `koanf:"short_title"`
	Domain         string                `koanf:"domain"`
	Aliases        []string              `koanf:"aliases"`
	Adapter        string                `koanf:"adapter"`
	PaymentOptions []PaymentOptionConfig `koanf:"payment_options"`
}

// PaymentOptionConfig is a dean-office payment link.
type PaymentOptionConfig struct {
	ID      string `koanf:"id"`
	Title   string `koanf:"title"`
	Caption string `koanf:"caption"`
	URL     string `koanf:"url"`
}

// Supported university adapters.
const (
	AdapterFinancial = "financial"
	AdapterRSUE      = "rsue"
)

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
