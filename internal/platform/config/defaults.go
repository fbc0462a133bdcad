package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 10

	defaultRemoteMaxOpenConns = 100
	defaultRemoteMaxIdleConns = 10

	defaultContentCacheSize = 256
)

// defaults returns the lowest configuration layer. Every key listed here can
// be overridden by YAML or APP_* environment variables.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"storage.local_path":                      "data/campus.db",
		"storage.resync_interval":                 "30s",
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"storage.remote.enabled":                  false,
		"storage.remote.dsn":                      "",
		"storage.remote.max_open_conns":           defaultRemoteMaxOpenConns,
		"storage.remote.max_idle_conns":           defaultRemoteMaxIdleConns,
		"storage.remote.conn_max_lifetime":        "1h",
		"storage.remote.log_queries":              false,

		"collab.persist_timeout": "8s",
		"collab.notice_ttl":      "3200ms",
		"collab.seed_file":       "",

		"campus.default_university": "financial-university",
		"campus.content_cache_ttl":  "10m",
		"campus.content_cache_size": defaultContentCacheSize,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}

	clientDefaults(d, "clients.fa_schedule", "https://ruz.fa.ru")
	clientDefaults(d, "clients.fa_site", "https://www.fa.ru")
	clientDefaults(d, "clients.fa_library", "https://library.fa.ru")
	clientDefaults(d, "clients.rsue_schedule", "https://rasp-api.rsue.ru")
	clientDefaults(d, "clients.rsue_site", "https://rsue.ru")

	return d
}

func clientDefaults(d map[string]any, prefix, baseURL string) {
	d[prefix+".base_url"] = baseURL
	d[prefix+".timeout"] = "15s"
	d[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	d[prefix+".retry.initial_interval"] = "100ms"
	d[prefix+".retry.max_interval"] = "5s"
	d[prefix+".retry.multiplier"] = defaultRetryMultiplier
	d[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	d[prefix+".circuit_breaker.timeout"] = "30s"
	d[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
	d[prefix+".rate_limit.requests_per_second"] = defaultRateLimitRPS
	d[prefix+".rate_limit.burst_size"] = defaultRateLimitBurst
}
