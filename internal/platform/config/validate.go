package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Clients.validate(),
		c.Storage.validate(),
		c.Collab.validate(),
		c.Campus.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cc *ClientsConfig) validate() error {
	return errors.Join(
		cc.FinancialSchedule.validate("clients.fa_schedule"),
		cc.FinancialSite.validate("clients.fa_site"),
		cc.FinancialLibrary.validate("clients.fa_library"),
		cc.RSUESchedule.validate("clients.rsue_schedule"),
		cc.RSUESite.validate("clients.rsue_site"),
	)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if err := cl.CircuitBreaker.validate(prefix + ".circuit_breaker"); err != nil {
		errs = append(errs, err)
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is on", prefix))
	}

	return errors.Join(errs...)
}

func (cb *CircuitBreakerConfig) validate(prefix string) error {
	if cb.MaxFailures < 1 {
		return fmt.Errorf("%s.max_failures must be >= 1, got %d", prefix, cb.MaxFailures)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	var errs []error

	if s.LocalPath == "" {
		errs = append(errs, errors.New("storage.local_path must not be empty"))
	}
	if s.ResyncInterval <= 0 {
		errs = append(errs, errors.New("storage.resync_interval must be positive"))
	}
	if err := s.CircuitBreaker.validate("storage.circuit_breaker"); err != nil {
		errs = append(errs, err)
	}
	if s.Remote.Enabled && s.Remote.DSN == "" {
		errs = append(errs, errors.New("storage.remote.dsn must not be empty when remote storage is enabled"))
	}

	return errors.Join(errs...)
}

func (c *CollabConfig) validate() error {
	var errs []error

	if c.PersistTimeout <= 0 {
		errs = append(errs, errors.New("collab.persist_timeout must be positive"))
	}
	if c.NoticeTTL < 0 {
		errs = append(errs, errors.New("collab.notice_ttl must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *CampusConfig) validate() error {
	var errs []error

	if len(c.Universities) == 0 {
		errs = append(errs, errors.New("campus.universities must list at least one university"))
	}

	found := false
	seen := make(map[string]bool, len(c.Universities))
	for i, u := range c.Universities {
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("campus.universities[%d].id must not be empty", i))
			continue
		}
		if seen[u.ID] {
			errs = append(errs, fmt.Errorf("campus.universities[%d].id %q is duplicated", i, u.ID))
		}
		seen[u.ID] = true
		if u.ID == c.DefaultUniversity {
			found = true
		}
		switch u.Adapter {
		case "", AdapterFinancial, AdapterRSUE:
			// Valid adapters.
		default:
			errs = append(errs, fmt.Errorf("campus.universities[%d].adapter must be one of: %s, %s; got %q",
				i, AdapterFinancial, AdapterRSUE, u.Adapter))
		}
	}
	if !found {
		errs = append(errs, fmt.Errorf("campus.default_university %q is not listed in campus.universities", c.DefaultUniversity))
	}
	if c.ContentCacheSize < 1 {
		errs = append(errs, fmt.Errorf("campus.content_cache_size must be >= 1, got %d", c.ContentCacheSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
