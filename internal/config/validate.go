package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Modes.validate(); err != nil {
		return fmt.Errorf("modes: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	if c.Redis.Enabled() && c.Redis.Queue == "" {
		return fmt.Errorf("redis.queue must be set when redis.addr is configured")
	}

	return nil
}

func (d DatabaseConfig) validate() error {
	if d.MinConns < 0 || d.MaxConns < 0 {
		return fmt.Errorf("connection limits must not be negative")
	}
	if d.MaxConns > 0 && d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) exceeds max_conns (%d)", d.MinConns, d.MaxConns)
	}
	if d.StatementTimeout < 0 {
		return fmt.Errorf("statement_timeout must not be negative (got %s)", d.StatementTimeout)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	unit, err := ParseUnit(s.UnitRaw)
	if err != nil {
		return fmt.Errorf("unit: %w", err)
	}
	s.Unit = unit
	return nil
}

func (m ModesConfig) validate() error {
	if m.MaxTestQuestions < 1 {
		return fmt.Errorf("max_test_questions must be >= 1 (got %d)", m.MaxTestQuestions)
	}
	if m.DefaultTestQuestions < 1 || m.DefaultTestQuestions > m.MaxTestQuestions {
		return fmt.Errorf("default_test_questions must be in [1, %d] (got %d)", m.MaxTestQuestions, m.DefaultTestQuestions)
	}
	if m.MaxMatchPairs < 1 {
		return fmt.Errorf("max_match_pairs must be >= 1 (got %d)", m.MaxMatchPairs)
	}
	if m.DefaultMatchPairs < 1 || m.DefaultMatchPairs > m.MaxMatchPairs {
		return fmt.Errorf("default_match_pairs must be in [1, %d] (got %d)", m.MaxMatchPairs, m.DefaultMatchPairs)
	}
	return nil
}

// ParseUnit parses the SRS interval unit. It must be a positive duration
// of at least one second; an empty string yields 24h.
func ParseUnit(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if d < time.Second {
		return 0, fmt.Errorf("must be at least 1s (got %s)", d)
	}
	return d, nil
}
