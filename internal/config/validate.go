package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage {
	case StoragePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for %q storage", StoragePostgres)
		}
		if c.Database.MaxConns <= 0 {
			return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage must be %q or %q (got %q)", StoragePostgres, StorageMemory, c.Storage)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if c.Redis.Channel == "" {
			return fmt.Errorf("redis.channel is required when redis is enabled")
		}
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.LaterStateThreshold < 0 {
		return fmt.Errorf("later_state_threshold must be >= 0 (got %d)", r.LaterStateThreshold)
	}
	if r.MaxCommentLength <= 0 {
		return fmt.Errorf("max_comment_length must be > 0 (got %d)", r.MaxCommentLength)
	}
	return nil
}
