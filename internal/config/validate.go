package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if c.RateLimit.Backend == RateLimitRedis && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required when rate_limit.backend is redis")
	}
	if err := c.Intake.validate(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))

	switch s.Driver {
	case StorageDriverLocal:
		if strings.TrimSpace(s.LocalDir) == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
	case StorageDriverS3:
		if strings.TrimSpace(s.S3Bucket) == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", StorageDriverLocal, StorageDriverS3, s.Driver)
	}

	if s.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", s.MaxImageBytes)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	r.Backend = strings.ToLower(strings.TrimSpace(r.Backend))
	if r.Backend != RateLimitMemory && r.Backend != RateLimitRedis {
		return fmt.Errorf("backend must be %q or %q (got %q)", RateLimitMemory, RateLimitRedis, r.Backend)
	}

	limits := map[string]int{
		"submit_per_minute":   r.SubmitPerMinute,
		"classify_per_minute": r.ClassifyPerMinute,
		"resolve_per_minute":  r.ResolvePerMinute,
		"login_per_minute":    r.LoginPerMinute,
	}
	for name, v := range limits {
		if v <= 0 {
			return fmt.Errorf("%s must be > 0 (got %d)", name, v)
		}
	}
	return nil
}

func (i *IntakeConfig) validate() error {
	if i.IDAttempts < 1 || i.IDAttempts > 20 {
		return fmt.Errorf("id_attempts must be in [1, 20] (got %d)", i.IDAttempts)
	}
	if i.DefaultPageSize < 1 || i.DefaultPageSize > 200 {
		return fmt.Errorf("default_page_size must be in [1, 200] (got %d)", i.DefaultPageSize)
	}
	if i.GeocodeTimeout <= 0 {
		return fmt.Errorf("geocode_timeout must be > 0 (got %s)", i.GeocodeTimeout)
	}
	if i.ClassifyTimeout <= 0 {
		return fmt.Errorf("classify_timeout must be > 0 (got %s)", i.ClassifyTimeout)
	}
	return nil
}
