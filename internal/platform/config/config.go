// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrMissingConfig indicates required environment variables are absent and
// the process must refuse to start.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds everything the server needs at startup: one DSN per logical
// store, the token signing secret, and the listen port. Redis is optional;
// without it the event cache is bypassed.
type Config struct {
	LoginDBDSN   string
	StudentDBDSN string
	AlumniDBDSN  string

	JWTSecret string
	Port      string

	RedisAddr     string
	RedisPassword string

	RunMigrations bool
}

// Load reads configuration from environment variables. It returns
// ErrMissingConfig listing every missing required variable rather than
// letting the server come up with a partial store set.
func Load() (*Config, error) {
	cfg := &Config{
		LoginDBDSN:    os.Getenv("LOGIN_DB_DSN"),
		StudentDBDSN:  os.Getenv("STUDENT_DB_DSN"),
		AlumniDBDSN:   os.Getenv("ALUMNI_DB_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		port := os.Getenv("REDIS_PORT")
		if port == "" {
			port = "6379"
		}
		cfg.RedisAddr = host + ":" + port
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var missing []string
	for name, value := range map[string]string{
		"LOGIN_DB_DSN":   cfg.LoginDBDSN,
		"STUDENT_DB_DSN": cfg.StudentDBDSN,
		"ALUMNI_DB_DSN":  cfg.AlumniDBDSN,
		"JWT_SECRET":     cfg.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return cfg, nil
}
