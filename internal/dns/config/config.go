// Package config loads the application configuration from environment
// variables prefixed with RDNS_, applying defaults and validation.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Backend selects the backing store adapter.
	Backend string `koanf:"backend" validate:"required,oneof=redis bolt memory"`

	// RedisAddr is the host:port of the Redis server (redis backend).
	RedisAddr string `koanf:"redis_addr" validate:"required_if=Backend redis,omitempty,hostname_port"`

	// RedisPassword authenticates the Redis connection; empty for none.
	RedisPassword string `koanf:"redis_password"`

	// RedisDB selects the Redis logical database index.
	RedisDB int `koanf:"redis_db" validate:"gte=0"`

	// BoltPath is the database file location (bolt backend).
	BoltPath string `koanf:"bolt_path" validate:"required_if=Backend bolt"`

	// SeedDir is the directory of record seed files to import.
	SeedDir string `koanf:"seed_dir"`

	// AnswerTTL is the TTL stamped on produced answers, in seconds.
	AnswerTTL uint32 `koanf:"answer_ttl" validate:"required,gte=1"`

	// DisableNotify disables cache notifications from the request handler.
	DisableNotify bool `koanf:"disable_notify"`

	// CacheSize bounds the notification-fed answer cache.
	CacheSize int `koanf:"cache_size" validate:"required,gte=1"`
}

// DEFAULT_APP_CONFIG defines the default application configuration: a
// local Redis backend, production logging, and a 300 second answer TTL.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:       "prod",
	LogLevel:  "info",
	Backend:   "redis",
	RedisAddr: "127.0.0.1:6379",
	RedisDB:   0,
	AnswerTTL: 300,
	CacheSize: 1000,
}

// envLoader loads environment variables with the prefix "RDNS_",
// lowercasing keys and stripping the prefix. Mockable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RDNS_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "RDNS_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG via the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
