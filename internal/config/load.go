package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for every application-owned environment
// variable (TASKAPI_SERVER_PORT, TASKAPI_AUTH_JWT_SECRET, ...). The
// deployment additionally injects the bare MONGO_URI, REDIS_HOST and
// REDIS_PORT variables, which are bound explicitly below.
const envPrefix = "TASKAPI"

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables, environment taking
// precedence. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return loadWithFile("")
}

// LoadWithFile behaves like Load but reads the given config file instead
// of searching the working directory. Used by tests to avoid chdir.
func LoadWithFile(configPath string) (*Config, error) {
	return loadWithFile(configPath)
}

func loadWithFile(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional YAML config file. A missing file is fine; any other read
	// error is surfaced.
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override file values.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The compose file injects these without the prefix; bind them so the
	// deployed container needs no extra wiring. The bare name wins when
	// both forms are set.
	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"mongo.uri", []string{"MONGO_URI", "TASKAPI_MONGO_URI"}},
		{"redis.host", []string{"REDIS_HOST", "TASKAPI_REDIS_HOST"}},
		{"redis.port", []string{"REDIS_PORT", "TASKAPI_REDIS_PORT"}},
		{"auth.jwt_secret", []string{"TASKAPI_AUTH_JWT_SECRET"}},
		{"server.port", []string{"TASKAPI_SERVER_PORT"}},
		{"server.log_level", []string{"TASKAPI_SERVER_LOG_LEVEL"}},
	}
	for _, env := range bindEnvs {
		args := append([]string{env.key}, env.envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", env.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every key so environment overrides
// are always visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "taskdb")
	v.SetDefault("mongo.connect_timeout_seconds", 10)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 7*24*60)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.task_list_ttl_seconds", 60)

	v.SetDefault("worker.count", 2)
	v.SetDefault("worker.queue_size", 100)
}
