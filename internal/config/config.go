package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Mongo  MongoConfig  `mapstructure:"mongo"  validate:"required"`
	Redis  RedisConfig  `mapstructure:"redis"  validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Worker WorkerConfig `mapstructure:"worker"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	// Port the API listens on. The compose file publishes 8000.
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile, when set, mirrors logs into a size-rotated file in
	// addition to stdout.
	LogFile string `mapstructure:"log_file"`

	// ShutdownTimeoutSeconds bounds how long graceful shutdown waits for
	// in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`

	// CORSAllowedOrigins lists the origins allowed to call the API from
	// browsers. Defaults to all origins.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MongoConfig contains all document store related settings.
type MongoConfig struct {
	// URI is the MongoDB connection string. Bound to the bare MONGO_URI
	// environment variable the compose file injects.
	URI      string `mapstructure:"uri"      validate:"required"`
	Database string `mapstructure:"database" validate:"required"`

	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" validate:"gte=1"`
}

// RedisConfig contains all cache backend related settings.
type RedisConfig struct {
	// Host and Port are bound to the bare REDIS_HOST / REDIS_PORT
	// environment variables the compose file injects.
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	DB   int    `mapstructure:"db"   validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token lifetime. Defaults to one
	// hour.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshTokenLifetimeMinutes is the refresh token lifetime.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`

	// BCryptCost tunes password hashing. Higher is slower and stronger.
	BCryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// CacheConfig contains task list caching settings.
type CacheConfig struct {
	// Enabled turns the Redis read-through cache on or off. The API works
	// without it, just slower.
	Enabled bool `mapstructure:"enabled"`

	// TaskListTTLSeconds is how long cached task lists stay fresh.
	TaskListTTLSeconds int `mapstructure:"task_list_ttl_seconds" validate:"gte=1"`
}

// WorkerConfig contains background worker pool settings.
type WorkerConfig struct {
	// Count determines how many concurrent workers process jobs.
	Count int `mapstructure:"count" validate:"gte=1"`

	// QueueSize determines the buffer size for the in-memory job queue.
	QueueSize int `mapstructure:"queue_size" validate:"gte=1"`
}
