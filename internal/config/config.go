package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LLM       LLMConfig       `yaml:"llm"`
	Assistant AssistantConfig `yaml:"assistant"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	DynamoDB  DynamoDBConfig  `yaml:"dynamodb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig throttles the model-backed endpoints per client IP.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	AIPerMinute     int           `yaml:"ai_per_minute"    env:"RATE_LIMIT_AI_PER_MINUTE"    env-default:"30"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LLMConfig selects and tunes the completion provider.
// Provider "none", or an empty APIKey, disables model calls entirely.
type LLMConfig struct {
	Provider   string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"anthropic"`
	APIKey     string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model      string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL    string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"20s"`
	MaxRetries int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"1"`
}

// Enabled reports whether a real provider should be constructed.
func (c LLMConfig) Enabled() bool {
	return c.Provider != ProviderNone && c.APIKey != ""
}

// Provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderNone      = "none"
)

// AssistantConfig holds assistant behaviour settings.
type AssistantConfig struct {
	KeywordsPath string `yaml:"keywords_path" env:"ASSISTANT_KEYWORDS_PATH"`
}

// StorageConfig selects the submission store backend.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory"`
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// DynamoDBConfig holds DynamoDB table settings.
type DynamoDBConfig struct {
	Table    string `yaml:"table"    env:"DYNAMODB_TABLE"    env-default:"nexus_submissions"`
	Region   string `yaml:"region"   env:"AWS_REGION"        env-default:"eu-west-3"`
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
}
