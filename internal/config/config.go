package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Storage    StorageConfig    `yaml:"storage"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Geo        GeoConfig        `yaml:"geo"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Redis      RedisConfig      `yaml:"redis"`
	Intake     IntakeConfig     `yaml:"intake"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Total-Count,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"15728640"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds operator authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"incident-desk"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"12h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	SignupEnabled    bool          `yaml:"signup_enabled"     env:"AUTH_SIGNUP_ENABLED"     env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig selects and configures the image blob store.
type StorageConfig struct {
	Driver        string `yaml:"driver"          env:"STORAGE_DRIVER"          env-default:"local"`
	LocalDir      string `yaml:"local_dir"       env:"STORAGE_LOCAL_DIR"       env-default:"./data/images"`
	MaxImageBytes int64  `yaml:"max_image_bytes" env:"STORAGE_MAX_IMAGE_BYTES" env-default:"10485760"`

	S3Bucket    string `yaml:"s3_bucket"     env:"S3_BUCKET"`
	S3Region    string `yaml:"s3_region"     env:"S3_REGION"     env-default:"us-east-1"`
	S3AccessKey string `yaml:"s3_access_key" env:"S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"s3_secret_key" env:"S3_SECRET_KEY"`
	S3Endpoint  string `yaml:"s3_endpoint"   env:"S3_ENDPOINT"`
	S3Prefix    string `yaml:"s3_prefix"     env:"S3_PREFIX"     env-default:"reports"`
}

// ClassifierConfig configures the vision model used for image classification.
// An empty API key disables classification.
type ClassifierConfig struct {
	APIKey     string        `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	BaseURL    string        `yaml:"base_url"    env:"CLASSIFIER_BASE_URL"`
	Model      string        `yaml:"model"       env:"CLASSIFIER_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens  int64         `yaml:"max_tokens"  env:"CLASSIFIER_MAX_TOKENS"  env-default:"1024"`
	Timeout    time.Duration `yaml:"timeout"     env:"CLASSIFIER_TIMEOUT"     env-default:"20s"`
	MaxRetries int           `yaml:"max_retries" env:"CLASSIFIER_MAX_RETRIES" env-default:"1"`
}

// GeoConfig configures the geocoding provider. An empty API key disables it.
type GeoConfig struct {
	APIKey  string        `yaml:"api_key"  env:"GOOGLE_MAPS_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"GEO_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"GEO_TIMEOUT"  env-default:"5s"`
}

// RateLimitConfig holds per-client limits for the public endpoints.
type RateLimitConfig struct {
	Backend           string `yaml:"backend"             env:"RATE_LIMIT_BACKEND"             env-default:"memory"`
	SubmitPerMinute   int    `yaml:"submit_per_minute"   env:"RATE_LIMIT_SUBMIT_PER_MINUTE"   env-default:"10"`
	ClassifyPerMinute int    `yaml:"classify_per_minute" env:"RATE_LIMIT_CLASSIFY_PER_MINUTE" env-default:"10"`
	ResolvePerMinute  int    `yaml:"resolve_per_minute"  env:"RATE_LIMIT_RESOLVE_PER_MINUTE"  env-default:"30"`
	LoginPerMinute    int    `yaml:"login_per_minute"    env:"RATE_LIMIT_LOGIN_PER_MINUTE"    env-default:"10"`
	TrustProxy        bool   `yaml:"trust_proxy"         env:"RATE_LIMIT_TRUST_PROXY"         env-default:"false"`
}

// RedisConfig holds the connection used by the redis rate-limit backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// IntakeConfig holds report intake settings.
type IntakeConfig struct {
	IDAttempts      int           `yaml:"id_attempts"       env:"INTAKE_ID_ATTEMPTS"       env-default:"5"`
	ReverseGeocode  bool          `yaml:"reverse_geocode"   env:"INTAKE_REVERSE_GEOCODE"   env-default:"true"`
	AutoClassify    bool          `yaml:"auto_classify"     env:"INTAKE_AUTO_CLASSIFY"     env-default:"true"`
	GeocodeTimeout  time.Duration `yaml:"geocode_timeout"   env:"INTAKE_GEOCODE_TIMEOUT"   env-default:"3s"`
	ClassifyTimeout time.Duration `yaml:"classify_timeout"  env:"INTAKE_CLASSIFY_TIMEOUT"  env-default:"8s"`
	DefaultPageSize int           `yaml:"default_page_size" env:"INTAKE_DEFAULT_PAGE_SIZE" env-default:"50"`
}

// Enabled reports whether a vision model is configured.
func (c ClassifierConfig) Enabled() bool { return c.APIKey != "" }

// Enabled reports whether a geocoding provider is configured.
func (c GeoConfig) Enabled() bool { return c.APIKey != "" }
