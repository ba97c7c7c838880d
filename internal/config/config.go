package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Notify   NotifyConfig   `yaml:"notify"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMinute bounds write requests per client IP. Zero disables
	// the limiter.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds credential and session token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"rajdhanitech"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"12h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// NotifyConfig holds Notification Gateway settings. Each channel is
// independently toggled; a disabled channel is a no-op. Credentials are
// supplied via environment, never committed.
type NotifyConfig struct {
	Email    EmailConfig    `yaml:"email"`
	WhatsApp WhatsAppConfig `yaml:"whatsapp"`
}

// EmailConfig holds the SendGrid email channel settings.
type EmailConfig struct {
	Enabled    bool   `yaml:"enabled"      env:"NOTIFY_EMAIL_ENABLED"      env-default:"false"`
	APIKey     string `yaml:"api_key"      env:"NOTIFY_EMAIL_API_KEY"`
	FromName   string `yaml:"from_name"    env:"NOTIFY_EMAIL_FROM_NAME"    env-default:"RajdhaniTech Tuition"`
	FromEmail  string `yaml:"from_email"   env:"NOTIFY_EMAIL_FROM"         env-default:"noreply@localhost"`
	AdminEmail string `yaml:"admin_email"  env:"NOTIFY_EMAIL_ADMIN"`
}

// WhatsAppConfig holds the Twilio WhatsApp channel settings.
type WhatsAppConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"NOTIFY_WHATSAPP_ENABLED"  env-default:"false"`
	AccountSID  string `yaml:"account_sid"  env:"NOTIFY_WHATSAPP_SID"`
	AuthToken   string `yaml:"auth_token"   env:"NOTIFY_WHATSAPP_TOKEN"`
	From        string `yaml:"from"         env:"NOTIFY_WHATSAPP_FROM"`
	AdminNumber string `yaml:"admin_number" env:"NOTIFY_WHATSAPP_ADMIN"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
