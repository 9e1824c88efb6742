package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Cache      CacheConfig      `yaml:"cache"`
	IDs        IDConfig         `yaml:"ids"`
	Moderation ModerationConfig `yaml:"moderation"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps writes per caller per minute; 0 disables the limit.
	WriteRateLimit int `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"qa-moderation"`
	PingTimeout     time.Duration `yaml:"ping_timeout"       env:"DATABASE_PING_TIMEOUT"       env-default:"5s"`
}

// AuthConfig holds identity token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"qa-moderation"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"12h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CacheConfig holds the trust cache settings. An empty RedisURL disables
// the cache and trust lookups go straight to the database.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"CACHE_REDIS_URL"`
	TrustTTL time.Duration `yaml:"trust_ttl" env:"CACHE_TRUST_TTL" env-default:"24h"`
}

// Enabled reports whether a Redis cache is configured.
func (c CacheConfig) Enabled() bool { return c.RedisURL != "" }

// IDConfig holds id generator settings. Every running instance needs its
// own node id.
type IDConfig struct {
	NodeID int64 `yaml:"node_id" env:"IDS_NODE_ID" env-default:"1"`
}

// ModerationConfig holds role gates and answer text rules.
type ModerationConfig struct {
	ReporterRolesRaw string `yaml:"reporter_roles" env:"MODERATION_REPORTER_ROLES" env-default:"instructor,staff"`
	ArbiterRolesRaw  string `yaml:"arbiter_roles"  env:"MODERATION_ARBITER_ROLES"  env-default:"admin"`
	ReviewerRolesRaw string `yaml:"reviewer_roles" env:"MODERATION_REVIEWER_ROLES" env-default:"reviewer,instructor"`
	AdminRolesRaw    string `yaml:"admin_roles"    env:"MODERATION_ADMIN_ROLES"    env-default:"admin"`
	BannedWordsRaw   string `yaml:"banned_words"   env:"MODERATION_BANNED_WORDS"   env-default:"ChatGPT,extension,curve,AI"`
	MinAnswerLength  int    `yaml:"min_answer_length" env:"MODERATION_MIN_ANSWER_LENGTH" env-default:"5"`
	MaxAnswerLength  int    `yaml:"max_answer_length" env:"MODERATION_MAX_ANSWER_LENGTH" env-default:"950"`

	// The fields below are parsed from their Raw counterparts during validation.
	ReporterRoles []string `yaml:"-" env:"-"`
	ArbiterRoles  []string `yaml:"-" env:"-"`
	ReviewerRoles []string `yaml:"-" env:"-"`
	AdminRoles    []string `yaml:"-" env:"-"`
	BannedWords   []string `yaml:"-" env:"-"`
}

// IsAdmin reports whether role is one of the configured admin roles. Admins
// may edit and delete answers written by others.
func (m ModerationConfig) IsAdmin(role string) bool {
	return slices.Contains(m.AdminRoles, role)
}
