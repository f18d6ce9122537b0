package config

import "time"

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Storage  string         `yaml:"storage" env:"STORAGE_DRIVER" env-default:"postgres"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Review   ReviewConfig   `yaml:"review"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement, including waits on the
	// per-pair advisory lock. Zero leaves the server setting alone.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds lifecycle engine settings.
type ReviewConfig struct {
	// LaterStateThreshold is the sequence a state must exceed before reports
	// describe it. The default hides everything up to full review.
	LaterStateThreshold int `yaml:"later_state_threshold" env:"REVIEW_LATER_STATE_THRESHOLD" env-default:"50"`
	MaxCommentLength    int `yaml:"max_comment_length"    env:"REVIEW_MAX_COMMENT_LENGTH"    env-default:"4000"`
}

// RedisConfig holds settings of the state-change event publisher.
type RedisConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"REDIS_ENABLED"      env-default:"false"`
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	Channel     string        `yaml:"channel"      env:"REDIS_CHANNEL"      env-default:"ebms:state-events"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"ebms"`
	// TextfilePath, when set, receives a metrics dump after every command.
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE_PATH"`
}
