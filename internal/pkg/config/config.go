package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Notify NotifyConfig
	Login  LoginConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=zomma"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT,         default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM_ADDRESS"`
	FromName string `env:"SMTP_FROM_NAME,    default=Zomma"`
}

type NotifyConfig struct {
	// Recipients is the static fallback list used when the stored
	// distribution list is empty or unreadable. Comma-separated.
	Recipients []string `env:"PROSPECT_NOTIFICATION_RECIPIENTS"`
	Workers    int      `env:"NOTIFY_WORKERS, default=2"`
}

type LoginConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the service runs with production error masking.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
