package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"         envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	RedisAddr        string `env:"REDIS_ADDR"`
	LogLevel         string `env:"LOG_LEVEL"         envDefault:"info"`

	Session SessionConfig

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_NOTIFICATION_TOPIC"`

	NotifierURL    string `env:"NOTIFIER_WEBHOOK_URL"`
	NotifierAPIKey string `env:"NOTIFIER_API_KEY"`

	JanitorInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	// HintTTL bounds how long the last-login-type fallback is kept around.
	HintTTL time.Duration `env:"LOGIN_HINT_TTL" envDefault:"720h"`
}

// Configured reports whether the backend credentials are present. Without them
// the service starts but every operation short-circuits.
func (c Config) Configured() bool {
	return c.PostgresDSN != ""
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
