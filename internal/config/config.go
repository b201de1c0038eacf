package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPPort int `env:"HTTP_PORT" env-default:"8080" validate:"gt=0"`

	RassAPIURL              string        `env:"RASS_API_URL" env-default:"https://rass1.onrender.com/api"`
	RassAPITimeout          time.Duration `env:"RASS_API_TIMEOUT" env-default:"15s"`
	RassAPIRetries          int           `env:"RASS_API_RETRIES" env-default:"3"`
	RassAPIRetryDelay       time.Duration `env:"RASS_API_RETRY_DELAY" env-default:"200ms"`
	RassAPIBreakerThreshold int           `env:"RASS_API_BREAKER_THRESHOLD" env-default:"5"`
	RassAPIBreakerReset     time.Duration `env:"RASS_API_BREAKER_RESET" env-default:"30s" validate:"gt=0"`

	RedisURL            string        `env:"REDIS_URL" env-default:"localhost:6379"`
	AuthCacheTTL        time.Duration `env:"AUTH_CACHE_TTL" env-default:"1m" validate:"gt=0"`
	LeaderboardCacheTTL time.Duration `env:"LEADERBOARD_CACHE_TTL" env-default:"30s" validate:"gt=0"`
	EventsCacheTTL      time.Duration `env:"EVENTS_CACHE_TTL" env-default:"5m" validate:"gt=0"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-separator:","`
	KafkaContentTopic string   `env:"KAFKA_CONTENT_TOPIC" env-default:"course-content-events"`
	KafkaGroupID      string   `env:"KAFKA_GROUP_ID" env-default:"content-notifier"`

	LeadRateInterval time.Duration `env:"LEAD_RATE_INTERVAL" env-default:"1m" validate:"gt=0"`
	LeadRateBurst    int           `env:"LEAD_RATE_BURST" env-default:"3" validate:"gt=0"`

	ConsoleIdleTTL       time.Duration `env:"CONSOLE_IDLE_TTL" env-default:"30m" validate:"gt=0"`
	ConsoleSweepInterval time.Duration `env:"CONSOLE_SWEEP_INTERVAL" env-default:"1m" validate:"gt=0"`
}

func New() (*Config, error) {
	return Load("./config/.env")
}

// Load reads path when it exists and falls back to the process environment
// otherwise. Intervals, TTLs and the lead burst must be positive.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	err := validator.New().Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("config: must be positive: %s", strings.Join(fields, ", "))
}
