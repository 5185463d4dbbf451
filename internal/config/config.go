package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key int

const (
	KeyUUID key = iota
	KeyLogger
	KeyMetrics
)

type Config struct {
	Service  Service
	Postgres Postgres
	Identity Identity
	Auth     Auth
	Kafka    Kafka
	Metrics  Metrics
	Logger   Logger
	Platform Platform
}

type Service struct {
	Port string `env:"MESSAGE_SERVICE_PORT" env-default:"3001"`
	Name string `env:"MESSAGE_SERVICE_NAME" env-default:"message-service"`
}

type Postgres struct {
	User         string        `env:"MESSAGE_SERVICE_POSTGRES_USER"`
	Password     string        `env:"MESSAGE_SERVICE_POSTGRES_PASSWORD"`
	Database     string        `env:"MESSAGE_SERVICE_POSTGRES_DB"`
	Host         string        `env:"MESSAGE_SERVICE_POSTGRES_HOST"`
	Port         string        `env:"MESSAGE_SERVICE_POSTGRES_PORT" env-default:"5432"`
	QueryTimeout time.Duration `env:"MESSAGE_SERVICE_POSTGRES_QUERY_TIMEOUT" env-default:"5s"`
}

type Identity struct {
	BaseURL string        `env:"IDENTITY_PROVIDER_BASE_URL"`
	APIKey  string        `env:"IDENTITY_PROVIDER_API_KEY"`
	Timeout time.Duration `env:"IDENTITY_PROVIDER_TIMEOUT" env-default:"10s"`
}

type Auth struct {
	JWTSecret string `env:"MESSAGE_SERVICE_JWT_SECRET"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAPHITE_HOST"`
	Port int    `env:"GRAPHITE_PORT" env-default:"2003"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"PLATFORM_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
