package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"innsync"`
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	API struct {
		BaseURL        string `envconfig:"BASE_URL" default:"http://localhost:7000"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
		ChatNamespace  string `envconfig:"CHAT_NAMESPACE" default:"/chat"`
	} `envconfig:"API"`

	DB struct {
		SQLite struct {
			Path string `envconfig:"PATH" default:"client.db"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	Net struct {
		ProbeIntervalSeconds int `envconfig:"PROBE_INTERVAL_SECONDS" default:"15"`
	} `envconfig:"NET"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
