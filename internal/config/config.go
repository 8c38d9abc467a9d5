package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	e "signup/internal/core/domain/errors"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const DEFAULT_ENV_FILE = ".env"

type Config struct {
	SignUpURL          url.URL       `env:"SIGN_UP_URL,required"`
	HttpRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"0s"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment. Variables found in
// envFile (".env" when empty) are added unless already set; a missing file
// is not an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DEFAULT_ENV_FILE
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load %s: %w", envFile, err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.SignUpURL.Scheme != "http" && cfg.SignUpURL.Scheme != "https" {
		return nil, e.NewInvalidArgumentError("SIGN_UP_URL", "scheme must be http or https")
	}
	if cfg.SignUpURL.Host == "" {
		return nil, e.NewInvalidArgumentError("SIGN_UP_URL", "host must be set")
	}
	if cfg.HttpRequestTimeout < 0 {
		return nil, e.NewInvalidArgumentError("HTTP_REQUEST_TIMEOUT", "must not be negative")
	}
	return &cfg, nil
}
