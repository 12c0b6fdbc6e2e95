package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const minSecretLength = 32

// Config holds all process-wide configuration. It is loaded once at startup
// and treated as read-only thereafter.
type Config struct {
	Port          int    `env:"PORT"           envDefault:"8080"`
	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"myflix"`

	JWTSecret      string        `env:"JWT_SECRET"`
	TokenIssuer    string        `env:"TOKEN_ISSUER"     envDefault:"myflix-api"`
	TokenExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"168h"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	ConsulAddr        string `env:"CONSUL_HTTP_ADDR"`
	ConsulServiceName string `env:"CONSUL_SERVICE_NAME" envDefault:"myflix-api"`
	ConsulServiceAddr string `env:"CONSUL_SERVICE_ADDR" envDefault:"localhost"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// HTTPAddr returns the address the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// validate checks if the configuration is usable.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if c.TokenExpiresIn <= 0 {
		return fmt.Errorf("TOKEN_EXPIRES_IN must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}

	return nil
}
