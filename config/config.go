package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"5250"`

	// Gin mode: debug, release or test
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Path to the SQLite database file
	DBPath string `env:"DB_PATH" envDefault:"database/listings.db"`

	// Allowed CORS origins, comma separated. "*" allows everything.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
