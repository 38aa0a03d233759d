package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"adspend/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Storage   configs.Storage   `envPrefix:"STORAGE_"`
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
	Pricing   configs.Pricing   `envPrefix:"PRICING_"`
}

// Load reads configuration from environment variables into a Config and
// validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	return errors.Join(
		c.Storage.Validate(),
		c.Scheduler.Validate(),
		c.Pricing.Domain().Validate(),
	)
}
