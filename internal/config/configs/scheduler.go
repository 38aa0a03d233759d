package configs

import (
	"errors"
	"time"
)

// Scheduler configures the periodic budget recovery and dayparting jobs.
type Scheduler struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
}

func (c Scheduler) Validate() error {
	if c.Enabled && c.Interval < time.Second {
		return errors.New("scheduler interval must be at least 1s")
	}
	return nil
}
