package configs

import (
	"fmt"
	"strings"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Storage selects the persistence backend. The memory driver keeps all
// state in process and is meant for local runs.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate rejects unknown drivers.
func (c Storage) Validate() error {
	switch strings.ToLower(c.Driver) {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}

// Name returns the normalised driver name.
func (c Storage) Name() string {
	return strings.ToLower(c.Driver)
}
