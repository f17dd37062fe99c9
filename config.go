package coco

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultRecursionLimit is the call depth at which PushFrame fails.
const DefaultRecursionLimit = 1000

// Config holds runtime settings. It can be read from a TOML file:
//
//	recursion-limit = 1000
//	verbose = false
type Config struct {
	// RecursionLimit is the depth the call frame stack may not reach.
	RecursionLimit int `toml:"recursion-limit"`
	// Verbose enables listing code units and debug logging in the driver.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{RecursionLimit: DefaultRecursionLimit}
}

// LoadConfig reads a TOML configuration file. Settings absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return c, fmt.Errorf("unknown setting %q in %s", undec[0].String(), path)
	}
	if c.RecursionLimit <= 1 {
		return c, fmt.Errorf("recursion-limit in %s must be greater than 1, got %d", path, c.RecursionLimit)
	}
	return c, nil
}
