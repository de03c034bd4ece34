package main

import (
	"os"
	"path/filepath"

	"github.com/iov-one/kitties/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config is the local node configuration, stored in the home directory.
type Config struct {
	// ChainID is used to initialize the chain.
	ChainID string `yaml:"chain_id" mapstructure:"chain_id"`
	// LogLevel accepts tendermint filter values: debug, info, error or none.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Seed, if set, replaces block header entropy with a fixed seed. Use it
	// only for development, as minted identities become predictable.
	Seed string `yaml:"seed,omitempty" mapstructure:"seed"`
}

// DefaultConfig returns the configuration written by init.
func DefaultConfig() Config {
	return Config{
		ChainID:  "kitty-chain",
		LogLevel: "error",
	}
}

// writeConfig stores the configuration in the home directory. An existing
// configuration file is never overwritten.
func writeConfig(home string, c Config) (bool, error) {
	path := filepath.Join(home, configFileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(home, 0o750); err != nil {
		return false, errors.Wrapf(errors.ErrInput, "creating home directory: %s", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return false, errors.Wrapf(errors.ErrInput, "encoding config: %s", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return false, errors.Wrapf(errors.ErrInput, "writing config: %s", err)
	}
	return true, nil
}

// readConfig loads the configuration file written by writeConfig.
func readConfig(home string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(filepath.Join(home, configFileName))
	if err != nil {
		return c, errors.Wrapf(errors.ErrNotFound, "reading config: %s", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, errors.Wrapf(errors.ErrInput, "decoding config: %s", err)
	}
	return c, nil
}
