// Package config loads receptbok settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ochairo/receptbok/internal/external-adapters/collation"
	"gopkg.in/yaml.v3"
)

const (
	appName = "receptbok"

	// DataFileEnv overrides data_file
	DataFileEnv = "RECEPTBOK_DATA_FILE"
)

// Config is the on-disk configuration
type Config struct {
	DataFile  string          `yaml:"data_file"`
	Collation string          `yaml:"collation"`
	LogLevel  string          `yaml:"log_level"`
	Signature SignatureConfig `yaml:"signature"`
}

// SignatureConfig controls verification of the recipe file before loading
type SignatureConfig struct {
	Keyring  string `yaml:"keyring"`
	Required bool   `yaml:"required"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		DataFile:  DefaultDataFile(),
		Collation: collation.OrdinalName,
		LogLevel:  "warn",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/receptbok/config.yml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yml")
}

// DefaultDataFile is $XDG_DATA_HOME/receptbok/recept.txt
func DefaultDataFile() string {
	return filepath.Join(xdg.DataHome, appName, "recept.txt")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file yields defaults; values present in the file override them. The
// DataFileEnv variable wins over the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	//nolint:gosec // G304: path is the user-selected config file
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv(DataFileEnv); env != "" {
		cfg.DataFile = env
	}

	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.Signature.Keyring = expandHome(cfg.Signature.Keyring)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if _, err := collation.New(c.Collation); err != nil {
		return err
	}
	if c.Signature.Required && c.Signature.Keyring == "" {
		return fmt.Errorf("signature.required needs signature.keyring")
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
