package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Override adjusts a loaded configuration before validation. Command-line
// flags use it to win over both the file and the environment.
type Override func(*Config)

// WithStorage forces the storage driver.
func WithStorage(driver string) Override {
	return func(c *Config) { c.Storage = driver }
}

// Load reads the file named by CONFIG_PATH, then the environment.
func Load(overrides ...Override) (*Config, error) {
	return LoadPath(os.Getenv("CONFIG_PATH"), overrides...)
}

// LoadPath reads configuration with priority overrides > ENV > YAML >
// env-default tags. An empty path falls back to ./config.yaml when that file
// exists; an explicit path must exist.
func LoadPath(path string, overrides ...Override) (*Config, error) {
	var cfg Config

	file, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if file != "" {
		err = cleanenv.ReadConfig(file, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	for _, o := range overrides {
		o(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns the file to read, or "" for environment only.
func resolvePath(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(defaultPath); err != nil {
			return "", nil
		}
		return defaultPath, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file %s does not exist", path)
		}
		return "", fmt.Errorf("file %s: %w", path, err)
	}
	return path, nil
}

func describe(file string) string {
	if file == "" {
		return "env"
	}
	return file
}
