package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Dodga010/KP/internal/models"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Precedence (low -> high):
//  1. Default()
//  2. file (YAML) if KP_CONFIG is set
//  3. env (prefix KP_, double underscore nests: KP_COURT__WIDTH -> court.width)
func Load() (*Config, error) {
	cfg := *Default()

	k := koanf.New(".")

	if path := os.Getenv("KP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("KP_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "KP_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the analytics cannot run on. A bad court
// frame is fatal at startup, not at request time.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port must not be empty", models.ErrConfiguration)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty", models.ErrConfiguration)
	}
	if err := c.Frame().Validate(); err != nil {
		return err
	}
	if c.Density.GridW <= 0 || c.Density.GridH <= 0 {
		return fmt.Errorf("%w: density grid %dx%d", models.ErrConfiguration, c.Density.GridW, c.Density.GridH)
	}
	return nil
}
