package runtimeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load builds a configuration from DefaultConfig, the optional file at path
// (YAML or TOML, chosen by extension) and LOCALEROUTE_* environment
// variables, in that order. The result is not validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("localeroute config: read %q: %w", path, err)
		}
		if err := Decode(filepath.Ext(path), data, &cfg); err != nil {
			return Config{}, fmt.Errorf("localeroute config: decode %q: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("localeroute config: environment: %w", err)
	}
	return cfg, nil
}

// Decode overlays data onto cfg using the format implied by ext.
func Decode(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return yaml.Unmarshal(data, cfg)
	case "toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}
