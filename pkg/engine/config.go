package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/togetherchat/pkg/providers/model"
)

// Config is the top-level host configuration.
type Config struct {
	Providers     []ProviderConfig `yaml:"providers"`
	EntryProvider string           `yaml:"entry_provider"`
}

// ProviderConfig describes one LLM provider instance.
type ProviderConfig struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	BaseURL  string         `yaml:"base_url"`
	APIKey   string         `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model    string         `yaml:"model"`
	Models   model.Registry `yaml:"models"`   // Pre-supplied model registry; when set, discovery is skipped.
	Settings map[string]any `yaml:"settings"` // User settings, validated against the provider's schema.
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. This allows API keys and other secrets to be kept in
// environment variables (e.g. loaded from a .env file) rather than committed
// in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("engine: config: at least one provider is required")
	}

	providerNames := make(map[string]struct{}, len(c.Providers))
	for _, p := range c.Providers {
		if p.Name == "" {
			return fmt.Errorf("engine: config: provider name is required")
		}
		if p.Kind == "" {
			return fmt.Errorf("engine: config: provider %q: kind is required", p.Name)
		}
		if _, dup := providerNames[p.Name]; dup {
			return fmt.Errorf("engine: config: duplicate provider name %q", p.Name)
		}
		providerNames[p.Name] = struct{}{}
	}

	if c.EntryProvider != "" {
		if _, ok := providerNames[c.EntryProvider]; !ok {
			return fmt.Errorf("engine: config: entry_provider %q not found in providers", c.EntryProvider)
		}
	}

	return nil
}
