// Package engine is the host side of the provider contract: it loads
// configuration, builds provider descriptors from the kind registry, and
// validates user settings against each provider's customization schema.
package engine

import (
	"fmt"
	"sync"

	"github.com/germanamz/togetherchat/pkg/providers/descriptor"
	"github.com/germanamz/togetherchat/pkg/providers/provider"
	"github.com/germanamz/togetherchat/pkg/providers/together"
)

var defaultsReg sync.Once

func ensureDefaults() {
	defaultsReg.Do(func() {
		descriptor.Register(together.Kind, together.New)
	})
}

// RegisterProvider registers a custom provider factory under the given kind.
// It can be called before New to extend the engine with additional providers.
func RegisterProvider(kind string, factory descriptor.Factory) {
	ensureDefaults()
	descriptor.Register(kind, factory)
}

// Engine holds the provider descriptors built from configuration.
type Engine struct {
	cfgs        map[string]ProviderConfig
	descriptors map[string]descriptor.Descriptor
	entry       string
}

// New validates cfg and initializes every configured provider. A provider
// whose initialization fails makes New fail: the host must not offer a
// provider that is not fully usable.
func New(cfg Config) (*Engine, error) {
	ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfgs:        make(map[string]ProviderConfig, len(cfg.Providers)),
		descriptors: make(map[string]descriptor.Descriptor, len(cfg.Providers)),
		entry:       cfg.EntryProvider,
	}

	for _, pc := range cfg.Providers {
		d, err := buildDescriptor(pc)
		if err != nil {
			return nil, err
		}

		e.cfgs[pc.Name] = pc
		e.descriptors[pc.Name] = d
	}

	if e.entry == "" && len(cfg.Providers) == 1 {
		e.entry = cfg.Providers[0].Name
	}

	return e, nil
}

// buildDescriptor creates the descriptor for a provider config and checks
// the configured user settings against its customization schema.
func buildDescriptor(cfg ProviderConfig) (descriptor.Descriptor, error) {
	factory, ok := descriptor.Lookup(cfg.Kind)
	if !ok {
		return nil, fmt.Errorf("engine: unknown provider kind %q", cfg.Kind)
	}

	d, err := factory(descriptor.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Models:  cfg.Models,
	})
	if err != nil {
		return nil, fmt.Errorf("engine: provider %q: %w", cfg.Name, err)
	}

	if err := ValidateSettings(d.CustomizationSchema(), cfg.Settings); err != nil {
		return nil, fmt.Errorf("engine: provider %q: %w", cfg.Name, err)
	}

	return d, nil
}

// Descriptor returns the descriptor for the named provider, or the entry
// provider when name is empty.
func (e *Engine) Descriptor(name string) (descriptor.Descriptor, error) {
	if name == "" {
		name = e.entry
	}

	d, ok := e.descriptors[name]
	if !ok {
		return nil, fmt.Errorf("engine: unknown provider %q", name)
	}

	return d, nil
}

// Completer builds a fresh chat client for the named provider. Clients are
// created per conversation and share no state with each other.
func (e *Engine) Completer(name string) (provider.Completer, error) {
	d, err := e.Descriptor(name)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = e.entry
	}
	cfg := e.cfgs[name]

	factory := d.ClientFactory()

	c, err := factory(descriptor.ClientConfig{Model: cfg.Model})
	if err != nil {
		return nil, fmt.Errorf("engine: provider %q: %w", name, err)
	}

	return c, nil
}
