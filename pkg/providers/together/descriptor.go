package together

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/germanamz/togetherchat/pkg/providers/descriptor"
	"github.com/germanamz/togetherchat/pkg/providers/model"
	"github.com/germanamz/togetherchat/pkg/providers/provider"
)

const modelsPath = "/models"

var _ descriptor.Descriptor = (*Provider)(nil)

// Provider implements descriptor.Descriptor for Together AI. It resolves
// its model registry once during construction, either from pre-supplied
// host configuration or by querying the service, and is immutable
// afterwards.
type Provider struct {
	models     model.Registry
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a Provider from host configuration. When cfg.Models is set it
// is taken as-is and no network call is made; otherwise the model list is
// fetched from the service. A failed fetch fails construction.
func New(cfg descriptor.Config) (descriptor.Descriptor, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	p := &Provider{
		models:     cfg.Models,
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: cfg.HTTPClient,
	}

	if p.models == nil {
		models, err := p.fetchModels(context.Background())
		if err != nil {
			return nil, err
		}
		p.models = models
	}

	return p, nil
}

// apiModel is one entry of the service's model listing.
type apiModel struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ContextLength int    `json:"context_length"`
}

// fetchModels retrieves the model listing and keeps the chat-capable
// entries, keyed by id with their context length as max tokens. A listing
// with no chat entries yields an empty registry; only a missing or empty
// response is an error.
func (p *Provider) fetchModels(ctx context.Context) (model.Registry, error) {
	key, err := resolveAPIKey(p.apiKey)
	if err != nil {
		return nil, fmt.Errorf("together: fetch models: %w", err)
	}

	c := provider.NewClient(p.baseURL, provider.Auth{Key: key}, p.httpClient)

	var list []apiModel
	if err := c.GetJSON(ctx, modelsPath, &list); err != nil {
		return nil, fmt.Errorf("together: fetch models: %w", err)
	}

	if list == nil {
		return nil, errors.New("together: fetch models: response contained no model list")
	}

	models := make(model.Registry)
	for _, m := range list {
		if m.Type != "chat" {
			continue
		}
		models[m.ID] = model.Spec{MaxTokens: m.ContextLength}
	}

	return models, nil
}

// Name identifies the provider for logging and dispatch.
func (p *Provider) Name() string { return Kind }

// Capabilities returns the provider's capability flags and model registry.
// The model list is trusted as resolved; hosts should not re-validate it.
func (p *Provider) Capabilities() descriptor.Capabilities {
	return descriptor.Capabilities{
		Chat:           true,
		ValidateModels: false,
		Models:         p.models,
	}
}

// DefaultModel returns the fixed default model identifier.
func (p *Provider) DefaultModel() string { return DefaultModel }

// PrepareMessages returns the host's generic chat preparation routine;
// Together needs no provider-specific transformation.
func (p *Provider) PrepareMessages() descriptor.PrepareMessages {
	return descriptor.PrepareChatMessages
}

// ClientFactory returns a constructor for per-conversation chat clients.
// Settings left empty by the host default to the provider's own
// configuration.
func (p *Provider) ClientFactory() descriptor.ClientFactory {
	return func(cfg descriptor.ClientConfig) (provider.Completer, error) {
		if cfg.APIKey == "" {
			cfg.APIKey = p.apiKey
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = p.baseURL
		}
		if cfg.HTTPClient == nil {
			cfg.HTTPClient = p.httpClient
		}

		return NewAdapter(cfg)
	}
}
