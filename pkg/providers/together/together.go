// Package together adapts the Together AI chat completions service to the
// host's provider contract. Together speaks the OpenAI wire format, so the
// chat client is the generic OpenAI-compatible adapter bound to Together's
// endpoint, credential, and default model.
package together

import (
	"errors"
	"os"

	"github.com/germanamz/togetherchat/pkg/providers/descriptor"
	"github.com/germanamz/togetherchat/pkg/providers/openaichat"
	"github.com/germanamz/togetherchat/pkg/providers/provider"
)

const (
	// Kind is the provider kind this plugin registers under.
	Kind = "together"

	// DefaultBaseURL is the base URL for the Together AI API.
	DefaultBaseURL = "https://api.together.xyz/v1"

	// DefaultModel is used when the user picks no model.
	DefaultModel = "meta-llama/Llama-3-8b-chat-hf"

	// EnvAPIKey is the environment variable the credential falls back to
	// when none is supplied explicitly.
	EnvAPIKey = "TOGETHER_API_KEY"

	// llmType distinguishes this client from the generic OpenAI-compatible
	// one in host logs and dispatch.
	llmType = "chat_together"
)

// ErrMissingAPIKey is returned when no credential is supplied and
// TOGETHER_API_KEY is not set.
var ErrMissingAPIKey = errors.New("TOGETHER_API_KEY is not set")

var _ provider.Completer = (*Adapter)(nil)

// Adapter is the Together chat client. It behaves exactly like the generic
// OpenAI-compatible adapter; only the endpoint, credential, and default
// model are pre-bound.
type Adapter struct {
	*openaichat.Adapter
}

// NewAdapter creates an Adapter from per-conversation settings. The
// credential comes from cfg.APIKey or, when empty, from TOGETHER_API_KEY;
// if neither is set it fails with ErrMissingAPIKey before any network use.
func NewAdapter(cfg descriptor.ClientConfig) (*Adapter, error) {
	key, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Adapter{
		Adapter: openaichat.New(baseURL, key, model, cfg.HTTPClient),
	}, nil
}

// LLMType returns the type identifier for this client.
func (a *Adapter) LLMType() string { return llmType }

// resolveAPIKey is the single place the credential environment variable is
// read.
func resolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}
