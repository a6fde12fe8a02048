// Package descriptor defines the contract a provider plugin exposes to the
// host: identity, capabilities, configuration schema, and a client factory.
package descriptor

import (
	"net/http"

	"github.com/germanamz/togetherchat/pkg/chats/chat"
	"github.com/germanamz/togetherchat/pkg/chats/message"
	"github.com/germanamz/togetherchat/pkg/providers/model"
	"github.com/germanamz/togetherchat/pkg/providers/preset"
	"github.com/germanamz/togetherchat/pkg/providers/provider"
)

// Capabilities advertises what a provider can do and which models it serves.
type Capabilities struct {
	Chat           bool           // The provider can complete chat conversations.
	ValidateModels bool           // Whether the host should re-validate model names against a canonical list.
	Models         model.Registry // Models the provider resolved at initialization.
}

// ClientConfig carries the per-conversation settings a host passes when
// instantiating a chat client.
type ClientConfig struct {
	APIKey     string       // Explicit credential; empty means use the provider's default source.
	BaseURL    string       // Override for the provider's endpoint; empty means the provider default.
	Model      string       // Model to use; empty means the provider default.
	HTTPClient *http.Client // Optional transport; nil means the client's default.
}

// ClientFactory builds a chat client for one conversation.
type ClientFactory func(cfg ClientConfig) (provider.Completer, error)

// PrepareMessages turns a conversation into the message sequence sent to a
// chat model.
type PrepareMessages func(c *chat.Chat) []message.Message

// PrepareChatMessages is the host's generic preparation routine for chat
// models: the conversation is sent as-is.
func PrepareChatMessages(c *chat.Chat) []message.Message {
	return c.Messages()
}

// Descriptor advertises a provider to the host. Implementations resolve
// their model registry during construction and are immutable afterwards.
type Descriptor interface {
	// Name identifies the provider for logging and dispatch.
	Name() string

	// Capabilities returns the provider's capability flags and model registry.
	Capabilities() Capabilities

	// DefaultModel returns the model used when the user picks none.
	DefaultModel() string

	// PrepareMessages returns the message-preparation routine for this provider.
	PrepareMessages() PrepareMessages

	// ClientFactory returns the constructor the host uses to create a chat
	// client per conversation.
	ClientFactory() ClientFactory

	// CustomizationSchema describes the settings a user may configure.
	CustomizationSchema() preset.Schema
}

// Config carries the host configuration a provider receives when it
// initializes.
type Config struct {
	APIKey     string         // Explicit credential; empty means the provider's default source.
	BaseURL    string         // Endpoint override; empty means the provider default.
	Models     model.Registry // Pre-supplied model registry; when set, discovery is skipped.
	HTTPClient *http.Client   // Optional transport for discovery and clients.
}

// Factory creates a Descriptor from host configuration.
type Factory func(cfg Config) (Descriptor, error)
