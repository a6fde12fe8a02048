// Package openaichat provides a generic Completer for OpenAI-compatible
// chat completions APIs. Service-specific providers bind it to their own
// endpoint, credential, and default model.
package openaichat

import (
	"context"
	"fmt"
	"net/http"

	"github.com/germanamz/togetherchat/pkg/chats/chat"
	"github.com/germanamz/togetherchat/pkg/chats/content"
	"github.com/germanamz/togetherchat/pkg/chats/message"
	"github.com/germanamz/togetherchat/pkg/chats/role"
	"github.com/germanamz/togetherchat/pkg/providers/provider"
)

const completionsPath = "/chat/completions"

var _ provider.Completer = (*Adapter)(nil)

// Adapter implements provider.Completer for any OpenAI-compatible chat
// completions API. The baseURL must include the version prefix
// (e.g. "https://api.openai.com/v1", no trailing slash).
type Adapter struct {
	provider.Client
}

// New creates an Adapter for the given endpoint, credential, and model.
// A nil httpClient falls back to http.DefaultClient.
func New(baseURL, apiKey, model string, httpClient *http.Client) *Adapter {
	a := &Adapter{
		Client: provider.NewClient(baseURL, provider.Auth{Key: apiKey}, httpClient),
	}
	a.Model = model

	return a
}

// Complete sends the conversation to the chat completions endpoint and
// returns the assistant's reply.
func (a *Adapter) Complete(ctx context.Context, c *chat.Chat) (message.Message, error) {
	req := a.buildRequest(c)

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return message.Message{}, fmt.Errorf("openaichat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return message.Message{}, fmt.Errorf("openaichat: empty choices in response")
	}

	return parseChoice(resp.Choices[0]), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message      apiRespMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type apiRespMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(c *chat.Chat) apiRequest {
	req := apiRequest{
		Model:     a.Model,
		MaxTokens: a.MaxTokens,
	}

	if a.Temperature != 0 {
		t := a.Temperature
		req.Temperature = &t
	}

	for _, m := range c.Messages() {
		req.Messages = append(req.Messages, apiMessage{
			Role:    m.Role.String(),
			Content: m.TextContent(),
		})
	}

	return req
}

func parseChoice(choice apiChoice) message.Message {
	var parts []content.Part

	if choice.Message.Content != nil && *choice.Message.Content != "" {
		parts = append(parts, content.Text{Text: *choice.Message.Content})
	}

	return message.New("", role.Assistant, parts...)
}
