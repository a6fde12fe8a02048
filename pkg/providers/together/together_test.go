package together_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/togetherchat/pkg/chats/chat"
	"github.com/germanamz/togetherchat/pkg/chats/message"
	"github.com/germanamz/togetherchat/pkg/chats/role"
	"github.com/germanamz/togetherchat/pkg/providers/descriptor"
	"github.com/germanamz/togetherchat/pkg/providers/together"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapter_Defaults(t *testing.T) {
	a, err := together.NewAdapter(descriptor.ClientConfig{APIKey: "explicit-key"})
	require.NoError(t, err)

	assert.Equal(t, together.DefaultBaseURL, a.BaseURL)
	assert.Equal(t, together.DefaultModel, a.Model)
	assert.Equal(t, "explicit-key", a.Auth.Key)
}

func TestNewAdapter_Overrides(t *testing.T) {
	a, err := together.NewAdapter(descriptor.ClientConfig{
		APIKey:  "k",
		BaseURL: "https://proxy.example.com/v1",
		Model:   "mistralai/Mixtral-8x7B-Instruct-v0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://proxy.example.com/v1", a.BaseURL)
	assert.Equal(t, "mistralai/Mixtral-8x7B-Instruct-v0.1", a.Model)
}

func TestNewAdapter_EnvCredential(t *testing.T) {
	t.Setenv(together.EnvAPIKey, "env-key")

	a, err := together.NewAdapter(descriptor.ClientConfig{})
	require.NoError(t, err)

	assert.Equal(t, "env-key", a.Auth.Key)
}

func TestNewAdapter_ExplicitKeyWinsOverEnv(t *testing.T) {
	t.Setenv(together.EnvAPIKey, "env-key")

	a, err := together.NewAdapter(descriptor.ClientConfig{APIKey: "explicit-key"})
	require.NoError(t, err)

	assert.Equal(t, "explicit-key", a.Auth.Key)
}

func TestNewAdapter_MissingCredential(t *testing.T) {
	t.Setenv(together.EnvAPIKey, "")

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, err := together.NewAdapter(descriptor.ClientConfig{BaseURL: srv.URL})

	require.ErrorIs(t, err, together.ErrMissingAPIKey)
	assert.Equal(t, 0, calls) // fails before any network use
}

func TestAdapter_LLMType(t *testing.T) {
	a, err := together.NewAdapter(descriptor.ClientConfig{APIKey: "k"})
	require.NoError(t, err)

	assert.Equal(t, "chat_together", a.LLMType())
}

func TestAdapter_Complete_Delegates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, together.DefaultModel, req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi from Llama"},"finish_reason":"stop"}]}`))
	}))
	t.Cleanup(srv.Close)

	a, err := together.NewAdapter(descriptor.ClientConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	c := chat.New(message.NewText("user", role.User, "hello"))

	reply, err := a.Complete(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, role.Assistant, reply.Role)
	assert.Equal(t, "hi from Llama", reply.TextContent())
}
