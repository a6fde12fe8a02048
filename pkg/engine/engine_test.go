package engine_test

import (
	"testing"

	"github.com/germanamz/togetherchat/pkg/engine"
	"github.com/germanamz/togetherchat/pkg/providers/descriptor"
	"github.com/germanamz/togetherchat/pkg/providers/model"
	"github.com/germanamz/togetherchat/pkg/providers/together"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticConfig() engine.Config {
	return engine.Config{
		Providers: []engine.ProviderConfig{
			{
				Name:   "main",
				Kind:   together.Kind,
				APIKey: "test-key",
				Models: model.Registry{
					"m1": {MaxTokens: 4096},
					"m2": {MaxTokens: 8192},
				},
			},
		},
	}
}

func TestNew_BuildsDescriptor(t *testing.T) {
	eng, err := engine.New(staticConfig())
	require.NoError(t, err)

	d, err := eng.Descriptor("main")
	require.NoError(t, err)

	assert.Equal(t, "together", d.Name())
	assert.Len(t, d.Capabilities().Models, 2)
}

func TestNew_SingleProviderIsEntry(t *testing.T) {
	eng, err := engine.New(staticConfig())
	require.NoError(t, err)

	d, err := eng.Descriptor("")
	require.NoError(t, err)
	assert.Equal(t, "together", d.Name())
}

func TestNew_UnknownKind(t *testing.T) {
	cfg := engine.Config{
		Providers: []engine.ProviderConfig{{Name: "main", Kind: "no-such-kind"}},
	}

	_, err := engine.New(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider kind "no-such-kind"`)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := engine.New(engine.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one provider")
}

func TestNew_FailedProviderInit(t *testing.T) {
	t.Setenv(together.EnvAPIKey, "")

	// No static models and no credential: discovery cannot even start, so
	// initialization must fail and the provider must not be offered.
	cfg := engine.Config{
		Providers: []engine.ProviderConfig{{Name: "main", Kind: together.Kind}},
	}

	_, err := engine.New(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, together.ErrMissingAPIKey)
}

func TestNew_ValidatesSettings(t *testing.T) {
	cfg := staticConfig()
	cfg.Providers[0].Settings = map[string]any{"temperature": 5.0}

	_, err := engine.New(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `setting "temperature"`)
}

func TestNew_AcceptsValidSettings(t *testing.T) {
	cfg := staticConfig()
	cfg.Providers[0].Settings = map[string]any{
		"temperature": 0.7,
		"model_name":  "m1",
	}

	_, err := engine.New(cfg)
	assert.NoError(t, err)
}

func TestEngine_Completer(t *testing.T) {
	cfg := staticConfig()
	cfg.Providers[0].Model = "m2"

	eng, err := engine.New(cfg)
	require.NoError(t, err)

	c, err := eng.Completer("main")
	require.NoError(t, err)

	a, ok := c.(*together.Adapter)
	require.True(t, ok)
	assert.Equal(t, "m2", a.Model)
	assert.Equal(t, "test-key", a.Auth.Key)
}

func TestEngine_Completer_FreshPerCall(t *testing.T) {
	eng, err := engine.New(staticConfig())
	require.NoError(t, err)

	c1, err := eng.Completer("main")
	require.NoError(t, err)
	c2, err := eng.Completer("main")
	require.NoError(t, err)

	assert.NotSame(t, c1, c2)
}

func TestEngine_Completer_Unknown(t *testing.T) {
	eng, err := engine.New(staticConfig())
	require.NoError(t, err)

	_, err = eng.Completer("ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "ghost"`)
}

func TestRegisterProvider_CustomKind(t *testing.T) {
	called := false
	engine.RegisterProvider("custom-kind", func(cfg descriptor.Config) (descriptor.Descriptor, error) {
		called = true
		return together.New(descriptor.Config{APIKey: "k", Models: model.Registry{}})
	})

	cfg := engine.Config{
		Providers: []engine.ProviderConfig{{Name: "main", Kind: "custom-kind"}},
	}

	_, err := engine.New(cfg)
	require.NoError(t, err)
	assert.True(t, called)
}
