package together

import "github.com/germanamz/togetherchat/pkg/providers/preset"

// CustomizationSchema describes the settings a user may configure for this
// provider. It is static except for the model_name options, which always
// come from the resolved model registry.
func (p *Provider) CustomizationSchema() preset.Schema {
	return preset.Schema{
		"verbose":    preset.Value{Kind: preset.Bool},
		"model_name": preset.Value{Kind: preset.String, Options: p.models.Names()},

		"temperature": preset.Bounded(preset.Float, 0, 2),

		"api_base":     preset.Value{Kind: preset.String, AllowNone: true},
		"api_key":      preset.Value{Kind: preset.String, AllowNone: true, Private: true},
		"organization": preset.Value{Kind: preset.String, AllowNone: true, Private: true},

		"request_timeout": preset.Value{Kind: preset.Int},
		"max_retries":     preset.Bounded(preset.Int, 1, 10),
		"n":               preset.Bounded(preset.Int, 1, 10),
		"max_tokens":      preset.Value{Kind: preset.Int, AllowNone: true},

		"tools":       preset.Unsupported{},
		"tool_choice": preset.Unsupported{},

		"model_kwargs": preset.Schema{
			"top_p":             preset.Bounded(preset.Float, 0, 1),
			"presence_penalty":  preset.Bounded(preset.Float, -2, 2),
			"frequency_penalty": preset.Bounded(preset.Float, -2, 2),
			"logit_bias":        preset.Value{Kind: preset.Map},
			"logprobs":          preset.Value{Kind: preset.Bool, AllowNone: true},
			"top_logprobs":      boundedWithNone(preset.Int, 0, 20),
			"response_format":   preset.Value{Kind: preset.Map},
			"stop":              preset.Value{Kind: preset.String, AllowNone: true},
			"user":              preset.Value{Kind: preset.String},
		},
	}
}

func boundedWithNone(kind preset.Kind, min, max float64) preset.Value {
	v := preset.Bounded(kind, min, max)
	v.AllowNone = true
	return v
}
