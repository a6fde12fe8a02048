package engine

import (
	"fmt"

	"github.com/germanamz/togetherchat/pkg/providers/preset"
)

// ValidateSettings checks user-supplied setting values against a provider's
// customization schema. Unknown names, unsupported settings, wrong types,
// and out-of-range values are all rejected. Nested schemas are validated
// recursively; error messages use dotted paths.
func ValidateSettings(schema preset.Schema, values map[string]any) error {
	return validateSettings(schema, values, "")
}

func validateSettings(schema preset.Schema, values map[string]any, prefix string) error {
	for name, val := range values {
		path := prefix + name

		setting, ok := schema[name]
		if !ok {
			return fmt.Errorf("unknown setting %q", path)
		}

		switch s := setting.(type) {
		case preset.Unsupported:
			return fmt.Errorf("setting %q is not supported by this provider", path)

		case preset.Schema:
			nested, ok := val.(map[string]any)
			if !ok {
				return fmt.Errorf("setting %q: expected a map of settings, got %T", path, val)
			}
			if err := validateSettings(s, nested, path+"."); err != nil {
				return err
			}

		case preset.Value:
			if err := s.Check(val); err != nil {
				return fmt.Errorf("setting %q: %w", path, err)
			}

		default:
			return fmt.Errorf("setting %q: unrecognized schema entry %T", path, setting)
		}
	}

	return nil
}
