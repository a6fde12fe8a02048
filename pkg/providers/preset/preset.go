// Package preset describes which settings a user may configure for a
// provider and the constraints on their values.
//
// A provider exposes a [Schema] mapping setting names to descriptors. The
// schema is purely declarative; enforcement happens in the host's settings
// validation, not in the provider.
package preset

import (
	"fmt"
	"slices"
)

// Kind is the value type a setting accepts.
type Kind string

const (
	Bool   Kind = "bool"
	Int    Kind = "int"
	Float  Kind = "float"
	String Kind = "string"
	Map    Kind = "map"
)

// Setting is one entry in a Schema: a constrained [Value], a nested
// [Schema], or [Unsupported].
type Setting interface {
	setting()
}

// Schema maps setting names to their descriptors.
type Schema map[string]Setting

func (Schema) setting() {}

// Unsupported marks a setting the provider knows about but does not support.
// Hosts should reject any attempt to set it.
type Unsupported struct{}

func (Unsupported) setting() {}

// Value describes a single user-configurable setting.
type Value struct {
	Kind      Kind
	Min, Max  *float64 // Numeric bounds, inclusive; nil means unbounded.
	Options   []string // Allowed values for string settings; empty means any.
	AllowNone bool     // Whether the setting may be explicitly unset.
	Private   bool     // Secret value; hosts must mask it when displaying.
}

func (Value) setting() {}

// Bounded returns a Value of the given kind constrained to [min, max].
func Bounded(kind Kind, min, max float64) Value {
	return Value{Kind: kind, Min: &min, Max: &max}
}

// Check reports whether val is acceptable for the setting. A nil val is
// accepted only when AllowNone is set.
func (v Value) Check(val any) error {
	if val == nil {
		if v.AllowNone {
			return nil
		}
		return fmt.Errorf("value is required")
	}

	switch v.Kind {
	case Bool:
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", val)
		}

	case Int:
		n, ok := val.(int)
		if !ok {
			return fmt.Errorf("expected int, got %T", val)
		}
		return v.checkBounds(float64(n))

	case Float:
		f, ok := val.(float64)
		if !ok {
			return fmt.Errorf("expected float, got %T", val)
		}
		return v.checkBounds(f)

	case String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if len(v.Options) > 0 && !slices.Contains(v.Options, s) {
			return fmt.Errorf("%q is not one of the allowed values", s)
		}

	case Map:
		if _, ok := val.(map[string]any); !ok {
			return fmt.Errorf("expected map, got %T", val)
		}

	default:
		return fmt.Errorf("unknown setting kind %q", v.Kind)
	}

	return nil
}

func (v Value) checkBounds(f float64) error {
	if v.Min != nil && f < *v.Min {
		return fmt.Errorf("%v is below the minimum %v", f, *v.Min)
	}
	if v.Max != nil && f > *v.Max {
		return fmt.Errorf("%v is above the maximum %v", f, *v.Max)
	}
	return nil
}
