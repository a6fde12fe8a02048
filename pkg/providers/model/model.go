// Package model describes the models a provider can serve.
package model

import "sort"

// Spec holds the attributes of a single model.
type Spec struct {
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`
}

// Registry maps model identifiers to their attributes. It is populated once
// when a provider initializes and must not be mutated afterwards.
type Registry map[string]Spec

// Names returns the model identifiers in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the registry contains the given model identifier.
func (r Registry) Has(name string) bool {
	_, ok := r[name]
	return ok
}
