package descriptor

import "sync"

var (
	factoryMu sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers a provider factory under the given kind. It can be
// called by hosts or plugins before providers are built from configuration.
// Registering the same kind twice replaces the earlier factory.
func Register(kind string, factory Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()

	factories[kind] = factory
}

// Lookup returns the factory registered for the given kind.
func Lookup(kind string) (Factory, bool) {
	factoryMu.RLock()
	defer factoryMu.RUnlock()

	f, ok := factories[kind]
	return f, ok
}

// Kinds returns the registered provider kinds.
func Kinds() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	return kinds
}
