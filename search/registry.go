package search

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Func)
)

// Register makes an algorithm available under name.
// It panics if name is empty, fn is nil, or name is already taken;
// registration happens from package init, so these are programming errors.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if name == "" || fn == nil {
		panic("search: Register called with empty name or nil func")
	}
	if _, dup := registry[name]; dup {
		panic("search: Register called twice for " + name)
	}
	registry[name] = fn
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Func, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}

	return fn, nil
}

// Names returns the registered algorithm names in ascending order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
