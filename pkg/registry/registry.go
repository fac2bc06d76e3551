package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/dohook/pkg/errors"
)

// Registry is a concurrency-safe catalog of items addressed by unique
// names. The zero value is not usable; create one with New.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register adds item under name. Empty and already taken names are
// rejected.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "catalog entry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.items[name]; taken {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already in the catalog", name).
			WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

// Get returns the item registered under name
func (r *Registry[T]) Get(name string) (T, error) {
	items, err := r.Lookup([]string{name})
	if err != nil {
		var zero T
		return zero, err
	}
	return items[0], nil
}

// Lookup resolves names in the order given. When any name is unknown no
// items are returned and the error lists every unknown name.
func (r *Registry[T]) Lookup(names []string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]T, 0, len(names))
	var missing []string
	for _, name := range names {
		item, ok := r.items[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		found = append(found, item)
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.ErrNotFound, "unknown: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}
	return found, nil
}

// List returns the registered names in sorted order
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustRegister registers item and panics on failure. Catalogs are built
// from literals, so a failure is a programming error.
func MustRegister[T any](reg *Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
