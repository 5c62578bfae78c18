// Package modules holds the module registry. Each module answers one kind of
// catalog query and shapes the outcome into a types.ModuleResult.
package modules

import (
	"context"
	"sort"
	"sync"

	"github.com/mamercad/clickops/internal/types"
)

// Catalog is the read-only view of the remote 1-Click catalog that modules
// consume. *doapi.Client satisfies it.
type Catalog interface {
	ListOneClicks(ctx context.Context) ([]types.OneClick, error)
}

// Module is a single query implementation.
type Module interface {
	Name() string

	// Validate checks the query parameters before any network call is made.
	Validate(q types.QueryDefinition) error

	// Run executes the query. Failures are reported inside the result, not
	// as an error; a ModuleResult always comes back.
	Run(ctx context.Context, catalog Catalog, q types.QueryDefinition) types.ModuleResult
}

var (
	mu       sync.RWMutex
	registry = map[string]Module{}
)

// Register adds a module to the registry, replacing any previous module with
// the same name. Modules self-register from their package init.
func Register(m Module) {
	mu.Lock()
	defer mu.Unlock()
	registry[m.Name()] = m
}

// Get looks up a module by name.
func Get(name string) (Module, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := registry[name]
	return m, ok
}

// Names returns the registered module names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
