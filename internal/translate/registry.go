package translate

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Constructor builds an engine on first request.
type Constructor func() (Engine, error)

// Registry resolves translation engines by name with per-name memoization.
// CleanupAll is a global operation releasing every loaded instance.
type Registry struct {
	mu           sync.Mutex
	constructors map[Name]Constructor
	instances    map[Name]Engine
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[Name]Constructor),
		instances:    make(map[Name]Engine),
	}
}

// Register adds a constructor under a name.
func (r *Registry) Register(name Name, constructor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = constructor
}

// Get returns the engine for name, building and initializing it on first use.
func (r *Registry) Get(ctx context.Context, name Name) (Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if engine, ok := r.instances[name]; ok {
		return engine, nil
	}

	constructor, ok := r.constructors[name]
	if !ok {
		names := make([]Name, 0, len(r.constructors))
		for registered := range r.constructors {
			names = append(names, registered)
		}
		return nil, fmt.Errorf("unknown translation engine %q (registered: %v)", name, names)
	}
	engine, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("construct engine %s > %w", name, err)
	}
	if err := engine.Initialize(ctx); err != nil {
		return nil, &EngineError{Engine: name, Err: fmt.Errorf("initialize > %w", err)}
	}

	r.instances[name] = engine
	return engine, nil
}

// CleanupAll releases every loaded engine instance.
func (r *Registry) CleanupAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, engine := range r.instances {
		if err := engine.Cleanup(); err != nil {
			errs = append(errs, fmt.Errorf("cleanup %s > %w", name, err))
		}
		delete(r.instances, name)
	}
	return errors.Join(errs...)
}
