package transcribe

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Constructor builds an engine. Constructors are registered once at startup;
// the engine itself is only built and initialized on first request.
type Constructor func() (Engine, error)

// Registry resolves engines by name. Instances are memoized per name so that
// expensive model loading happens at most once; CleanupAll releases every
// loaded instance and is a global operation, not per-request.
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

// Register adds a constructor under a name. Registering the same name twice
// replaces the constructor but not an already-built instance.
func (r *Registry) Register(name Name, constructor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = constructor
}

// Names returns the registered engine names.
func (r *Registry) Names() []Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]Name, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	return names
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
		return nil, fmt.Errorf("unknown transcription engine %q (registered: %v)", name, r.namesLocked())
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

func (r *Registry) namesLocked() []Name {
	names := make([]Name, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	return names
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
