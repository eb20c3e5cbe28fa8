package listview

import "sync"

// Registry owns the live screens of each browser context, keyed by screen
// name. A screen is created when its dashboard view mounts and dropped with
// the context (logout or expiry).
type Registry struct {
	mu      sync.RWMutex
	screens map[string]map[string]interface{}
}

func NewRegistry() *Registry {
	return &Registry{
		screens: make(map[string]map[string]interface{}),
	}
}

func (r *Registry) Put(contextID, name string, screen interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.screens[contextID] == nil {
		r.screens[contextID] = make(map[string]interface{})
	}
	r.screens[contextID][name] = screen
}

func (r *Registry) get(contextID, name string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	screen, ok := r.screens[contextID][name]
	return screen, ok
}

// Drop forgets every screen of a context.
func (r *Registry) Drop(contextID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.screens, contextID)
}

// Lookup fetches a context's screen by name, typed.
func Lookup[T any](r *Registry, contextID, name string) (*Screen[T], bool) {
	raw, ok := r.get(contextID, name)
	if !ok {
		return nil, false
	}
	screen, ok := raw.(*Screen[T])
	return screen, ok
}
