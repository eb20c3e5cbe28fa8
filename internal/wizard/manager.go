package wizard

import "sync"

// Manager holds the live wizard of each browser context. A context gets at
// most one; it is created lazily on first use and dropped with the context.
type Manager struct {
	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewManager() *Manager {
	return &Manager{
		wizards: make(map[string]*Wizard),
	}
}

func (m *Manager) Get(contextID string) *Wizard {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[contextID]
	if !ok {
		w = New()
		m.wizards[contextID] = w
	}
	return w
}

// Drop releases the context's wizard and its image buffers.
func (m *Manager) Drop(contextID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.wizards[contextID]; ok {
		w.Reset()
		delete(m.wizards, contextID)
	}
}
