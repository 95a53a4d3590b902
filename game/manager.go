package game

import "sync"

// Manager tracks the active round for each client. Rounds for different
// clients are independent; the map itself is guarded for concurrent HTTP
// handlers.
type Manager struct {
	mu     sync.RWMutex
	rounds map[string]*Round
}

func NewManager() *Manager {
	return &Manager{rounds: make(map[string]*Round)}
}

// Get returns the client's round, or nil if none exists.
func (m *Manager) Get(clientID string) *Round {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rounds[clientID]
}

// GetOrCreate returns the client's round, creating one in the betting phase
// if the client has none.
func (m *Manager) GetOrCreate(clientID string) *Round {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rounds[clientID]; ok {
		return r
	}
	r := NewRound()
	m.rounds[clientID] = r
	return r
}

// Set replaces the client's round.
func (m *Manager) Set(clientID string, r *Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[clientID] = r
}

// Delete removes the client's round.
func (m *Manager) Delete(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, clientID)
}
