package session

import (
	"context"
	"sync"
)

// Hub keeps one Manager per user with a live session. Managers whose
// session has ended are dropped.
type Hub struct {
	mu       sync.Mutex
	managers map[string]*Manager
	factory  func(userID string) *Manager
}

// NewHub creates a Hub that builds managers with factory.
func NewHub(factory func(userID string) *Manager) *Hub {
	return &Hub{
		managers: make(map[string]*Manager),
		factory:  factory,
	}
}

// Manager returns the user's manager, creating it on first use.
func (h *Hub) Manager(userID string) *Manager {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.manager(userID)
}

// manager is Manager with h.mu held.
func (h *Hub) manager(userID string) *Manager {
	m, ok := h.managers[userID]
	if !ok {
		m = h.factory(userID)
		h.managers[userID] = m
	}
	return m
}

// Lookup returns the user's manager if the user has a session. An idle
// manager found here is dropped.
func (h *Hub) Lookup(userID string) (*Manager, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.managers[userID]
	if !ok {
		return nil, false
	}
	if m.idle() {
		delete(h.managers, userID)
		return nil, false
	}
	return m, true
}

// Start starts a session for plan.UserID and runs its countdown until ctx
// is cancelled or the session ends. The manager is dropped once it is idle
// again.
func (h *Hub) Start(ctx context.Context, plan Plan) (*Manager, *ActiveSession, error) {
	h.mu.Lock()
	m := h.manager(plan.UserID)
	s, err := m.Start(plan)
	h.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}

	go func() {
		m.Run(ctx)
		h.Release(plan.UserID)
	}()
	return m, s, nil
}

// Release drops the user's manager if it has no session.
func (h *Hub) Release(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if m, ok := h.managers[userID]; ok && m.idle() {
		delete(h.managers, userID)
	}
}

// Len returns the number of managers held.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.managers)
}

// EndAll ends every live session, e.g. on shutdown, and drops the idle
// managers.
func (h *Hub) EndAll(ctx context.Context, reason string) {
	h.mu.Lock()
	managers := make([]*Manager, 0, len(h.managers))
	for _, m := range h.managers {
		managers = append(managers, m)
	}
	h.mu.Unlock()

	for _, m := range managers {
		_, _ = m.End(ctx, reason)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, m := range h.managers {
		if m.idle() {
			delete(h.managers, userID)
		}
	}
}
