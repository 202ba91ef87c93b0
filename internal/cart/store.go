package cart

import "sync"

// Store keeps one Cart per client session.  Sessions are identified by
// the opaque id issued by the session middleware; carts are created
// lazily on first access and discarded with the process, matching the
// no-persistence scope of this service.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore returns an empty session cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart bound to the session, creating it when absent.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Drop removes the cart bound to the session, if any.  Used after
// checkout and at logout so the next visit starts from an empty cart.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
