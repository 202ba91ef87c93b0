package reservation

import (
	"sync"
	"time"

	"github.com/cinemagico/customer-api/internal/model"
)

// Store holds all reservations in memory, keyed by id.  It is the only
// writer of reservation status: the booking flow inserts records via
// Add and every later change goes through Confirm, MarkUsed or Cancel.
// Cancelled reservations are retained with their terminal status and
// merely filtered out of the active/upcoming listings, so history stays
// queryable by id.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*model.Reservation
	order []string // insertion order for stable listings
}

// NewStore returns an empty reservation store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*model.Reservation)}
}

// Add inserts a reservation created by the booking flow.  New records
// must arrive in pendiente or confirmada state; anything else is
// rejected as an invalid transition from nothing.
func (s *Store) Add(r model.Reservation) error {
	if r.Status != model.StatusPending && r.Status != model.StatusConfirmed {
		return ErrInvalidTransition
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[r.ID]; exists {
		return ErrInvalidTransition
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.byID[r.ID] = &r
	s.order = append(s.order, r.ID)
	return nil
}

// Get returns a snapshot of the reservation owned by userID.
func (s *Store) Get(userID uint64, id string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok || r.UserID != userID {
		return model.Reservation{}, ErrNotFound
	}
	return *r, nil
}

// Cancel transitions a pendiente or confirmada reservation to
// cancelada.  The record is kept with its terminal status and dropped
// from the active listings.  Callers are expected to have gated the
// call behind a user confirmation step; the store itself asks nothing.
func (s *Store) Cancel(userID uint64, id string) (model.Reservation, error) {
	return s.transition(userID, id, model.StatusCancelled)
}

// Confirm transitions a pendiente reservation to confirmada.  The
// trigger (payment completion) lives outside this service.
func (s *Store) Confirm(userID uint64, id string) (model.Reservation, error) {
	return s.transition(userID, id, model.StatusConfirmed)
}

// MarkUsed transitions a confirmada reservation to usada.  The trigger
// (admission at showtime) lives outside this service.
func (s *Store) MarkUsed(userID uint64, id string) (model.Reservation, error) {
	return s.transition(userID, id, model.StatusUsed)
}

// transition applies the state machine.  It validates the edge before
// touching the record so a failed call leaves the store unchanged.
func (s *Store) transition(userID uint64, id string, to model.ReservationStatus) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok || r.UserID != userID {
		return model.Reservation{}, ErrNotFound
	}
	if !allowed(r.Status, to) {
		return model.Reservation{}, ErrInvalidTransition
	}
	r.Status = to
	r.UpdatedAt = time.Now().UTC()
	return *r, nil
}

// allowed encodes the closed transition table.
func allowed(from, to model.ReservationStatus) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case model.StatusConfirmed:
		return from == model.StatusPending
	case model.StatusUsed:
		return from == model.StatusConfirmed
	case model.StatusCancelled:
		return from == model.StatusPending || from == model.StatusConfirmed
	}
	return false
}

// ListActive returns the user's confirmada and usada reservations in
// insertion order: the bookings that already went through payment.
func (s *Store) ListActive(userID uint64) []model.Reservation {
	return s.list(userID, model.StatusConfirmed, model.StatusUsed)
}

// ListUpcoming returns the user's pendiente reservations in insertion
// order: bookings still awaiting payment.
func (s *Store) ListUpcoming(userID uint64) []model.Reservation {
	return s.list(userID, model.StatusPending)
}

func (s *Store) list(userID uint64, statuses ...model.ReservationStatus) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, 0)
	for _, id := range s.order {
		r := s.byID[id]
		if r.UserID != userID {
			continue
		}
		for _, st := range statuses {
			if r.Status == st {
				out = append(out, *r)
				break
			}
		}
	}
	return out
}
