// Package store provides the in-memory account and session stores.
// There is no persistence layer in this service: accounts and refresh
// tokens live for the lifetime of the process, which is all the
// customer application needs.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cinemagico/customer-api/internal/model"
	"github.com/cinemagico/customer-api/internal/utils"
)

// ErrEmailExists is returned when registering an email that already
// has an account.  Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned by lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserStore keeps registered accounts keyed by normalized email.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	byID    map[uint64]*model.User
	nextID  uint64
}

// NewUserStore returns an empty account store.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uint64]*model.User),
	}
}

// RegisterInput carries the validated registration fields.  The
// password arrives in plain form and is hashed here.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate string
	Password  string
}

// Create hashes the password and inserts the account, returning the
// assigned id.  Emails are normalized to lower case before the
// uniqueness check.
func (s *UserStore) Create(in RegisterInput, bcryptCost int) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	hash, err := utils.HashPassword(in.Password, bcryptCost)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return 0, ErrEmailExists
	}
	s.nextID++
	u := &model.User{
		ID:           s.nextID,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		BirthDate:    in.BirthDate,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.byEmail[email] = u
	s.byID[u.ID] = u
	return u.ID, nil
}

// GetByEmail fetches an account by normalized email.
func (s *UserStore) GetByEmail(email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// GetByID fetches an account by id.
func (s *UserStore) GetByID(id uint64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}
