package store

import (
	"errors"
	"sync"
	"time"

	"github.com/cinemagico/customer-api/internal/model"
)

// ErrInvalidRefresh is returned when a refresh token hash is unknown,
// expired or revoked.
var ErrInvalidRefresh = errors.New("invalid refresh token")

// TokenStore keeps refresh tokens by their SHA-256 hash.  Only hashes
// are stored, so a leaked store dump cannot be replayed as sessions.
type TokenStore struct {
	mu     sync.Mutex
	byHash map[string]*model.RefreshToken
}

// NewTokenStore returns an empty refresh token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{byHash: make(map[string]*model.RefreshToken)}
}

// StoreRefresh records a freshly issued token hash for the user.
func (s *TokenStore) StoreRefresh(userID uint64, tokenHash string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byHash[tokenHash] = &model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: exp,
	}
	return nil
}

// ValidateRefresh returns the owning user id when the hash exists,
// has not expired and has not been revoked.
func (s *TokenStore) ValidateRefresh(tokenHash string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byHash[tokenHash]
	if !ok || t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
		return 0, ErrInvalidRefresh
	}
	return t.UserID, nil
}

// RevokeByHash marks a single token as revoked.  Revoking an unknown
// hash is a no-op.
func (s *TokenStore) RevokeByHash(tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.byHash[tokenHash]; ok && t.RevokedAt == nil {
		now := time.Now().UTC()
		t.RevokedAt = &now
	}
	return nil
}

// RevokeAllForUser revokes every active token owned by the user,
// logging them out of all sessions.
func (s *TokenStore) RevokeAllForUser(userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for _, t := range s.byHash {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}
