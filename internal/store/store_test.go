package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinemagico/customer-api/internal/store"
	"github.com/cinemagico/customer-api/internal/utils"
)

func register(t *testing.T, s *store.UserStore, email string) uint64 {
	t.Helper()
	id, err := s.Create(store.RegisterInput{
		FirstName: "María",
		LastName:  "García",
		Email:     email,
		Phone:     "3001234567",
		BirthDate: "1995-04-20",
		Password:  "Abc12345",
	}, bcrypt.MinCost)
	require.NoError(t, err)
	return id
}

func TestUserStoreCreateAndLookup(t *testing.T) {
	s := store.NewUserStore()
	id := register(t, s, "maria@example.com")

	u, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", u.Email)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "Abc12345"))
	assert.False(t, utils.VerifyPassword(u.PasswordHash, "otra"))

	// lookup normalizes case and whitespace
	u2, err := s.GetByEmail("  MARIA@EXAMPLE.COM ")
	require.NoError(t, err)
	assert.Equal(t, id, u2.ID)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	s := store.NewUserStore()
	register(t, s, "maria@example.com")

	_, err := s.Create(store.RegisterInput{Email: "MARIA@example.com", Password: "Abc12345"}, bcrypt.MinCost)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStoreUnknownLookups(t *testing.T) {
	s := store.NewUserStore()
	_, err := s.GetByEmail("nadie@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = s.GetByID(42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestTokenStoreLifecycle(t *testing.T) {
	s := store.NewTokenStore()
	hash := utils.HashRefreshRaw("raw-token")
	exp := time.Now().UTC().Add(time.Hour)

	require.NoError(t, s.StoreRefresh(7, hash, exp))

	uid, err := s.ValidateRefresh(hash)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)

	require.NoError(t, s.RevokeByHash(hash))
	_, err = s.ValidateRefresh(hash)
	assert.ErrorIs(t, err, store.ErrInvalidRefresh)
}

func TestTokenStoreExpiry(t *testing.T) {
	s := store.NewTokenStore()
	hash := utils.HashRefreshRaw("stale")
	require.NoError(t, s.StoreRefresh(7, hash, time.Now().UTC().Add(-time.Minute)))

	_, err := s.ValidateRefresh(hash)
	assert.ErrorIs(t, err, store.ErrInvalidRefresh)
}

func TestTokenStoreRevokeAllForUser(t *testing.T) {
	s := store.NewTokenStore()
	exp := time.Now().UTC().Add(time.Hour)
	h1 := utils.HashRefreshRaw("a")
	h2 := utils.HashRefreshRaw("b")
	h3 := utils.HashRefreshRaw("c")
	require.NoError(t, s.StoreRefresh(1, h1, exp))
	require.NoError(t, s.StoreRefresh(1, h2, exp))
	require.NoError(t, s.StoreRefresh(2, h3, exp))

	require.NoError(t, s.RevokeAllForUser(1))

	_, err := s.ValidateRefresh(h1)
	assert.ErrorIs(t, err, store.ErrInvalidRefresh)
	_, err = s.ValidateRefresh(h2)
	assert.ErrorIs(t, err, store.ErrInvalidRefresh)
	uid, err := s.ValidateRefresh(h3)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), uid)
}

func TestValidateUnknownHash(t *testing.T) {
	s := store.NewTokenStore()
	_, err := s.ValidateRefresh(utils.HashRefreshRaw("nunca"))
	assert.ErrorIs(t, err, store.ErrInvalidRefresh)
}
