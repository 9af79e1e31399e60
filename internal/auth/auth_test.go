package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/storage/sqlite"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
}

func TestPasswordAuthenticator(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, " Lan@Example.com ", "Lan", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "lan@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := a.Register(ctx, "lan@example.com", "Lan again", "another password")
		assert.True(t, errors.Is(err, apperrors.ErrConflict), "got %v", err)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := a.Register(ctx, "minh@example.com", "Minh", "short")
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := a.Register(ctx, "not-an-email", "Minh", "long enough")
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
	})

	t.Run("login", func(t *testing.T) {
		got, err := a.Authenticate(ctx, "LAN@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err1 := a.Authenticate(ctx, "lan@example.com", "wrong password")
		_, err2 := a.Authenticate(ctx, "nobody@example.com", "correct horse")
		assert.Equal(t, ErrInvalidCredentials, err1)
		assert.Equal(t, ErrInvalidCredentials, err2)
	})
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "user-1", Email: "lan@example.com"}

	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "lan@example.com", claims.Email)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("a-different-secret-of-same-size!", time.Hour)
		_, err := other.Validate(token)
		assert.True(t, errors.Is(err, apperrors.ErrAuth))
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Validate(token)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token")
		assert.Equal(t, ErrInvalidToken, err)
	})
}
