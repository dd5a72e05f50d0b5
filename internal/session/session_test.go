package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "token"))
}

func signedToken(t *testing.T, userName string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserName: userName,
		Email:    userName + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestStore_RoundTrip(t *testing.T) {
	store := tempStore(t)

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, store.Authenticated())

	token := signedToken(t, "jane", time.Now().Add(time.Hour))
	require.NoError(t, store.Save(token))

	got, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, store.Authenticated())

	claims, err := store.Claims()
	require.NoError(t, err)
	assert.Equal(t, "jane", claims.UserName)

	require.NoError(t, store.Clear())
	_, err = store.Token()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_ClearTwiceIsFine(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestAuthenticated_ExpiredTokenIsNotASession(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(signedToken(t, "jane", time.Now().Add(-time.Minute))))

	assert.False(t, store.Authenticated())
	_, err := store.Claims()
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestAuthenticated_OpaqueTokenCounts(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("not-a-jwt"))

	// The backend is the authority on opaque tokens; the client only
	// refuses tokens it can prove are expired.
	assert.True(t, store.Authenticated())
}

func TestInspect_Expiry(t *testing.T) {
	_, err := Inspect(signedToken(t, "jane", time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrExpiredToken)

	claims, err := Inspect(signedToken(t, "jane", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
}
