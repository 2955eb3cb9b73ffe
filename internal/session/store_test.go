package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarT94/Webshop/internal/keystore"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newTestStore() (*Store, *keystore.Memory) {
	keys := keystore.NewMemory()
	return NewStore(keys, zerolog.Nop()), keys
}

func TestSetToken(t *testing.T) {
	store, keys := newTestStore()

	token := mintToken(t, jwt.MapClaims{
		"email":     "admin@shop.de",
		"firstName": "Ada",
		"lastName":  "Admin",
		"role":      "ROLE_ADMIN",
	})

	require.NoError(t, store.SetToken(token))

	assert.Equal(t, token, store.Token())
	assert.Equal(t, "admin@shop.de", store.Email())
	assert.Equal(t, "Ada", store.FirstName())
	assert.Equal(t, "Admin", store.LastName())
	assert.True(t, store.IsAdmin())
	assert.True(t, store.Authenticated())

	stored, found, err := keys.Get("token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, token, stored)

	email, found, err := keys.Get("tokenEmail")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "admin@shop.de", email)
}

func TestSetTokenSubjectFallback(t *testing.T) {
	store, _ := newTestStore()

	token := mintToken(t, jwt.MapClaims{"sub": "user@shop.de", "role": "ROLE_USER"})
	require.NoError(t, store.SetToken(token))

	assert.Equal(t, "user@shop.de", store.Email())
	assert.False(t, store.IsAdmin())
}

func TestSetTokenRejectsGarbage(t *testing.T) {
	store, keys := newTestStore()

	err := store.SetToken("not-a-token")
	assert.Error(t, err)

	assert.Empty(t, store.Token())
	assert.False(t, store.Authenticated())
	_, found, _ := keys.Get("token")
	assert.False(t, found)
}

func TestSetTokenRejectsMissingIdentity(t *testing.T) {
	store, _ := newTestStore()

	good := mintToken(t, jwt.MapClaims{"email": "user@shop.de"})
	require.NoError(t, store.SetToken(good))

	// A token without email or subject must not disturb the existing session.
	bad := mintToken(t, jwt.MapClaims{"role": "ROLE_ADMIN"})
	err := store.SetToken(bad)
	require.ErrorIs(t, err, ErrMissingIdentity)

	assert.Equal(t, good, store.Token())
	assert.Equal(t, "user@shop.de", store.Email())
	assert.False(t, store.IsAdmin())
}

func TestRestoreRoundTrip(t *testing.T) {
	keys := keystore.NewMemory()
	first := NewStore(keys, zerolog.Nop())

	token := mintToken(t, jwt.MapClaims{
		"email":     "admin@shop.de",
		"firstName": "Ada",
		"lastName":  "Admin",
		"role":      "ROLE_ADMIN",
	})
	require.NoError(t, first.SetToken(token))

	// A fresh store over the same keystore simulates a process restart.
	second := NewStore(keys, zerolog.Nop())
	restored, err := second.Restore()
	require.NoError(t, err)
	assert.True(t, restored)

	assert.Equal(t, first.Token(), second.Token())
	assert.Equal(t, first.Email(), second.Email())
	assert.Equal(t, first.FirstName(), second.FirstName())
	assert.Equal(t, first.LastName(), second.LastName())
	assert.Equal(t, first.IsAdmin(), second.IsAdmin())
}

func TestRestoreEmptyStorage(t *testing.T) {
	store, _ := newTestStore()

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, store.Authenticated())

	// Restore is idempotent and safe to call again.
	restored, err = store.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestRestoreRequiresIdentityMarker(t *testing.T) {
	store, keys := newTestStore()

	token := mintToken(t, jwt.MapClaims{"email": "user@shop.de"})
	require.NoError(t, keys.Put("token", token))
	// No tokenEmail key: the session was never fully persisted.

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, store.Authenticated())
}

func TestRestoreDropsCorruptToken(t *testing.T) {
	store, keys := newTestStore()

	require.NoError(t, keys.Put("token", "corrupt"))
	require.NoError(t, keys.Put("tokenEmail", "user@shop.de"))

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, store.Authenticated())

	_, found, _ := keys.Get("token")
	assert.False(t, found, "corrupt token should be wiped")
}

func TestLogout(t *testing.T) {
	store, keys := newTestStore()

	token := mintToken(t, jwt.MapClaims{"email": "user@shop.de", "firstName": "U"})
	require.NoError(t, store.SetToken(token))
	require.NoError(t, store.Logout())

	assert.Empty(t, store.Token())
	assert.Empty(t, store.Email())
	assert.Empty(t, store.FirstName())
	assert.False(t, store.IsAdmin())
	assert.False(t, store.Authenticated())

	for _, key := range []string{"token", "tokenEmail", "firstName", "lastName"} {
		_, found, _ := keys.Get(key)
		assert.False(t, found, "key %s should be gone", key)
	}

	// Logging out twice is harmless.
	require.NoError(t, store.Logout())
}
