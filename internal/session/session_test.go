package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvsdigi/dvsapp/internal/store"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

func newAuthority(serverURL string, mem sdk.CredentialStore) *Authority {
	return New(mem, func() (*sdk.Client, error) {
		return sdk.NewClient(serverURL, sdk.WithCredentialStore(mem)), nil
	}, nil)
}

func loginHandler(t *testing.T, respond func(input sdk.LoginInput, w http.ResponseWriter)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/login", r.URL.Path)
		var input sdk.LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		respond(input, w)
	})
}

func TestBootstrapWithEmptyStore(t *testing.T) {
	a := newAuthority("http://unused.invalid", &store.Memory{})
	a.Bootstrap(context.Background())

	snap := a.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Authenticated())
	assert.Empty(t, snap.Role)
}

func TestBootstrapRestoresPersistedSession(t *testing.T) {
	mem := &store.Memory{}
	require.NoError(t, mem.Save(&sdk.Credentials{
		Token: "persisted-token",
		Role:  "teacher",
		User:  json.RawMessage(`{"name":"Asha","role":"teacher"}`),
	}))

	a := newAuthority("http://unused.invalid", mem)
	a.Bootstrap(context.Background())

	snap := a.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "persisted-token", snap.Token)
	assert.Equal(t, "teacher", snap.Role)
	assert.JSONEq(t, `{"name":"Asha","role":"teacher"}`, string(snap.User))

	// Running it again with unchanged storage yields the same state.
	a.Bootstrap(context.Background())
	assert.Equal(t, snap.Token, a.Token())
	assert.Equal(t, snap.Role, a.Role())
}

func TestBootstrapStorageErrorStartsUnauthenticated(t *testing.T) {
	a := newAuthority("http://unused.invalid", &failingStore{})
	a.Bootstrap(context.Background())

	assert.False(t, a.Snapshot().Authenticated())
	assert.False(t, a.IsLoading())
}

func TestLoginSuccessPersistsAndMirrors(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "fresh-token",
			"user":    map[string]any{"_id": "u1", "name": "Asha", "role": "teacher"},
		})
	}))
	defer server.Close()

	mem := &store.Memory{}
	a := newAuthority(server.URL, mem)

	result := a.Login(context.Background(), "teacher", "asha@school.test", "pw", "")
	require.True(t, result.Success, result.Message)

	snap := a.Snapshot()
	assert.Equal(t, "fresh-token", snap.Token)
	assert.Equal(t, "teacher", snap.Role)

	persisted, err := mem.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "fresh-token", persisted.Token)
	assert.Equal(t, "teacher", persisted.Role)
	assert.False(t, persisted.SavedAt.IsZero(), "the record must carry the time it was saved")
}

func TestLoginServerRoleWins(t *testing.T) {
	// The role on the returned user record routes navigation, not the one
	// the caller asked for.
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "t",
			"user":    map[string]any{"role": "accountant"},
		})
	}))
	defer server.Close()

	a := newAuthority(server.URL, &store.Memory{})
	result := a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	require.True(t, result.Success)
	assert.Equal(t, "accountant", a.Role())
}

func TestLoginRejectedKeepsStateUntouched(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})
	}))
	defer server.Close()

	mem := &store.Memory{}
	a := newAuthority(server.URL, mem)

	result := a.Login(context.Background(), "teacher", "x@school.test", "wrong", "")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)

	assert.False(t, a.Snapshot().Authenticated())
	persisted, err := mem.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted, "a failed login must not persist anything")
}

func TestLoginSuccessFalseBodyUsesServerMessage(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Account disabled"})
	}))
	defer server.Close()

	a := newAuthority(server.URL, &store.Memory{})
	result := a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	assert.False(t, result.Success)
	assert.Equal(t, "Account disabled", result.Message)
}

func TestLoginNetworkFailureIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	a := newAuthority(server.URL, &store.Memory{})
	result := a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	assert.False(t, result.Success)
	assert.Equal(t, "Network Error", result.Message)
}

func TestLoginPersistenceFailureStillAuthenticates(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "t", "user": map[string]any{"role": "teacher"}})
	}))
	defer server.Close()

	a := newAuthority(server.URL, &failingStore{})
	result := a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	require.True(t, result.Success)
	assert.True(t, a.Snapshot().Authenticated(), "session must live in memory even when the store write fails")
}

func TestLoginRejectsOverlappingAttempts(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(loginHandler(t, func(input sdk.LoginInput, w http.ResponseWriter) {
		close(started)
		<-release
		json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "t"})
	}))
	defer server.Close()

	a := newAuthority(server.URL, &store.Memory{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	}()

	<-started
	second := a.Login(context.Background(), "teacher", "x@school.test", "pw", "")
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "already in progress")

	close(release)
	wg.Wait()
}

func TestLogoutClearsMemoryAndStore(t *testing.T) {
	mem := &store.Memory{}
	require.NoError(t, mem.Save(&sdk.Credentials{Token: "t", Role: "teacher"}))

	a := newAuthority("http://unused.invalid", mem)
	a.Bootstrap(context.Background())
	require.True(t, a.Snapshot().Authenticated())

	a.Logout(context.Background())

	snap := a.Snapshot()
	assert.False(t, snap.Authenticated())
	assert.Empty(t, snap.Role)
	assert.Nil(t, snap.User)

	persisted, err := mem.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestLogoutSurvivesStoreFailure(t *testing.T) {
	a := newAuthority("http://unused.invalid", &failingStore{})
	a.Logout(context.Background())
	assert.False(t, a.Snapshot().Authenticated())
	assert.False(t, a.IsLoading())
}

// failingStore errors on every operation.
type failingStore struct{}

func (f *failingStore) Load() (*sdk.Credentials, error) { return nil, errStorage }
func (f *failingStore) Save(*sdk.Credentials) error     { return errStorage }
func (f *failingStore) Clear() error                    { return errStorage }

var errStorage = assert.AnError
