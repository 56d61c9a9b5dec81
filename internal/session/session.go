// Package session owns the process-wide session: the bearer token, the role
// it was issued for, and the user profile. It is the only writer of that
// state; everything else (the role router, commands) reads snapshots.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// Result is the outcome of a login attempt. Message is human-readable: the
// server's own message when it reported a failure, a generic fallback when
// the network did.
type Result struct {
	Success bool
	Message string
}

// genericNetworkMessage is shown when the server could not be reached at all.
const genericNetworkMessage = "Network Error"

// Snapshot is a point-in-time read of the session. Token being non-empty is
// what "authenticated" means; Role and User are expected alongside it but not
// enforced (the server owns that coupling).
type Snapshot struct {
	Loading bool
	Token   string
	Role    string
	User    json.RawMessage
}

// Authenticated reports whether the snapshot carries a token.
func (s Snapshot) Authenticated() bool { return s.Token != "" }

// ClientProvider yields the API client on demand. Resolution is deferred so
// the server URL can come from flags parsed after the authority is built.
type ClientProvider func() (*sdk.Client, error)

// Authority owns login/logout transitions and session bootstrap. All public
// operations resolve to a Result or complete void; nothing escapes as a
// panic or error.
type Authority struct {
	mu    sync.RWMutex
	token string
	role  string
	user  json.RawMessage

	loading       atomic.Bool
	loginInFlight atomic.Bool

	store  sdk.CredentialStore
	client ClientProvider
	log    logrus.FieldLogger
}

// New creates an Authority over the given store and client provider.
func New(store sdk.CredentialStore, client ClientProvider, log logrus.FieldLogger) *Authority {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Authority{store: store, client: client, log: log}
}

// Bootstrap restores a persisted session, once, at process start. Storage
// errors are logged and treated as "no session found". Calling it again with
// unchanged storage yields the same state.
func (a *Authority) Bootstrap(ctx context.Context) {
	a.loading.Store(true)
	defer a.loading.Store(false)

	creds, err := a.store.Load()
	if err != nil {
		a.log.WithError(err).Warn("session restore failed, starting unauthenticated")
		return
	}
	if creds == nil || creds.Token == "" {
		return
	}

	a.mu.Lock()
	a.token = creds.Token
	a.role = creds.Role
	a.user = creds.User
	a.mu.Unlock()
}

// Login authenticates with the server and, on success, persists the session
// record and mirrors it into memory. Overlapping calls are rejected rather
// than raced. sessionLabel may be empty for roles that do not require one.
func (a *Authority) Login(ctx context.Context, role, email, password, sessionLabel string) Result {
	if !a.loginInFlight.CompareAndSwap(false, true) {
		return Result{Success: false, Message: "a login attempt is already in progress"}
	}
	defer a.loginInFlight.Store(false)

	a.loading.Store(true)
	defer a.loading.Store(false)

	client, err := a.client()
	if err != nil {
		a.log.WithError(err).Error("login failed: no API client")
		return Result{Success: false, Message: genericNetworkMessage}
	}

	resp, err := client.Login(ctx, sdk.LoginInput{
		Email:    email,
		Password: password,
		Role:     role,
		Session:  sessionLabel,
	})
	if err != nil {
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return Result{Success: false, Message: apiErr.Message}
		}
		a.log.WithError(err).Error("login failed")
		return Result{Success: false, Message: genericNetworkMessage}
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Login failed"
		}
		return Result{Success: false, Message: message}
	}

	// The role that routes navigation is the one the server put on the user
	// record, not the one that was asked for.
	grantedRole := role
	if profile, err := sdk.DecodeProfile(resp.User); err == nil && profile != nil && profile.Role != "" {
		grantedRole = profile.Role
	}

	creds := &sdk.Credentials{Token: resp.Token, Role: grantedRole, User: resp.User, SavedAt: time.Now()}
	if err := a.store.Save(creds); err != nil {
		// Persistence is best-effort: the session still works for this
		// process, it just will not survive a restart.
		a.log.WithError(err).Warn("failed to persist session")
	}

	a.mu.Lock()
	a.token = resp.Token
	a.role = grantedRole
	a.user = resp.User
	a.mu.Unlock()

	return Result{Success: true}
}

// Logout clears the in-memory session first, then best-effort removes the
// persisted record. It always succeeds from the caller's perspective and
// does not call the server (tokens are stateless).
func (a *Authority) Logout(ctx context.Context) {
	a.mu.Lock()
	a.token = ""
	a.role = ""
	a.user = nil
	a.mu.Unlock()

	a.loading.Store(true)
	defer a.loading.Store(false)
	if err := a.store.Clear(); err != nil {
		a.log.WithError(err).Warn("failed to clear persisted session")
	}
}

// Snapshot returns a consistent read of the current session.
func (a *Authority) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{
		Loading: a.loading.Load(),
		Token:   a.token,
		Role:    a.role,
		User:    a.user,
	}
}

// Token returns the current bearer token, empty when unauthenticated.
func (a *Authority) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// Role returns the current role identifier, empty when unauthenticated.
func (a *Authority) Role() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.role
}

// User returns the raw profile payload, nil when unauthenticated.
func (a *Authority) User() json.RawMessage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// IsLoading reports whether a bootstrap, login or logout is in flight.
func (a *Authority) IsLoading() bool { return a.loading.Load() }
