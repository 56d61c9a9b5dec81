package sdk

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the persisted session record: the bearer token issued by the
// server, the role it was issued for, and the raw user profile exactly as the
// server returned it.
type Credentials struct {
	Token   string          `json:"token"`
	Role    string          `json:"role"`
	User    json.RawMessage `json:"user,omitempty"`
	SavedAt time.Time       `json:"saved_at"`
}

// ExpiresAt peeks at the token's exp claim without verifying the signature.
// The token is otherwise opaque to the client; the claim is advisory only
// (used by `dvsctl status` to warn about stale sessions).
func (c *Credentials) ExpiresAt() (time.Time, bool) {
	if c == nil || c.Token == "" {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(c.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Profile decodes the fields the client actually reads from the stored user
// record. Everything else stays in the raw payload untouched.
func (c *Credentials) Profile() (*Profile, error) {
	if c == nil || len(c.User) == 0 {
		return nil, nil
	}
	return DecodeProfile(c.User)
}

// CredentialStore abstracts durable persistence of the session record.
// Implementations are best-effort: a missing record is (nil, nil), not an
// error, and callers do not retry failed writes.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(credentials *Credentials) error
	Clear() error
}
