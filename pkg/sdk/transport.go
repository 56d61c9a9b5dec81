package sdk

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// StoreTokenSource returns an oauth2.TokenSource that reads the credential
// store on every call. The token is deliberately not cached in memory so that
// a login or logout in the same process (or another one sharing the store) is
// picked up by the next request.
func StoreTokenSource(store CredentialStore) oauth2.TokenSource {
	return &storeTokenSource{store: store}
}

type storeTokenSource struct {
	store CredentialStore
}

func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	creds, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || creds.Token == "" {
		return nil, nil
	}
	return &oauth2.Token{AccessToken: creds.Token, TokenType: "Bearer"}, nil
}

// authTransport is the outgoing request interceptor: it consults the token
// source per request and attaches the bearer header when a token exists, and
// stamps an X-Request-ID for server-side correlation. Requests without a
// token go out unauthenticated; a failed credential read is logged, never
// fatal.
type authTransport struct {
	source oauth2.TokenSource
	base   http.RoundTripper
	log    logrus.FieldLogger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	// Per RoundTripper contract the request must not be mutated.
	req = req.Clone(req.Context())
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	if t.source != nil {
		token, err := t.source.Token()
		switch {
		case err != nil:
			t.log.WithError(err).Warn("credential read failed, sending request unauthenticated")
		case token != nil && token.AccessToken != "":
			token.SetAuthHeader(req)
		}
	}

	return base.RoundTrip(req)
}
