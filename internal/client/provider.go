// Package client wires the credential store into authenticated API clients.
package client

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// Provider lazily yields the shared API client backed by the credential
// store. The server URL may be set any time before the first SDKClient call
// (it comes from flags parsed after construction).
type Provider struct {
	mu             sync.Mutex
	serverURL      string
	bearerToken    string // ephemeral token that bypasses the store (for testing)
	store          sdk.CredentialStore
	log            logrus.FieldLogger
	onUnauthorized func()

	sdkOnce   sync.Once
	sdkClient *sdk.Client
}

// NewProvider constructs a Provider over the given credential store.
func NewProvider(store sdk.CredentialStore, log logrus.FieldLogger) *Provider {
	return &Provider{store: store, log: log}
}

// SetServerURL sets the API server base URL. Calls after the client has been
// built are ignored.
func (p *Provider) SetServerURL(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.serverURL = url
}

// SetBearerToken injects an ephemeral bearer token that bypasses the
// credential store (for testing/CI).
func (p *Provider) SetBearerToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bearerToken = token
}

// SetOnUnauthorized registers the hook the gateway fires on a 401 response.
func (p *Provider) SetOnUnauthorized(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUnauthorized = fn
}

// SDKClient returns the shared API client, building it on first use.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		opts := []sdk.ClientOption{
			sdk.WithLogger(p.log),
			sdk.WithOnUnauthorized(p.onUnauthorized),
		}
		if p.bearerToken != "" {
			opts = append(opts, sdk.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: p.bearerToken,
				TokenType:   "Bearer",
			})))
		} else {
			opts = append(opts, sdk.WithCredentialStore(p.store))
		}

		p.sdkClient = sdk.NewClient(p.serverURL, opts...)
	})
	return p.sdkClient, nil
}
