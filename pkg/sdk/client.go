package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	// APIPrefix is the versioned path prefix every endpoint lives under.
	APIPrefix = "/api/v1"

	// RequestTimeout is the fixed timeout applied to every request made
	// through the shared client.
	RequestTimeout = 10 * time.Second

	// maxErrorBody bounds how much of an error response is logged and
	// retained on APIError.
	maxErrorBody = 4 << 10
)

// Client provides a typed interface to the school ERP REST API. All calls go
// through one shared http.Client with a fixed base URL and timeout; the
// bearer token is attached transparently by the transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
	validate   *validator.Validate
	source     oauth2.TokenSource
	onUnauth   func()
}

// ClientOptions configures client construction.
type ClientOptions struct {
	// HTTPClient overrides the shared client entirely. Timeout and token
	// attachment become the caller's responsibility.
	HTTPClient *http.Client
	// CredentialStore backs the per-request token read.
	CredentialStore CredentialStore
	// TokenSource overrides CredentialStore as the token supplier.
	TokenSource oauth2.TokenSource
	// Logger receives gateway-level request/response diagnostics.
	Logger logrus.FieldLogger
	// OnUnauthorized fires once per 401 response. Left nil, a 401 is only
	// logged and the error still reaches the caller.
	OnUnauthorized func()
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) { opts.HTTPClient = client }
}

// WithCredentialStore wires the store the transport reads tokens from.
func WithCredentialStore(store CredentialStore) ClientOption {
	return func(opts *ClientOptions) { opts.CredentialStore = store }
}

// WithTokenSource supplies tokens directly, bypassing any credential store.
func WithTokenSource(source oauth2.TokenSource) ClientOption {
	return func(opts *ClientOptions) { opts.TokenSource = source }
}

// WithLogger overrides the gateway logger.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(opts *ClientOptions) { opts.Logger = log }
}

// WithOnUnauthorized registers a callback invoked when the server reports 401.
func WithOnUnauthorized(fn func()) ClientOption {
	return func(opts *ClientOptions) { opts.OnUnauthorized = fn }
}

// NewClient creates an API client for the server at baseURL
// (e.g. "http://localhost:4000"). The versioned path prefix is appended
// internally.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	log := opts.Logger
	if log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		log = logger
	}

	source := opts.TokenSource
	if source == nil && opts.CredentialStore != nil {
		source = StoreTokenSource(opts.CredentialStore)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: RequestTimeout,
			Transport: &authTransport{
				source: source,
				log:    log,
			},
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
		validate:   validator.New(),
		source:     source,
		onUnauth:   opts.OnUnauthorized,
	}
}

// BaseURL returns the configured server URL without the API prefix.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + APIPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do issues a JSON request and decodes a JSON response into out (when out is
// non-nil). Responses are classified the same way for every endpoint:
//
//   - non-2xx status: status and body are logged, the error is *APIError and
//     a 401 additionally fires the OnUnauthorized hook;
//   - request sent but no response: logged as a network error, returned as
//     *TransportError wrapping the original;
//   - request not constructible: logged and returned unchanged.
//
// Errors are never swallowed and nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.log.WithError(err).WithField("path", path).Error("request encoding failed")
			return err
		}
		reader = bytes.NewReader(data)
	}

	fullURL := c.url(path, query)
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		c.log.WithError(err).WithField("url", fullURL).Error("request construction failed")
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"url":    fullURL,
		}).Error("network error")
		return &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp, fullURL)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", fullURL, err)
	}
	return nil
}

// apiError builds an *APIError from a non-2xx response and runs the 401 hook.
func (c *Client) apiError(resp *http.Response, fullURL string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope errorBody
	json.Unmarshal(raw, &envelope)

	c.log.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"url":    fullURL,
		"body":   string(raw),
	}).Error("API error")

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauth != nil {
		c.onUnauth()
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    envelope.text(),
		Body:       raw,
	}
}
