// Package config holds dvsctl's configuration: file/env settings and the
// per-invocation wiring injected into the cobra command context.
package config

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dvsdigi/dvsapp/internal/client"
	"github.com/dvsdigi/dvsapp/internal/session"
	"github.com/dvsdigi/dvsapp/pkg/sdk/geo"
)

type contextKey string

const configKey contextKey = "dvsctl-config"

// GlobalConfig holds shared state for all dvsctl commands. It is injected
// into the cobra command context by the root command's PersistentPreRun hook
// and consumed by all subcommands.
type GlobalConfig struct {
	Settings       *Settings
	NonInteractive bool
	Session        *session.Authority
	ClientProvider *client.Provider
	Geo            geo.Provider

	deviceOnce  sync.Once
	deviceToken string
}

// DeviceToken identifies this terminal to the push notification registrar.
// Stable for the lifetime of the process.
func (c *GlobalConfig) DeviceToken() string {
	c.deviceOnce.Do(func() {
		c.deviceToken = uuid.NewString()
	})
	return c.deviceToken
}

// InjectConfig adds config to the cobra command context. Called in the root
// command's PersistentPreRun.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions, which run after the root command injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("dvsctl: config not found in context - this is a bug in dvsctl")
	}
	return cfg
}
