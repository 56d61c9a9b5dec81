package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectAndRetrieveConfig(t *testing.T) {
	cfg := &GlobalConfig{NonInteractive: true}
	ctx := InjectConfig(context.Background(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, MustFromContext(ctx))
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	assert.Panics(t, func() {
		MustFromContext(context.Background())
	})
}

func TestDeviceTokenIsStable(t *testing.T) {
	cfg := &GlobalConfig{}
	token := cfg.DeviceToken()
	assert.NotEmpty(t, token)
	assert.Equal(t, token, cfg.DeviceToken())

	other := &GlobalConfig{}
	assert.NotEqual(t, token, other.DeviceToken())
}
