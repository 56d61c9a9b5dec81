package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir from Go 1.24, reimplemented for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", settings.ServerURL)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, 50.0, settings.Location.Accuracy)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DVSAPP_SERVER_URL", "https://erp.school.test")
	t.Setenv("DVSAPP_LOCATION_LATITUDE", "27.7")

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://erp.school.test", settings.ServerURL)
	assert.Equal(t, 27.7, settings.Location.Latitude)
}
