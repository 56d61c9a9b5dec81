package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	return s, dir
}

func TestFileStoreMissingRecordIsNotAnError(t *testing.T) {
	s, _ := newTestStore(t)
	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStoreRoundtrip(t *testing.T) {
	s, dir := newTestStore(t)

	saved := &sdk.Credentials{
		Token: "token-123",
		Role:  "teacher",
		User:  json.RawMessage(`{"_id":"u1","name":"Asha"}`),
	}
	require.NoError(t, s.Save(saved))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-123", loaded.Token)
	assert.Equal(t, "teacher", loaded.Role)
	assert.JSONEq(t, `{"_id":"u1","name":"Asha"}`, string(loaded.User))

	// No stray temp file left behind.
	_, err = os.Stat(filepath.Join(dir, "session.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Clear())
	loaded, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestFileStoreEmptyTokenMeansNoSession(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save(&sdk.Credentials{Token: "", Role: "teacher"}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreCorruptRecordIsAnError(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0600))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestFileStoreMigratesLegacyLayout(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "userToken"), []byte("legacy-token"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userRole"), []byte("teacher"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userInfo"), []byte(`{"name":"Asha"}`), 0600))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "legacy-token", loaded.Token)
	assert.Equal(t, "teacher", loaded.Role)
	assert.JSONEq(t, `{"name":"Asha"}`, string(loaded.User))
	assert.False(t, loaded.SavedAt.IsZero(), "migration stamps the rewrite time")

	// Migration rewrites as one record and removes the legacy entries.
	for _, name := range []string{"userToken", "userRole", "userInfo"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "%s should be removed after migration", name)
	}
	_, err = os.Stat(filepath.Join(dir, "session.json"))
	assert.NoError(t, err)

	again, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "legacy-token", again.Token)
}

func TestFileStoreLegacyPartialLayout(t *testing.T) {
	t.Run("token only", func(t *testing.T) {
		s, dir := newTestStore(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "userToken"), []byte("only-token"), 0600))

		loaded, err := s.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "only-token", loaded.Token)
		assert.Empty(t, loaded.Role)
		assert.Empty(t, loaded.User)
	})

	t.Run("role without token is no session", func(t *testing.T) {
		s, dir := newTestStore(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "userRole"), []byte("teacher"), 0600))

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("invalid user JSON is dropped, token kept", func(t *testing.T) {
		s, dir := newTestStore(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "userToken"), []byte("tok"), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "userInfo"), []byte("not json"), 0600))

		loaded, err := s.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "tok", loaded.Token)
		assert.Empty(t, loaded.User)
	})
}

func TestMemoryStore(t *testing.T) {
	m := &Memory{}

	creds, err := m.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	require.NoError(t, m.Save(&sdk.Credentials{Token: "t", Role: "admin"}))
	creds, err = m.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "admin", creds.Role)

	// Load returns a copy, not the stored record.
	creds.Role = "mutated"
	again, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", again.Role)

	require.NoError(t, m.Clear())
	creds, err = m.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
