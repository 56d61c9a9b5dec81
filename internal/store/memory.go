package store

import (
	"sync"

	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// Memory is an in-memory sdk.CredentialStore. It backs the CLI when the
// filesystem store cannot be created (the session then lives only for the
// process) and keeps tests off the disk.
type Memory struct {
	mu    sync.Mutex
	creds *sdk.Credentials
}

var _ sdk.CredentialStore = (*Memory)(nil)

func (m *Memory) Load() (*sdk.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds == nil || m.creds.Token == "" {
		return nil, nil
	}
	copied := *m.creds
	return &copied, nil
}

func (m *Memory) Save(creds *sdk.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *creds
	m.creds = &copied
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}
