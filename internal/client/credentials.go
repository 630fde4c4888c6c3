package client

import (
	"context"
	"sync"

	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

// SessionCredentials holds the secret material of the signed-in relay
// session. Before SignIn (and after SignOut) it reports no-credential mode:
// GetSyncCredential returns nil with no error, so only data types that
// support offline sync can be built.
type SessionCredentials struct {
	mu   sync.RWMutex
	cred *models.SyncCredential
}

func NewSessionCredentials() *SessionCredentials {
	return &SessionCredentials{}
}

// SignIn derives the session credential from the relay-issued account salt
// and the device-held sync password. The password epoch is an HMAC of the
// sync password keyed by the account salt, so it changes exactly when the
// sync password changes.
func (c *SessionCredentials) SignIn(accountSalt, syncPassword string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cred = &models.SyncCredential{
		AccountSalt:        accountSalt,
		SecurityPassword:   syncPassword,
		MasterPasswordUUID: utils.HashString(syncPassword, accountSalt),
	}
}

// SignOut drops the session credential.
func (c *SessionCredentials) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cred = nil
}

// GetSyncCredential returns a copy of the current credential, or nil when no
// session is active.
func (c *SessionCredentials) GetSyncCredential(_ context.Context) (*models.SyncCredential, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cred == nil {
		return nil, nil
	}
	cred := *c.cred
	return &cred, nil
}
