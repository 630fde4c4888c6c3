package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzg/one-big-key-sub004/internal/utils"
)

func TestSessionCredentials_NoSessionMeansNoCredential(t *testing.T) {
	creds := NewSessionCredentials()

	cred, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestSessionCredentials_SignInDerivesEpochFromPassword(t *testing.T) {
	creds := NewSessionCredentials()
	creds.SignIn("salt-1", "hunter2")

	cred, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cred)

	assert.Equal(t, "salt-1", cred.AccountSalt)
	assert.Equal(t, "hunter2", cred.SecurityPassword)
	assert.Equal(t, utils.HashString("hunter2", "salt-1"), cred.MasterPasswordUUID)
}

func TestSessionCredentials_EpochChangesWithPassword(t *testing.T) {
	creds := NewSessionCredentials()

	creds.SignIn("salt-1", "hunter2")
	first, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)

	creds.SignIn("salt-1", "rotated")
	second, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.MasterPasswordUUID, second.MasterPasswordUUID)
}

func TestSessionCredentials_ReturnsACopy(t *testing.T) {
	creds := NewSessionCredentials()
	creds.SignIn("salt-1", "hunter2")

	cred, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)
	cred.SecurityPassword = "tampered"

	again, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hunter2", again.SecurityPassword)
}

func TestSessionCredentials_SignOutClearsTheSession(t *testing.T) {
	creds := NewSessionCredentials()
	creds.SignIn("salt-1", "hunter2")
	creds.SignOut()

	cred, err := creds.GetSyncCredential(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}
