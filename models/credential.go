package models

// SyncCredential is the ephemeral secret material supplied per operation.
// MasterPasswordUUID changes exactly when the user's master password
// changes; it is recorded on every ciphertext as SyncItem.PwdHash so the
// engine can detect items encrypted under a stale epoch.
type SyncCredential struct {
	// AccountSalt is a per-account random string issued by the relay.
	AccountSalt string

	// SecurityPassword is the second-factor sync password. It never leaves
	// the device.
	SecurityPassword string

	// MasterPasswordUUID identifies the current master-password epoch.
	MasterPasswordUUID string
}

// ForLock returns a copy of the credential with the fixed stand-in security
// password used by the Lock sentinel, which must stay decryptable across
// password rotations.
func (c SyncCredential) ForLock() SyncCredential {
	out := c
	out.SecurityPassword = LockStandInPassword
	return out
}

// LockStandInPassword is the fixed security password used for the Lock
// sentinel. The ciphertext stays bound to the account via AccountSalt but is
// independent of the user's rotating sync password.
const LockStandInPassword = "lock"
