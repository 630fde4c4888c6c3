package service

import (
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/crypto"
	"github.com/enzg/one-big-key-sub004/models"
)

// CreateGenesisTime is the timestamp stamped on items built during a
// first-time bootstrap, so that a bootstrap push loses last-write-wins
// against any genuine edit already present on another device.
const CreateGenesisTime int64 = 1

// joinKeyParts joins raw-key segments, dropping empty ones.
var joinKeyParts = crypto.JoinKeyParts

// rawKeyPrefix returns the "<dataType> >> " prefix every raw key carries.
func rawKeyPrefix(dataType models.DataType) string {
	return string(dataType) + " >> "
}

// effectiveCredential swaps in the fixed stand-in password for the Lock
// sentinel, which must stay decryptable across password rotations.
func effectiveCredential(dataType models.DataType, cred models.SyncCredential) models.SyncCredential {
	if dataType == models.DataTypeLock {
		return cred.ForLock()
	}
	return cred
}

// itemPwdHash returns the password-epoch id recorded on a new ciphertext.
// Lock items record no epoch: their ciphertext does not depend on the
// rotating sync password, so they stay eligible on every device.
func itemPwdHash(dataType models.DataType, cred models.SyncCredential) string {
	if dataType == models.DataTypeLock {
		return ""
	}
	return cred.MasterPasswordUUID
}

// offlineCapable reports whether items of a data type may carry a
// plaintext fallback payload instead of ciphertext. Must agree with the
// SupportsOfflineSync policy of the type's flow manager.
func offlineCapable(dataType models.DataType) bool {
	return dataType == models.DataTypeLock
}

// CanLocalItemSyncToScene is the pull-eligibility predicate: the item has
// not been applied yet, carries a payload or is a tombstone, has a
// timestamp, and its password epoch matches the active credential (or is
// empty, meaning the item was never epoch-bound).
func CanLocalItemSyncToScene(item models.SyncItem, cred *models.SyncCredential) bool {
	if item.LocalSceneUpdated {
		return false
	}
	if item.Data == "" && item.RawData == "" && !item.IsDeleted {
		return false
	}
	if item.DataTime == 0 {
		return false
	}
	if item.PwdHash == "" {
		return true
	}
	return cred != nil && item.PwdHash == cred.MasterPasswordUUID
}

// DecryptSyncItem recovers the plaintext [models.RawData] of an item.
//
// Precedence: ciphertext when present, plaintext fallback otherwise. The
// fallback is accepted only for offline-capable types; a plaintext payload
// on any other type is malformed. An authentication failure
// propagates as [crypto.ErrIncorrectMasterPassword]; a post-decrypt parse
// failure is reported as [ErrMalformedPayload] so the caller can skip the
// item without aborting the batch.
func DecryptSyncItem(codec crypto.ItemCodec, item models.SyncItem, cred *models.SyncCredential) (models.RawData, error) {
	var plaintext string

	switch {
	case item.Data != "":
		if cred == nil {
			return models.RawData{}, ErrNoCredential
		}
		c := effectiveCredential(item.DataType, *cred)
		password, err := codec.BuildEncryptPassword(c.AccountSalt, c.SecurityPassword)
		if err != nil {
			return models.RawData{}, err
		}
		plaintext, err = codec.DecryptString(item.Data, password)
		if err != nil {
			return models.RawData{}, err
		}
	case item.RawData != "":
		if !offlineCapable(item.DataType) {
			return models.RawData{}, fmt.Errorf("%w: plaintext payload on %s item %s", ErrMalformedPayload, item.DataType, item.ID)
		}
		plaintext = item.RawData
	default:
		return models.RawData{}, fmt.Errorf("%w: item %s has no data", ErrMalformedPayload, item.ID)
	}

	var raw models.RawData
	if err := json.Unmarshal([]byte(plaintext), &raw); err != nil {
		return models.RawData{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if raw.RawKey == "" || raw.DataType == "" {
		return models.RawData{}, fmt.Errorf("%w: missing rawKey or dataType", ErrMalformedPayload)
	}

	return raw, nil
}
