package models

// DataType selects which flow manager owns a sync item.
type DataType string

const (
	DataTypeWallet          DataType = "Wallet"
	DataTypeIndexedAccount  DataType = "IndexedAccount"
	DataTypeAddressBook     DataType = "AddressBook"
	DataTypeBrowserBookmark DataType = "BrowserBookmark"
	DataTypeCustomNetwork   DataType = "CustomNetwork"
	DataTypeCustomRpc       DataType = "CustomRpc"
	DataTypeCustomToken     DataType = "CustomToken"
	DataTypeMarketWatchList DataType = "MarketWatchList"
	DataTypeLock            DataType = "Lock"
)

// AllDataTypes lists every supported data type in the order the client
// applies pulled items. Wallets come before indexed accounts so that a
// freshly restored wallet exists by the time its account names arrive.
var AllDataTypes = []DataType{
	DataTypeWallet,
	DataTypeIndexedAccount,
	DataTypeAddressBook,
	DataTypeBrowserBookmark,
	DataTypeCustomNetwork,
	DataTypeCustomRpc,
	DataTypeCustomToken,
	DataTypeMarketWatchList,
	DataTypeLock,
}

// SyncItem is the encrypted, timestamped, tombstone-capable record unit
// exchanged between devices and the relay.
//
// ID is the sole cross-device-stable identity: the hex SHA-512 digest of
// RawKey. RawKey and RawData are kept locally for debugging and migration;
// they never cross the wire (see RelayItem).
type SyncItem struct {
	// ID is the hex SHA-512 hash of RawKey.
	ID string `json:"id"`

	// DataType tags which flow manager owns this item.
	DataType DataType `json:"dataType"`

	// RawKey is the plaintext semantic key the ID was derived from.
	RawKey string `json:"rawKey,omitempty"`

	// Data is the encrypted canonical JSON of {rawKey, dataType, payload}.
	// Empty when no credential was available at write time.
	Data string `json:"data,omitempty"`

	// RawData is the canonical JSON plaintext of the same structure. Used
	// only by data types that can sync without a server credential.
	RawData string `json:"rawData,omitempty"`

	// DataTime is the logical timestamp used for last-write-wins ordering.
	DataTime int64 `json:"dataTime"`

	// IsDeleted marks this item as a tombstone. A tombstone carries no
	// obligation to retain payload.
	IsDeleted bool `json:"isDeleted"`

	// PwdHash is the password-epoch id the ciphertext was encrypted under.
	// Empty when the item was never encrypted.
	PwdHash string `json:"pwdHash,omitempty"`

	// DeviceID is the installation that authored this revision. Empty for
	// locally built items, which take the running installation's id.
	DeviceID string `json:"deviceId,omitempty"`

	// LocalSceneUpdated reports whether the item's payload has been applied
	// to the local domain stores.
	LocalSceneUpdated bool `json:"localSceneUpdated"`

	// ServerUploaded reports whether the relay has confirmed this revision.
	ServerUploaded bool `json:"serverUploaded"`
}

// RelayItem is the shape a sync item takes on the wire and in the relay
// database. Plaintext fields (RawKey, RawData) are stripped; DeviceID is the
// uploading installation, used as the last-write-wins tie-break.
type RelayItem struct {
	ID        string   `json:"id"`
	DataType  DataType `json:"dataType"`
	Data      string   `json:"data,omitempty"`
	DataTime  int64    `json:"dataTime"`
	IsDeleted bool     `json:"isDeleted"`
	PwdHash   string   `json:"pwdHash,omitempty"`
	DeviceID  string   `json:"deviceId"`
}

// ToRelayItem strips the local-only fields for upload.
func (i SyncItem) ToRelayItem(deviceID string) RelayItem {
	return RelayItem{
		ID:        i.ID,
		DataType:  i.DataType,
		Data:      i.Data,
		DataTime:  i.DataTime,
		IsDeleted: i.IsDeleted,
		PwdHash:   i.PwdHash,
		DeviceID:  deviceID,
	}
}

// ToSyncItem converts a relay row back into a local sync item. The item
// arrives unapplied, already durable on the server, and keeps the device id
// of the installation that authored it.
func (r RelayItem) ToSyncItem() SyncItem {
	return SyncItem{
		ID:                r.ID,
		DataType:          r.DataType,
		Data:              r.Data,
		DataTime:          r.DataTime,
		IsDeleted:         r.IsDeleted,
		PwdHash:           r.PwdHash,
		DeviceID:          r.DeviceID,
		LocalSceneUpdated: false,
		ServerUploaded:    true,
	}
}
