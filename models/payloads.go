package models

import "encoding/json"

// RawData is the structure that gets canonically serialized and encrypted
// into SyncItem.Data. Payload stays raw here; each flow manager unmarshals
// its own typed payload.
type RawData struct {
	RawKey   string          `json:"rawKey"`
	DataType DataType        `json:"dataType"`
	Payload  json.RawMessage `json:"payload"`
}

// PayloadWallet carries the portable fields of a wallet: its display name
// and avatar plus the identity parts needed to locate the wallet on another
// device. Local storage ids are deliberately absent.
type PayloadWallet struct {
	Name            string `json:"name"`
	Avatar          string `json:"avatar,omitempty"`
	WalletType      string `json:"walletType"`
	WalletHash      string `json:"walletHash,omitempty"`
	HwDeviceID      string `json:"hwDeviceId,omitempty"`
	PassphraseState string `json:"passphraseState,omitempty"`
}

// PayloadIndexedAccount syncs an account name keyed by the shared wallet
// fingerprint, so hot and cold wallets of the same seed exchange names.
type PayloadIndexedAccount struct {
	Name      string `json:"name"`
	Index     int    `json:"index"`
	WalletXfp string `json:"walletXfp"`
}

// PayloadAddressBook carries an address-book entry with its local id
// blanked out.
type PayloadAddressBook struct {
	NetworkImpl string           `json:"networkImpl"`
	Entry       AddressBookEntry `json:"entry"`
}

// PayloadBrowserBookmark carries one bookmark.
type PayloadBrowserBookmark struct {
	Bookmark BrowserBookmark `json:"bookmark"`
}

// PayloadCustomNetwork carries a custom network together with its RPC
// sub-payload, so a restored network is immediately usable.
type PayloadCustomNetwork struct {
	Network CustomNetwork `json:"network"`
	RPC     CustomRpc     `json:"rpc"`
}

// PayloadCustomRpc carries a custom RPC endpoint.
type PayloadCustomRpc struct {
	RPC CustomRpc `json:"rpc"`
}

// PayloadCustomToken carries a custom-token flag.
type PayloadCustomToken struct {
	Token CustomToken `json:"token"`
}

// PayloadMarketWatchList carries one watchlist entry.
type PayloadMarketWatchList struct {
	Item MarketWatchItem `json:"item"`
}

// PayloadLock is the feature-enablement sentinel. It gates cloud sync
// itself, not user data.
type PayloadLock struct {
	Enabled bool `json:"enabled"`
}
