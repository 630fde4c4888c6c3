package models

// Wallet kinds. URL and watching wallets are device-local by nature and are
// never eligible for sync.
const (
	WalletTypeHD       = "hd"
	WalletTypeHW       = "hw"
	WalletTypeQR       = "qr"
	WalletTypeWatching = "watching"
	WalletTypeURL      = "url"
)

// Wallet is the local wallet record.
type Wallet struct {
	// ID is the device-local storage identifier. Never part of a raw key.
	ID string `json:"id"`

	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`

	// Type is one of the WalletType* constants.
	Type string `json:"type"`

	// Hash is the hd-wallet exclusive hash. Unlike XFP it is not shared
	// between software and hardware wallets created from the same seed.
	Hash string `json:"hash,omitempty"`

	// XFP is the master fingerprint, shared across hot/cold pairings of the
	// same seed.
	XFP string `json:"xfp,omitempty"`

	PassphraseState string `json:"passphraseState,omitempty"`

	// AssociatedDeviceID links hardware and QR wallets to their Device row.
	AssociatedDeviceID string `json:"associatedDeviceId,omitempty"`
}

// Device is a hardware or QR-code signer device.
type Device struct {
	// ID is the device-local storage identifier.
	ID string `json:"id"`

	// DeviceID is the stable identifier burned into the device.
	DeviceID string `json:"deviceId"`

	DeviceType string `json:"deviceType"`
}

// IndexedAccount is a derived account slot under a wallet.
type IndexedAccount struct {
	ID       string `json:"id"`
	WalletID string `json:"walletId"`
	Index    int    `json:"index"`
	Name     string `json:"name"`
}

// AddressBookEntry is a named address.
type AddressBookEntry struct {
	// ID is a local uuid and must never be synced.
	ID string `json:"id,omitempty"`

	// NetworkID is the full network identifier, e.g. "evm--1".
	NetworkID string `json:"networkId"`

	Address string `json:"address"`
	Name    string `json:"name"`
}

// BrowserBookmark is a saved dapp URL.
type BrowserBookmark struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	SortIndex int    `json:"sortIndex,omitempty"`
}

// CustomNetwork is a user-defined network.
type CustomNetwork struct {
	// ID is the network id, e.g. "evm--31337". Stable across devices.
	ID string `json:"id"`

	ChainID  string `json:"chainId"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// CustomRpc is a user-defined RPC endpoint for a network.
type CustomRpc struct {
	NetworkID string `json:"networkId"`
	RPC       string `json:"rpc"`
	Enabled   bool   `json:"enabled"`
}

// Custom token status values.
const (
	TokenStatusCustom = "custom"
	TokenStatusHidden = "hidden"
)

// NativeTokenMockAddress stands in for the empty address of native tokens
// when composing raw keys.
const NativeTokenMockAddress = "native--0x0000000000000000000000000000000000000000"

// CustomToken is a manually added or hidden token flag, scoped to one
// account on one network.
type CustomToken struct {
	NetworkID string `json:"networkId"`
	Address   string `json:"address,omitempty"`
	IsNative  bool   `json:"isNative,omitempty"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Decimals  int    `json:"decimals"`

	// AccountXpubOrAddress identifies the owning account without exposing a
	// local account id.
	AccountXpubOrAddress string `json:"accountXpubOrAddress"`

	// TokenStatus is TokenStatusCustom or TokenStatusHidden.
	TokenStatus string `json:"tokenStatus"`
}

// MarketWatchItem is one market watchlist entry.
type MarketWatchItem struct {
	// CoingeckoID is the external market identifier.
	CoingeckoID string `json:"coingeckoId"`

	SortIndex int `json:"sortIndex,omitempty"`
}
