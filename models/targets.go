package models

// SyncTarget is the in-memory projection of a domain record used to compute
// keys and payloads. TargetID is the device-local identity (used only to
// index reconciliation results, never synced); SyncDataType routes the
// target to its flow manager.
type SyncTarget interface {
	TargetID() string
	SyncDataType() DataType
}

// TargetWallet pairs a wallet with its associated signer device, which
// hardware and QR wallets need to compose their raw key.
type TargetWallet struct {
	Wallet Wallet
	Device *Device
}

func (t TargetWallet) TargetID() string       { return t.Wallet.ID }
func (t TargetWallet) SyncDataType() DataType { return DataTypeWallet }

// TargetIndexedAccount pairs an indexed account with its owning wallet,
// whose fingerprint forms the raw key.
type TargetIndexedAccount struct {
	Account IndexedAccount
	Wallet  Wallet
}

func (t TargetIndexedAccount) TargetID() string       { return t.Account.ID }
func (t TargetIndexedAccount) SyncDataType() DataType { return DataTypeIndexedAccount }

type TargetAddressBook struct {
	Entry AddressBookEntry
}

func (t TargetAddressBook) TargetID() string       { return t.Entry.ID }
func (t TargetAddressBook) SyncDataType() DataType { return DataTypeAddressBook }

type TargetBrowserBookmark struct {
	Bookmark BrowserBookmark
}

func (t TargetBrowserBookmark) TargetID() string       { return t.Bookmark.URL }
func (t TargetBrowserBookmark) SyncDataType() DataType { return DataTypeBrowserBookmark }

// TargetCustomNetwork embeds the network's RPC so the payload can carry
// both in one item.
type TargetCustomNetwork struct {
	Network CustomNetwork
	RPC     CustomRpc
}

func (t TargetCustomNetwork) TargetID() string       { return t.Network.ID }
func (t TargetCustomNetwork) SyncDataType() DataType { return DataTypeCustomNetwork }

type TargetCustomRpc struct {
	RPC CustomRpc
}

func (t TargetCustomRpc) TargetID() string       { return t.RPC.NetworkID }
func (t TargetCustomRpc) SyncDataType() DataType { return DataTypeCustomRpc }

type TargetCustomToken struct {
	Token CustomToken
}

func (t TargetCustomToken) TargetID() string       { return "" }
func (t TargetCustomToken) SyncDataType() DataType { return DataTypeCustomToken }

type TargetMarketWatchList struct {
	Item MarketWatchItem
}

func (t TargetMarketWatchList) TargetID() string       { return t.Item.CoingeckoID }
func (t TargetMarketWatchList) SyncDataType() DataType { return DataTypeMarketWatchList }

// TargetLock is the single global sentinel row.
type TargetLock struct {
	Enabled bool
}

func (t TargetLock) TargetID() string       { return string(DataTypeLock) }
func (t TargetLock) SyncDataType() DataType { return DataTypeLock }
