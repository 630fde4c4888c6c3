package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// walletFlowManager syncs wallet names and avatars. The raw key is built
// from the hd-exclusive hash (software) or the signer device id (hardware
// and QR), never the cross-wallet-shared fingerprint, so hot and cold
// wallets of the same seed do not leak each other's identity.
type walletFlowManager struct {
	accounts *domain.AccountStore
}

// NewWalletFlowManager builds the Wallet flow manager over the account store.
func NewWalletFlowManager(accounts *domain.AccountStore) FlowManager {
	return &walletFlowManager{accounts: accounts}
}

func (m *walletFlowManager) DataType() models.DataType { return models.DataTypeWallet }

func (m *walletFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *walletFlowManager) SupportsOfflineSync() bool { return false }

func (m *walletFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *walletFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetWallet)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	switch t.Wallet.Type {
	case models.WalletTypeHD:
		return t.Wallet.Hash != "", nil
	case models.WalletTypeHW, models.WalletTypeQR:
		return t.Device != nil && t.Device.DeviceID != "", nil
	default:
		// Watching and URL wallets are device-local by nature.
		return false, nil
	}
}

func (m *walletFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetWallet)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	keyHash := t.Wallet.Hash
	deviceType := ""
	if t.Wallet.Type == models.WalletTypeHW || t.Wallet.Type == models.WalletTypeQR {
		if t.Device == nil {
			return "", fmt.Errorf("%w: wallet %s", ErrKeyHashRequired, t.Wallet.ID)
		}
		keyHash = t.Device.DeviceID
		deviceType = t.Device.DeviceType
	}
	if keyHash == "" {
		return "", fmt.Errorf("%w: wallet %s", ErrKeyHashRequired, t.Wallet.ID)
	}

	return joinKeyParts(
		t.Wallet.Type+":"+deviceType,
		keyHash+":"+t.Wallet.PassphraseState,
	), nil
}

func (m *walletFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetWallet)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	p := models.PayloadWallet{
		Name:            t.Wallet.Name,
		Avatar:          t.Wallet.Avatar,
		WalletType:      t.Wallet.Type,
		WalletHash:      t.Wallet.Hash,
		PassphraseState: t.Wallet.PassphraseState,
	}
	if t.Device != nil {
		p.HwDeviceID = t.Device.DeviceID
	}
	return json.Marshal(p)
}

func (m *walletFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	wallets := m.accounts.ListWallets()
	targets := make([]models.SyncTarget, 0, len(wallets))
	for _, w := range wallets {
		device, _ := m.accounts.GetWalletDevice(w)
		targets = append(targets, models.TargetWallet{Wallet: w, Device: device})
	}
	return targets, nil
}

// BuildSyncTargetByPayload looks up the matching local wallet. Remote
// wallet payloads never create local wallets: a missing match returns
// (nil, nil) and the item stays un-consumed.
func (m *walletFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadWallet
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	wallet, ok := m.accounts.GetWalletBySyncPayload(p)
	if !ok {
		return nil, nil
	}
	device, _ := m.accounts.GetWalletDevice(wallet)
	return models.TargetWallet{Wallet: wallet, Device: device}, nil
}

func (m *walletFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetWallet)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	if item.IsDeleted {
		// A deleted wallet item carries no local action: wallets are only
		// removed through explicit local deletion.
		return true, nil
	}

	var p models.PayloadWallet
	if err := json.Unmarshal(payload, &p); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if err := m.accounts.SetWalletNameAndAvatar(ctx, t.Wallet.ID, p.Name, p.Avatar, opts); err != nil {
		return false, err
	}
	return true, nil
}
