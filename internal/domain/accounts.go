package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrAccountNotFound = errors.New("indexed account not found")
)

// AccountStore owns wallets, signer devices and indexed accounts.
type AccountStore struct {
	logger *logger.Logger

	mu       sync.Mutex
	wallets  map[string]models.Wallet
	devices  map[string]models.Device
	accounts map[string]models.IndexedAccount

	onMutate MutationHook
	onEvent  EventHook
}

func NewAccountStore(log *logger.Logger) *AccountStore {
	return &AccountStore{
		logger:   log,
		wallets:  make(map[string]models.Wallet),
		devices:  make(map[string]models.Device),
		accounts: make(map[string]models.IndexedAccount),
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
}

// SetHooks installs the sync push hook and the event hook. Must be called
// before the store handles mutations.
func (s *AccountStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

// CreateWallet registers a wallet. Wallet creation itself is driven by seed
// import or device pairing, not by sync, so there is no sync-applied
// variant.
func (s *AccountStore) CreateWallet(ctx context.Context, wallet models.Wallet, device *models.Device) {
	s.mu.Lock()
	s.wallets[wallet.ID] = wallet
	if device != nil {
		s.devices[device.ID] = *device
	}
	s.mu.Unlock()

	s.onMutate(ctx, models.TargetWallet{Wallet: wallet, Device: device}, false)
	s.onEvent(models.DataTypeWallet, wallet.ID)
}

// CreateIndexedAccount registers a derived account slot.
func (s *AccountStore) CreateIndexedAccount(ctx context.Context, account models.IndexedAccount) error {
	s.mu.Lock()
	wallet, ok := s.wallets[account.WalletID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("create indexed account %s: %w", account.ID, ErrWalletNotFound)
	}
	s.accounts[account.ID] = account
	s.mu.Unlock()

	s.onMutate(ctx, models.TargetIndexedAccount{Account: account, Wallet: wallet}, false)
	s.onEvent(models.DataTypeIndexedAccount, account.ID)
	return nil
}

// GetWallet returns the wallet with the given local id.
func (s *AccountStore) GetWallet(id string) (models.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[id]
	return w, ok
}

// GetWalletDevice resolves the signer device associated with a wallet.
func (s *AccountStore) GetWalletDevice(wallet models.Wallet) (*models.Device, bool) {
	if wallet.AssociatedDeviceID == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[wallet.AssociatedDeviceID]
	if !ok {
		return nil, false
	}
	return &d, true
}

// GetWalletBySyncPayload finds the local wallet matching a pulled wallet
// payload. Hardware and QR wallets match on device id, software wallets on
// the hd-exclusive hash; passphrase state must agree in both cases. Returns
// false when no local wallet matches — remote wallet payloads never create
// local wallets.
func (s *AccountStore) GetWalletBySyncPayload(payload models.PayloadWallet) (models.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wallets {
		if w.Type != payload.WalletType || w.PassphraseState != payload.PassphraseState {
			continue
		}
		switch w.Type {
		case models.WalletTypeHW, models.WalletTypeQR:
			d, ok := s.devices[w.AssociatedDeviceID]
			if ok && payload.HwDeviceID != "" && d.DeviceID == payload.HwDeviceID {
				return w, true
			}
		default:
			if payload.WalletHash != "" && w.Hash == payload.WalletHash {
				return w, true
			}
		}
	}
	return models.Wallet{}, false
}

// GetWalletsByXfp returns every wallet sharing the given fingerprint, e.g.
// a hot wallet and the hardware wallet of the same seed.
func (s *AccountStore) GetWalletsByXfp(xfp string) []models.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Wallet
	for _, w := range s.wallets {
		if xfp != "" && w.XFP == xfp {
			out = append(out, w)
		}
	}
	return out
}

// GetIndexedAccount returns the derived account at index under walletID.
func (s *AccountStore) GetIndexedAccount(walletID string, index int) (models.IndexedAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.WalletID == walletID && a.Index == index {
			return a, true
		}
	}
	return models.IndexedAccount{}, false
}

// ListWallets returns a snapshot of all wallets.
func (s *AccountStore) ListWallets() []models.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		out = append(out, w)
	}
	return out
}

// ListIndexedAccounts returns a snapshot of all indexed accounts.
func (s *AccountStore) ListIndexedAccounts() []models.IndexedAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.IndexedAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	return out
}

// SetWalletNameAndAvatar renames a wallet. Sync-applied calls skip the
// push hook and event emission.
func (s *AccountStore) SetWalletNameAndAvatar(ctx context.Context, walletID, name, avatar string, opts models.MutationOptions) error {
	s.mu.Lock()
	wallet, ok := s.wallets[walletID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("set wallet name %s: %w", walletID, ErrWalletNotFound)
	}
	wallet.Name = name
	if avatar != "" {
		wallet.Avatar = avatar
	}
	s.wallets[walletID] = wallet
	var device *models.Device
	if d, ok := s.devices[wallet.AssociatedDeviceID]; ok {
		device = &d
	}
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetWallet{Wallet: wallet, Device: device}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeWallet, walletID)
	}
	return nil
}

// SetUniversalIndexedAccountName renames the account at index under every
// wallet sharing walletXfp. Account names are shared across hot/cold
// pairings of the same seed, which is exactly why the raw key uses the
// fingerprint.
func (s *AccountStore) SetUniversalIndexedAccountName(ctx context.Context, walletXfp string, index int, name string, opts models.MutationOptions) error {
	s.mu.Lock()
	var renamed []models.TargetIndexedAccount
	for id, a := range s.accounts {
		w, ok := s.wallets[a.WalletID]
		if !ok || w.XFP != walletXfp {
			continue
		}
		if a.Index != index {
			continue
		}
		a.Name = name
		s.accounts[id] = a
		renamed = append(renamed, models.TargetIndexedAccount{Account: a, Wallet: w})
	}
	s.mu.Unlock()

	if len(renamed) == 0 {
		return fmt.Errorf("rename indexed account xfp=%s index=%d: %w", walletXfp, index, ErrAccountNotFound)
	}

	for _, t := range renamed {
		if opts.ShouldSaveSyncItem() {
			s.onMutate(ctx, t, false)
		}
		if opts.ShouldEmitEvent() {
			s.onEvent(models.DataTypeIndexedAccount, t.Account.ID)
		}
	}
	return nil
}
