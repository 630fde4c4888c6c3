package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// indexedAccountFlowManager syncs derived-account names. Unlike the wallet
// flow it keys on the shared fingerprint deliberately: the hot wallet and
// the hardware wallet of the same seed should exchange account names.
type indexedAccountFlowManager struct {
	accounts *domain.AccountStore
}

// NewIndexedAccountFlowManager builds the IndexedAccount flow manager.
func NewIndexedAccountFlowManager(accounts *domain.AccountStore) FlowManager {
	return &indexedAccountFlowManager{accounts: accounts}
}

func (m *indexedAccountFlowManager) DataType() models.DataType { return models.DataTypeIndexedAccount }

func (m *indexedAccountFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *indexedAccountFlowManager) SupportsOfflineSync() bool { return false }

func (m *indexedAccountFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *indexedAccountFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetIndexedAccount)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Wallet.XFP != "", nil
}

func (m *indexedAccountFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetIndexedAccount)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	if t.Wallet.XFP == "" {
		return "", fmt.Errorf("%w: account %s", ErrWalletXfpRequired, t.Account.ID)
	}
	return joinKeyParts(t.Wallet.XFP, strconv.Itoa(t.Account.Index)), nil
}

func (m *indexedAccountFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetIndexedAccount)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadIndexedAccount{
		Name:      t.Account.Name,
		Index:     t.Account.Index,
		WalletXfp: t.Wallet.XFP,
	})
}

func (m *indexedAccountFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	accounts := m.accounts.ListIndexedAccounts()
	targets := make([]models.SyncTarget, 0, len(accounts))
	for _, a := range accounts {
		wallet, ok := m.accounts.GetWallet(a.WalletID)
		if !ok {
			continue
		}
		targets = append(targets, models.TargetIndexedAccount{Account: a, Wallet: wallet})
	}
	return targets, nil
}

// BuildSyncTargetByPayload looks up a local account slot sharing the
// payload's fingerprint and index. Remote data never creates account slots.
func (m *indexedAccountFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadIndexedAccount
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	for _, wallet := range m.accounts.GetWalletsByXfp(p.WalletXfp) {
		if account, ok := m.accounts.GetIndexedAccount(wallet.ID, p.Index); ok {
			return models.TargetIndexedAccount{Account: account, Wallet: wallet}, nil
		}
	}
	return nil, nil
}

func (m *indexedAccountFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	if item.IsDeleted {
		return true, nil
	}

	var p models.PayloadIndexedAccount
	if err := json.Unmarshal(payload, &p); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if err := m.accounts.SetUniversalIndexedAccountName(ctx, p.WalletXfp, p.Index, p.Name, opts); err != nil {
		return false, err
	}
	return true, nil
}
