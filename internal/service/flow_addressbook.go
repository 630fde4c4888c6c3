package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

// unknownNetworkKeyPart stands in when an entry's network id cannot be
// reduced to an implementation.
const unknownNetworkKeyPart = "unknown-network"

// addressBookFlowManager syncs address-book entries. Identity is network
// implementation plus lower-cased address; the local uuid never leaves the
// device.
type addressBookFlowManager struct {
	book *domain.AddressBookStore
	uuid *utils.UUIDGenerator
}

// NewAddressBookFlowManager builds the AddressBook flow manager.
func NewAddressBookFlowManager(book *domain.AddressBookStore) FlowManager {
	return &addressBookFlowManager{
		book: book,
		uuid: utils.NewUUIDGenerator(),
	}
}

func (m *addressBookFlowManager) DataType() models.DataType { return models.DataTypeAddressBook }

func (m *addressBookFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *addressBookFlowManager) SupportsOfflineSync() bool { return false }

func (m *addressBookFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *addressBookFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetAddressBook)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Entry.Address != "", nil
}

func (m *addressBookFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetAddressBook)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	networkImpl := domain.NetworkImpl(t.Entry.NetworkID)
	if networkImpl == "" {
		networkImpl = unknownNetworkKeyPart
	}
	return joinKeyParts(networkImpl, "address:"+strings.ToLower(t.Entry.Address)), nil
}

func (m *addressBookFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetAddressBook)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	entry := t.Entry
	// The id is a local uuid and must never be synced.
	entry.ID = ""
	return json.Marshal(models.PayloadAddressBook{
		NetworkImpl: domain.NetworkImpl(t.Entry.NetworkID),
		Entry:       entry,
	})
}

func (m *addressBookFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	entries := m.book.ListEntries()
	targets := make([]models.SyncTarget, 0, len(entries))
	for _, e := range entries {
		targets = append(targets, models.TargetAddressBook{Entry: e})
	}
	return targets, nil
}

// BuildSyncTargetByPayload reattaches the local uuid when a matching entry
// exists, otherwise keeps the payload entry as a creation target.
func (m *addressBookFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadAddressBook
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	entry := p.Entry
	if local, ok := m.book.FindByAddress(domain.NetworkImpl(entry.NetworkID), entry.Address); ok {
		entry.ID = local.ID
	}
	return models.TargetAddressBook{Entry: entry}, nil
}

func (m *addressBookFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetAddressBook)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	entry := t.Entry

	if item.IsDeleted {
		if entry.ID == "" {
			// Nothing local to delete; the tombstone is still consumed.
			return true, nil
		}
		if err := m.book.RemoveEntry(ctx, entry, opts); err != nil {
			return false, err
		}
		return true, nil
	}

	if entry.ID == "" {
		entry.ID = m.uuid.Generate()
		m.book.AddEntry(ctx, entry, opts)
		return true, nil
	}
	if err := m.book.UpdateEntry(ctx, entry, opts); err != nil {
		return false, err
	}
	return true, nil
}
