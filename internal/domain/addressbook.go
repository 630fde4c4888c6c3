package domain

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

var (
	ErrAddressBookEntryNotFound = errors.New("address book entry not found")
	ErrAddressBookTampered      = errors.New("address book integrity hash mismatch")
)

// NetworkImpl extracts the implementation part of a network id:
// "evm--1" → "evm". Falls back to the full id for non-composite ids so the
// raw key stays non-empty.
func NetworkImpl(networkID string) string {
	if impl, _, ok := strings.Cut(networkID, "--"); ok && impl != "" {
		return impl
	}
	if networkID == "" {
		return "unknown-network"
	}
	return networkID
}

// AddressBookStore owns address-book entries. Every mutation re-signs the
// whole book with an HMAC key; readers can detect out-of-band tampering
// with VerifyIntegrity.
type AddressBookStore struct {
	logger  *logger.Logger
	hashKey string

	mu      sync.Mutex
	entries map[string]models.AddressBookEntry // by local id
	hash    string

	onMutate MutationHook
	onEvent  EventHook
}

func NewAddressBookStore(log *logger.Logger, hashKey string) *AddressBookStore {
	s := &AddressBookStore{
		logger:   log,
		hashKey:  hashKey,
		entries:  make(map[string]models.AddressBookEntry),
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
	s.hash = s.computeHashLocked()
	return s
}

func (s *AddressBookStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

// FindByAddress looks an entry up by network implementation and
// case-insensitive address — the same identity the sync raw key uses.
func (s *AddressBookStore) FindByAddress(networkImpl, address string) (models.AddressBookEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(address)
	for _, e := range s.entries {
		if NetworkImpl(e.NetworkID) == networkImpl && strings.ToLower(e.Address) == needle {
			return e, true
		}
	}
	return models.AddressBookEntry{}, false
}

// ListEntries returns a snapshot of all entries.
func (s *AddressBookStore) ListEntries() []models.AddressBookEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AddressBookEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// AddEntry inserts an entry. Name collisions are the caller's problem;
// identity is network implementation plus address.
func (s *AddressBookStore) AddEntry(ctx context.Context, entry models.AddressBookEntry, opts models.MutationOptions) {
	s.mu.Lock()
	s.entries[entry.ID] = entry
	s.hash = s.computeHashLocked()
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetAddressBook{Entry: entry}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeAddressBook, entry.ID)
	}
}

// UpdateEntry replaces an existing entry, keeping its local id.
func (s *AddressBookStore) UpdateEntry(ctx context.Context, entry models.AddressBookEntry, opts models.MutationOptions) error {
	s.mu.Lock()
	if _, ok := s.entries[entry.ID]; !ok {
		s.mu.Unlock()
		return ErrAddressBookEntryNotFound
	}
	s.entries[entry.ID] = entry
	s.hash = s.computeHashLocked()
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetAddressBook{Entry: entry}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeAddressBook, entry.ID)
	}
	return nil
}

// RemoveEntry deletes an entry. User-origin removals produce a tombstone
// through the mutation hook.
func (s *AddressBookStore) RemoveEntry(ctx context.Context, entry models.AddressBookEntry, opts models.MutationOptions) error {
	s.mu.Lock()
	if _, ok := s.entries[entry.ID]; !ok {
		s.mu.Unlock()
		return ErrAddressBookEntryNotFound
	}
	delete(s.entries, entry.ID)
	s.hash = s.computeHashLocked()
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetAddressBook{Entry: entry}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeAddressBook, entry.ID)
	}
	return nil
}

// VerifyIntegrity recomputes the book's HMAC and compares it with the
// signature stored at the last mutation.
func (s *AddressBookStore) VerifyIntegrity() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.computeHashLocked() != s.hash {
		return ErrAddressBookTampered
	}
	return nil
}

// computeHashLocked signs the sorted entry set. Caller holds s.mu.
func (s *AddressBookStore) computeHashLocked() string {
	entries := make([]models.AddressBookEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	serialized, err := json.Marshal(entries)
	if err != nil {
		s.logger.Err(err).Str("func", "AddressBookStore.computeHashLocked").Msg("serialize entries for hashing")
		return ""
	}
	return utils.HashString(string(serialized), s.hashKey)
}
