package domain

import (
	"context"
	"sync"

	"github.com/enzg/one-big-key-sub004/models"
)

// SettingsStore owns the cloud-sync enablement flag, mirrored across
// devices through the Lock sentinel item.
type SettingsStore struct {
	mu               sync.Mutex
	cloudSyncEnabled bool

	onMutate MutationHook
	onEvent  EventHook
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
}

func (s *SettingsStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

func (s *SettingsStore) IsCloudSyncEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloudSyncEnabled
}

// SetCloudSyncEnabled flips the enablement flag.
func (s *SettingsStore) SetCloudSyncEnabled(ctx context.Context, enabled bool, opts models.MutationOptions) {
	s.mu.Lock()
	s.cloudSyncEnabled = enabled
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetLock{Enabled: enabled}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeLock, string(models.DataTypeLock))
	}
}
