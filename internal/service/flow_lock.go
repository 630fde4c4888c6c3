package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// lockRawKey is the fixed raw-key basis of the single global Lock row.
const lockRawKey = "lock"

// lockFlowManager syncs the cloud-sync enablement sentinel. It is the one
// flow that works without a server credential (plaintext fallback) and the
// one whose ciphertext must survive password rotations, hence the fixed
// stand-in password handled by the codec layer.
type lockFlowManager struct {
	settings *domain.SettingsStore
}

// NewLockFlowManager builds the Lock flow manager over the settings store.
func NewLockFlowManager(settings *domain.SettingsStore) FlowManager {
	return &lockFlowManager{settings: settings}
}

func (m *lockFlowManager) DataType() models.DataType { return models.DataTypeLock }

// RemoveSyncItemIfServerDeleted is false for the sentinel: the single
// global row is flipped, never purged.
func (m *lockFlowManager) RemoveSyncItemIfServerDeleted() bool { return false }

func (m *lockFlowManager) SupportsOfflineSync() bool { return true }

func (m *lockFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return false }

func (m *lockFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	if _, ok := target.(models.TargetLock); !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return true, nil
}

func (m *lockFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	if _, ok := target.(models.TargetLock); !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return lockRawKey, nil
}

func (m *lockFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetLock)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadLock{Enabled: t.Enabled})
}

func (m *lockFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	return []models.SyncTarget{models.TargetLock{Enabled: m.settings.IsCloudSyncEnabled()}}, nil
}

func (m *lockFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadLock
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetLock{Enabled: p.Enabled}, nil
}

func (m *lockFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetLock)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	enabled := t.Enabled
	if item.IsDeleted {
		enabled = false
	}
	m.settings.SetCloudSyncEnabled(ctx, enabled, models.MutationOptions{Origin: models.OriginSyncApplied})
	return true, nil
}
