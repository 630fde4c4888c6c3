package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// customRpcFlowManager syncs standalone RPC overrides, keyed by network id.
type customRpcFlowManager struct {
	networks *domain.NetworkStore
}

// NewCustomRpcFlowManager builds the CustomRpc flow manager.
func NewCustomRpcFlowManager(networks *domain.NetworkStore) FlowManager {
	return &customRpcFlowManager{networks: networks}
}

func (m *customRpcFlowManager) DataType() models.DataType { return models.DataTypeCustomRpc }

func (m *customRpcFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *customRpcFlowManager) SupportsOfflineSync() bool { return false }

func (m *customRpcFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *customRpcFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetCustomRpc)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.RPC.NetworkID != "", nil
}

func (m *customRpcFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetCustomRpc)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.RPC.NetworkID, nil
}

func (m *customRpcFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetCustomRpc)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadCustomRpc{RPC: t.RPC})
}

func (m *customRpcFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	rpcs := m.networks.ListRpcs()
	targets := make([]models.SyncTarget, 0, len(rpcs))
	for _, r := range rpcs {
		targets = append(targets, models.TargetCustomRpc{RPC: r})
	}
	return targets, nil
}

func (m *customRpcFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadCustomRpc
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetCustomRpc{RPC: p.RPC}, nil
}

func (m *customRpcFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetCustomRpc)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if item.IsDeleted {
		m.networks.DeleteRpc(ctx, t.RPC.NetworkID, opts)
		return true, nil
	}
	m.networks.UpsertRpc(ctx, t.RPC, opts)
	return true, nil
}
