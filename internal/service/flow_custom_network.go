package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// customNetworkFlowManager syncs user-defined networks with their RPC
// endpoint embedded, so a restored network is immediately usable.
type customNetworkFlowManager struct {
	networks *domain.NetworkStore
}

// NewCustomNetworkFlowManager builds the CustomNetwork flow manager.
func NewCustomNetworkFlowManager(networks *domain.NetworkStore) FlowManager {
	return &customNetworkFlowManager{networks: networks}
}

func (m *customNetworkFlowManager) DataType() models.DataType { return models.DataTypeCustomNetwork }

func (m *customNetworkFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *customNetworkFlowManager) SupportsOfflineSync() bool { return false }

func (m *customNetworkFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *customNetworkFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetCustomNetwork)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Network.ID != "", nil
}

func (m *customNetworkFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetCustomNetwork)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Network.ID, nil
}

func (m *customNetworkFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetCustomNetwork)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadCustomNetwork{
		Network: t.Network,
		RPC:     t.RPC,
	})
}

func (m *customNetworkFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	networks := m.networks.ListNetworks()
	targets := make([]models.SyncTarget, 0, len(networks))
	for _, n := range networks {
		rpc, _ := m.networks.GetRpcForNetwork(n.ID)
		targets = append(targets, models.TargetCustomNetwork{Network: n, RPC: rpc})
	}
	return targets, nil
}

func (m *customNetworkFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadCustomNetwork
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetCustomNetwork{Network: p.Network, RPC: p.RPC}, nil
}

func (m *customNetworkFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetCustomNetwork)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if item.IsDeleted {
		if err := m.networks.DeleteNetwork(ctx, t.Network.ID, opts); err != nil && !errors.Is(err, domain.ErrNetworkNotFound) {
			return false, err
		}
		return true, nil
	}
	m.networks.UpsertNetwork(ctx, t.Network, t.RPC.RPC, opts)
	return true, nil
}
