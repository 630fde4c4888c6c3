package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// customTokenFlowManager syncs manually-added and hidden token flags. The
// raw key binds network, token address (with a mock sentinel for native
// tokens) and the owning account's xpub or address.
type customTokenFlowManager struct {
	tokens *domain.TokenStore
}

// NewCustomTokenFlowManager builds the CustomToken flow manager.
func NewCustomTokenFlowManager(tokens *domain.TokenStore) FlowManager {
	return &customTokenFlowManager{tokens: tokens}
}

func (m *customTokenFlowManager) DataType() models.DataType { return models.DataTypeCustomToken }

func (m *customTokenFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *customTokenFlowManager) SupportsOfflineSync() bool { return false }

func (m *customTokenFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *customTokenFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetCustomToken)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	token := t.Token
	hasAddress := token.Address != "" || token.IsNative
	return token.NetworkID != "" && token.AccountXpubOrAddress != "" && hasAddress, nil
}

func (m *customTokenFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetCustomToken)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	address := t.Token.Address
	if address == "" && t.Token.IsNative {
		address = models.NativeTokenMockAddress
	}
	return joinKeyParts(
		t.Token.NetworkID,
		"token:"+address,
		"account:"+t.Token.AccountXpubOrAddress,
	), nil
}

func (m *customTokenFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetCustomToken)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadCustomToken{Token: t.Token})
}

func (m *customTokenFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	tokens := m.tokens.List()
	targets := make([]models.SyncTarget, 0, len(tokens))
	for _, t := range tokens {
		targets = append(targets, models.TargetCustomToken{Token: t})
	}
	return targets, nil
}

func (m *customTokenFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadCustomToken
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetCustomToken{Token: p.Token}, nil
}

func (m *customTokenFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetCustomToken)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	switch {
	case item.IsDeleted:
		m.tokens.RemoveToken(ctx, t.Token, opts)
	case t.Token.TokenStatus == models.TokenStatusHidden:
		m.tokens.HideToken(ctx, t.Token, opts)
	default:
		m.tokens.AddCustomToken(ctx, t.Token, opts)
	}
	return true, nil
}
