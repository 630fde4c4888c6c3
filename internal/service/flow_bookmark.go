package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// browserBookmarkFlowManager syncs saved dapp bookmarks, keyed by URL.
type browserBookmarkFlowManager struct {
	bookmarks *domain.BookmarkStore
}

// NewBrowserBookmarkFlowManager builds the BrowserBookmark flow manager.
func NewBrowserBookmarkFlowManager(bookmarks *domain.BookmarkStore) FlowManager {
	return &browserBookmarkFlowManager{bookmarks: bookmarks}
}

func (m *browserBookmarkFlowManager) DataType() models.DataType { return models.DataTypeBrowserBookmark }

func (m *browserBookmarkFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *browserBookmarkFlowManager) SupportsOfflineSync() bool { return false }

func (m *browserBookmarkFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *browserBookmarkFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetBrowserBookmark)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Bookmark.URL != "", nil
}

func (m *browserBookmarkFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetBrowserBookmark)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Bookmark.URL, nil
}

func (m *browserBookmarkFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetBrowserBookmark)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadBrowserBookmark{Bookmark: t.Bookmark})
}

func (m *browserBookmarkFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	bookmarks := m.bookmarks.List()
	targets := make([]models.SyncTarget, 0, len(bookmarks))
	for _, b := range bookmarks {
		targets = append(targets, models.TargetBrowserBookmark{Bookmark: b})
	}
	return targets, nil
}

func (m *browserBookmarkFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadBrowserBookmark
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetBrowserBookmark{Bookmark: p.Bookmark}, nil
}

func (m *browserBookmarkFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetBrowserBookmark)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if item.IsDeleted {
		m.bookmarks.Remove(ctx, t.Bookmark.URL, opts)
		return true, nil
	}
	m.bookmarks.Upsert(ctx, t.Bookmark, opts)
	return true, nil
}
