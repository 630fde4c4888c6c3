package domain

import (
	"context"
	"sync"

	"github.com/enzg/one-big-key-sub004/models"
)

// BookmarkStore owns browser bookmarks, keyed by URL.
type BookmarkStore struct {
	mu        sync.Mutex
	bookmarks map[string]models.BrowserBookmark

	onMutate MutationHook
	onEvent  EventHook
}

func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{
		bookmarks: make(map[string]models.BrowserBookmark),
		onMutate:  noopMutation,
		onEvent:   noopEvent,
	}
}

func (s *BookmarkStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

func (s *BookmarkStore) Get(url string) (models.BrowserBookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[url]
	return b, ok
}

func (s *BookmarkStore) List() []models.BrowserBookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BrowserBookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		out = append(out, b)
	}
	return out
}

// Upsert saves a bookmark, replacing any previous one at the same URL.
func (s *BookmarkStore) Upsert(ctx context.Context, bookmark models.BrowserBookmark, opts models.MutationOptions) {
	s.mu.Lock()
	s.bookmarks[bookmark.URL] = bookmark
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetBrowserBookmark{Bookmark: bookmark}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeBrowserBookmark, bookmark.URL)
	}
}

// Remove deletes the bookmark at url. Removing an unknown URL is a no-op
// delete signal, still propagated on user origin.
func (s *BookmarkStore) Remove(ctx context.Context, url string, opts models.MutationOptions) {
	s.mu.Lock()
	bookmark, existed := s.bookmarks[url]
	delete(s.bookmarks, url)
	s.mu.Unlock()

	if !existed {
		bookmark = models.BrowserBookmark{URL: url}
	}
	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetBrowserBookmark{Bookmark: bookmark}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeBrowserBookmark, url)
	}
}
