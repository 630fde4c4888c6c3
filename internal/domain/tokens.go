package domain

import (
	"context"
	"strings"
	"sync"

	"github.com/enzg/one-big-key-sub004/models"
)

// TokenStore owns custom-token flags: tokens the user added manually and
// tokens the user hid, each scoped to one account on one network.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]models.CustomToken

	onMutate MutationHook
	onEvent  EventHook
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens:   make(map[string]models.CustomToken),
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
}

func (s *TokenStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

// TokenKey composes the store key from the token's stable identity.
func TokenKey(t models.CustomToken) string {
	address := t.Address
	if address == "" && t.IsNative {
		address = models.NativeTokenMockAddress
	}
	return strings.Join([]string{t.NetworkID, address, t.AccountXpubOrAddress}, "|")
}

func (s *TokenStore) Get(t models.CustomToken) (models.CustomToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found, ok := s.tokens[TokenKey(t)]
	return found, ok
}

func (s *TokenStore) List() []models.CustomToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomToken, 0, len(s.tokens))
	for _, t := range s.tokens {
		out = append(out, t)
	}
	return out
}

// AddCustomToken marks a token as manually added for its account.
func (s *TokenStore) AddCustomToken(ctx context.Context, token models.CustomToken, opts models.MutationOptions) {
	token.TokenStatus = models.TokenStatusCustom
	s.put(ctx, token, opts)
}

// HideToken marks a token as hidden for its account.
func (s *TokenStore) HideToken(ctx context.Context, token models.CustomToken, opts models.MutationOptions) {
	token.TokenStatus = models.TokenStatusHidden
	s.put(ctx, token, opts)
}

func (s *TokenStore) put(ctx context.Context, token models.CustomToken, opts models.MutationOptions) {
	s.mu.Lock()
	s.tokens[TokenKey(token)] = token
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomToken{Token: token}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomToken, TokenKey(token))
	}
}

// RemoveToken drops the flag entirely (the token reverts to its default
// visibility).
func (s *TokenStore) RemoveToken(ctx context.Context, token models.CustomToken, opts models.MutationOptions) {
	s.mu.Lock()
	stored, existed := s.tokens[TokenKey(token)]
	delete(s.tokens, TokenKey(token))
	s.mu.Unlock()

	if !existed {
		stored = token
	}
	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomToken{Token: stored}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomToken, TokenKey(stored))
	}
}
