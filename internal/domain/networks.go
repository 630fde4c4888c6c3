package domain

import (
	"context"
	"errors"
	"sync"

	"github.com/enzg/one-big-key-sub004/models"
)

var ErrNetworkNotFound = errors.New("custom network not found")

// NetworkStore owns custom networks and their RPC endpoints. An RPC can
// exist without a custom network (overriding a built-in network's RPC),
// which is why CustomRpc is its own sync data type.
type NetworkStore struct {
	mu       sync.Mutex
	networks map[string]models.CustomNetwork
	rpcs     map[string]models.CustomRpc // by network id

	onMutate MutationHook
	onEvent  EventHook
}

func NewNetworkStore() *NetworkStore {
	return &NetworkStore{
		networks: make(map[string]models.CustomNetwork),
		rpcs:     make(map[string]models.CustomRpc),
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
}

func (s *NetworkStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

func (s *NetworkStore) GetNetwork(networkID string) (models.CustomNetwork, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.networks[networkID]
	return n, ok
}

func (s *NetworkStore) GetRpcForNetwork(networkID string) (models.CustomRpc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rpcs[networkID]
	return r, ok
}

func (s *NetworkStore) ListNetworks() []models.CustomNetwork {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomNetwork, 0, len(s.networks))
	for _, n := range s.networks {
		out = append(out, n)
	}
	return out
}

func (s *NetworkStore) ListRpcs() []models.CustomRpc {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomRpc, 0, len(s.rpcs))
	for _, r := range s.rpcs {
		out = append(out, r)
	}
	return out
}

// UpsertNetwork saves a custom network together with its RPC endpoint.
func (s *NetworkStore) UpsertNetwork(ctx context.Context, network models.CustomNetwork, rpcURL string, opts models.MutationOptions) {
	s.mu.Lock()
	s.networks[network.ID] = network
	rpc := models.CustomRpc{NetworkID: network.ID, RPC: rpcURL, Enabled: true}
	if rpcURL == "" {
		rpc = s.rpcs[network.ID]
	} else {
		s.rpcs[network.ID] = rpc
	}
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomNetwork{Network: network, RPC: rpc}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomNetwork, network.ID)
	}
}

// DeleteNetwork removes a custom network and its RPC.
func (s *NetworkStore) DeleteNetwork(ctx context.Context, networkID string, opts models.MutationOptions) error {
	s.mu.Lock()
	network, ok := s.networks[networkID]
	if !ok {
		s.mu.Unlock()
		return ErrNetworkNotFound
	}
	rpc := s.rpcs[networkID]
	delete(s.networks, networkID)
	delete(s.rpcs, networkID)
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomNetwork{Network: network, RPC: rpc}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomNetwork, networkID)
	}
	return nil
}

// UpsertRpc saves a standalone RPC endpoint for a (possibly built-in)
// network.
func (s *NetworkStore) UpsertRpc(ctx context.Context, rpc models.CustomRpc, opts models.MutationOptions) {
	s.mu.Lock()
	s.rpcs[rpc.NetworkID] = rpc
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomRpc{RPC: rpc}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomRpc, rpc.NetworkID)
	}
}

// DeleteRpc removes the RPC override for networkID.
func (s *NetworkStore) DeleteRpc(ctx context.Context, networkID string, opts models.MutationOptions) {
	s.mu.Lock()
	rpc, existed := s.rpcs[networkID]
	delete(s.rpcs, networkID)
	s.mu.Unlock()

	if !existed {
		rpc = models.CustomRpc{NetworkID: networkID}
	}
	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetCustomRpc{RPC: rpc}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeCustomRpc, networkID)
	}
}
