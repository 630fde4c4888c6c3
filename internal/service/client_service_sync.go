package service

import (
	"context"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/adapter"
	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/models"
)

// clientSyncService drives the device-side engine: push on mutation, full
// fetch-merge-apply-upload cycles, and first-time bootstrap.
type clientSyncService struct {
	registry *FlowRegistry
	items    store.SyncItemStore
	relay    adapter.RelayAdapter
	creds    CredentialProvider
	clock    Clock
	settings *domain.SettingsStore
	logger   *logger.Logger

	// deviceID identifies this installation for last-write-wins
	// tie-breaking.
	deviceID string
}

// NewClientSyncService wires the sync engine together.
func NewClientSyncService(
	registry *FlowRegistry,
	items store.SyncItemStore,
	relay adapter.RelayAdapter,
	creds CredentialProvider,
	clock Clock,
	settings *domain.SettingsStore,
	deviceID string,
	log *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		registry: registry,
		items:    items,
		relay:    relay,
		creds:    creds,
		clock:    clock,
		settings: settings,
		deviceID: deviceID,
		logger:   log,
	}
}

// PushTarget builds and persists a sync item for one mutated domain record.
// Upload is scheduled fire-and-forget; a failed upload leaves the item
// pending for the next cycle.
func (s *clientSyncService) PushTarget(ctx context.Context, target models.SyncTarget, deleted bool) error {
	log := logger.FromContext(ctx)

	flow, ok := s.registry.Get(target.SyncDataType())
	if !ok {
		return fmt.Errorf("no flow registered for data type %s", target.SyncDataType())
	}

	cred, err := s.creds.GetSyncCredential(ctx)
	if err != nil {
		return fmt.Errorf("get sync credential: %w", err)
	}

	item, err := flow.BuildSyncItem(ctx, target, cred, s.clock.TimeNow(), deleted)
	if err != nil {
		return fmt.Errorf("build sync item: %w", err)
	}
	if item == nil {
		// Target is not eligible for sync. Silent no-op.
		return nil
	}

	if err = s.items.PutItems(ctx, *item); err != nil {
		return fmt.Errorf("persist sync item: %w", err)
	}

	go func() {
		uploadCtx := context.WithoutCancel(ctx)
		if uploadErr := s.uploadPending(uploadCtx); uploadErr != nil {
			log.Warn().Err(uploadErr).Msg("background upload failed, items stay pending")
		}
	}()

	return nil
}

// FullSync runs one fetch-merge-apply-upload cycle.
func (s *clientSyncService) FullSync(ctx context.Context) error {
	cred, err := s.creds.GetSyncCredential(ctx)
	if err != nil {
		return fmt.Errorf("get sync credential: %w", err)
	}

	resp, err := s.relay.Fetch(ctx, models.FetchRequest{})
	if err != nil {
		return fmt.Errorf("fetch from relay: %w", err)
	}

	if err = s.mergeServerItems(ctx, resp.Items); err != nil {
		return fmt.Errorf("merge server items: %w", err)
	}

	if err = s.applyUnapplied(ctx, cred); err != nil {
		return fmt.Errorf("apply pulled items: %w", err)
	}

	if err = s.uploadPending(ctx); err != nil {
		return fmt.Errorf("upload pending items: %w", err)
	}

	if err = s.purgeConfirmedTombstones(ctx); err != nil {
		return fmt.Errorf("purge tombstones: %w", err)
	}

	return nil
}

// EnableCloudSync bootstraps sync for this device: reconcile every local
// domain record against stored items, persist and upload the result, then
// flip the Lock sentinel on and push it.
func (s *clientSyncService) EnableCloudSync(ctx context.Context) error {
	cred, err := s.creds.GetSyncCredential(ctx)
	if err != nil {
		return fmt.Errorf("get sync credential: %w", err)
	}

	for _, flow := range s.registry.All() {
		built, buildErr := flow.BuildInitSyncDBItems(ctx, cred)
		if buildErr != nil {
			return fmt.Errorf("bootstrap %s items: %w", flow.DataType(), buildErr)
		}
		if len(built) == 0 {
			continue
		}
		if putErr := s.items.PutItems(ctx, built...); putErr != nil {
			return fmt.Errorf("persist bootstrap %s items: %w", flow.DataType(), putErr)
		}
	}

	// The flag flips locally without re-entering the push path; the Lock
	// sentinel is pushed explicitly right after.
	s.settings.SetCloudSyncEnabled(ctx, true, models.MutationOptions{Origin: models.OriginSyncApplied})
	if err = s.PushTarget(ctx, models.TargetLock{Enabled: true}, false); err != nil {
		return fmt.Errorf("push lock sentinel: %w", err)
	}

	return s.uploadPending(ctx)
}

// mergeServerItems resolves each fetched row against the local copy with
// last-write-wins on dataTime, tie-broken by the lexicographically greater
// device id. Losing server rows are dropped; the local revision stays
// pending and wins on upload.
func (s *clientSyncService) mergeServerItems(ctx context.Context, serverItems []models.RelayItem) error {
	log := logger.FromContext(ctx)

	for _, remote := range serverItems {
		local, err := s.items.GetItemByID(ctx, remote.ID)
		if err != nil {
			return err
		}

		if local != nil && !s.remoteWins(remote, *local) {
			continue
		}
		if local != nil && local.LocalSceneUpdated && sameRevision(remote, *local) {
			continue
		}

		if err = s.items.PutItems(ctx, remote.ToSyncItem()); err != nil {
			return err
		}
		log.Debug().
			Str("item_id", remote.ID).
			Str("data_type", string(remote.DataType)).
			Int64("data_time", remote.DataTime).
			Msg("accepted server revision")
	}

	return nil
}

// remoteWins implements last-write-wins with the device-id tie-break. A
// stored row keeps the device id of the installation that authored it; rows
// built locally carry no id and stand in for this installation.
func (s *clientSyncService) remoteWins(remote models.RelayItem, local models.SyncItem) bool {
	if remote.DataTime != local.DataTime {
		return remote.DataTime > local.DataTime
	}
	localDevice := local.DeviceID
	if localDevice == "" {
		localDevice = s.deviceID
	}
	return remote.DeviceID > localDevice
}

// sameRevision reports whether the server row is byte-identical to the
// already-applied local row, in which case re-applying is pointless.
func sameRevision(remote models.RelayItem, local models.SyncItem) bool {
	return remote.DataTime == local.DataTime &&
		remote.Data == local.Data &&
		remote.IsDeleted == local.IsDeleted
}

// applyUnapplied walks every un-consumed item through its flow, in the
// canonical type order.
func (s *clientSyncService) applyUnapplied(ctx context.Context, cred *models.SyncCredential) error {
	unapplied, err := s.items.ListUnapplied(ctx)
	if err != nil {
		return err
	}
	if len(unapplied) == 0 {
		return nil
	}

	for _, flow := range s.registry.All() {
		if _, err = flow.SyncToScene(ctx, cred, unapplied, false); err != nil {
			return err
		}
	}
	return nil
}

// uploadPending pushes every unconfirmed item to the relay, marks accepted
// ones uploaded, and converges on rejected ones by storing the server's
// winning revision.
func (s *clientSyncService) uploadPending(ctx context.Context) error {
	pending, err := s.items.ListPendingUpload(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	req := models.UploadRequest{DeviceID: s.deviceID, Items: make([]models.RelayItem, 0, len(pending))}
	for _, item := range pending {
		req.Items = append(req.Items, item.ToRelayItem(s.deviceID))
	}

	resp, err := s.relay.Upload(ctx, req)
	if err != nil {
		return err
	}

	if len(resp.Accepted) > 0 {
		if err = s.items.MarkUploaded(ctx, resp.Accepted); err != nil {
			return err
		}
	}
	for _, rejected := range resp.Rejected {
		if err = s.items.PutItems(ctx, rejected.ToSyncItem()); err != nil {
			return err
		}
	}

	return nil
}

// purgeConfirmedTombstones removes tombstone rows the relay has confirmed,
// where the type's policy allows it. A tombstone that has not reached the
// local scene yet (stale epoch, transient apply failure) stays un-consumed
// for a later pass.
func (s *clientSyncService) purgeConfirmedTombstones(ctx context.Context) error {
	all, err := s.items.ListAll(ctx)
	if err != nil {
		return err
	}

	var ids []string
	for _, item := range all {
		if !item.IsDeleted || !item.ServerUploaded || !item.LocalSceneUpdated {
			continue
		}
		flow, ok := s.registry.Get(item.DataType)
		if !ok || !flow.Manager().RemoveSyncItemIfServerDeleted() {
			continue
		}
		ids = append(ids, item.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return s.items.DeleteItems(ctx, ids)
}
