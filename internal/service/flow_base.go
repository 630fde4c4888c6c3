package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/crypto"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/models"
)

// Flow is the generic per-type orchestrator. It owns everything that is the
// same across the nine data types: key and payload composition, encryption,
// the pull-application pipeline with its integrity checks, and bootstrap
// reconciliation. Type-specific behavior lives behind the [FlowManager].
type Flow struct {
	manager FlowManager
	codec   crypto.ItemCodec
	items   store.SyncItemStore
	clock   Clock
	logger  *logger.Logger
}

// NewFlow wires one flow manager into the generic orchestrator.
func NewFlow(manager FlowManager, codec crypto.ItemCodec, items store.SyncItemStore, clock Clock, log *logger.Logger) *Flow {
	return &Flow{
		manager: manager,
		codec:   codec,
		items:   items,
		clock:   clock,
		logger:  log,
	}
}

// Manager exposes the underlying flow manager for policy checks.
func (f *Flow) Manager() FlowManager { return f.manager }

// DataType is the data type this flow serves.
func (f *Flow) DataType() models.DataType { return f.manager.DataType() }

// keyInfo is the result of composing one target's identity and payload.
type keyInfo struct {
	rawKey string
	id     string
	raw    models.RawData
}

// buildKeyAndPayload composes the full raw key, its hash id and the
// plaintext payload structure for one target.
func (f *Flow) buildKeyAndPayload(target models.SyncTarget) (keyInfo, error) {
	part, err := f.manager.BuildSyncRawKey(target)
	if err != nil {
		return keyInfo{}, err
	}
	rawKey := rawKeyPrefix(f.manager.DataType()) + part

	payload, err := f.manager.BuildSyncPayload(target)
	if err != nil {
		return keyInfo{}, err
	}

	return keyInfo{
		rawKey: rawKey,
		id:     f.codec.HashKey(rawKey),
		raw: models.RawData{
			RawKey:   rawKey,
			DataType: f.manager.DataType(),
			Payload:  payload,
		},
	}, nil
}

// BuildSyncItem builds one push-direction item for a mutated target.
//
// Returns (nil, nil) when the target is not eligible for sync. With a
// credential the payload is encrypted and stamped with the credential's
// password epoch; without one, types that support offline sync fall back to
// a plaintext projection and everything else fails with [ErrNoCredential].
func (f *Flow) BuildSyncItem(ctx context.Context, target models.SyncTarget, cred *models.SyncCredential, dataTime int64, isDeleted bool) (*models.SyncItem, error) {
	ok, err := f.manager.IsSupportSync(target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	info, err := f.buildKeyAndPayload(target)
	if err != nil {
		return nil, err
	}

	plaintext, err := f.codec.CanonicalSerialize(info.raw)
	if err != nil {
		return nil, err
	}

	item := models.SyncItem{
		ID:                info.id,
		DataType:          f.manager.DataType(),
		RawKey:            info.rawKey,
		DataTime:          dataTime,
		IsDeleted:         isDeleted,
		LocalSceneUpdated: true,
		ServerUploaded:    false,
	}

	switch {
	case cred != nil:
		c := effectiveCredential(item.DataType, *cred)
		password, pwdErr := f.codec.BuildEncryptPassword(c.AccountSalt, c.SecurityPassword)
		if pwdErr != nil {
			return nil, pwdErr
		}
		encrypted, encErr := f.codec.EncryptString(plaintext, password)
		if encErr != nil {
			return nil, encErr
		}
		item.Data = encrypted
		item.PwdHash = itemPwdHash(item.DataType, *cred)
	case f.manager.SupportsOfflineSync():
		item.RawData = plaintext
	default:
		return nil, fmt.Errorf("%w: cannot build %s item", ErrNoCredential, item.DataType)
	}

	return &item, nil
}

// SyncToScene applies a batch of pulled items of this flow's type to the
// local domain stores. Per-item failures (hash mismatch, malformed payload,
// missing local match) skip the item; a decryption authentication failure
// aborts the batch so the caller can re-prompt for the credential.
//
// Returns the number of items applied.
func (f *Flow) SyncToScene(ctx context.Context, cred *models.SyncCredential, items []models.SyncItem, forceSync bool) (int, error) {
	log := logger.FromContext(ctx)
	applied := 0

	for _, item := range items {
		if item.DataType != f.manager.DataType() {
			continue
		}
		if !forceSync && !CanLocalItemSyncToScene(item, cred) {
			continue
		}

		raw, err := DecryptSyncItem(f.codec, item, cred)
		if err != nil {
			if errors.Is(err, crypto.ErrIncorrectMasterPassword) {
				return applied, err
			}
			log.Warn().
				Err(err).
				Str("item_id", item.ID).
				Str("data_type", string(item.DataType)).
				Msg("skipping sync item with unreadable payload")
			continue
		}

		target, err := f.manager.BuildSyncTargetByPayload(ctx, raw.Payload)
		if err != nil {
			log.Warn().
				Err(err).
				Str("item_id", item.ID).
				Msg("skipping sync item: cannot rebuild target")
			continue
		}
		if target == nil {
			// Lookup-only types found no local match. No record is
			// fabricated.
			continue
		}

		info, err := f.buildKeyAndPayload(target)
		if err != nil {
			log.Warn().Err(err).Str("item_id", item.ID).Msg("skipping sync item: cannot recompute key")
			continue
		}
		if info.id != item.ID {
			log.Warn().
				Str("item_id", item.ID).
				Str("recomputed_id", info.id).
				Str("data_type", string(item.DataType)).
				Msg("skipping sync item: recomputed hash mismatch")
			continue
		}

		ok, err := f.manager.SyncToSceneEachItem(ctx, item, target, raw.Payload)
		if err != nil {
			log.Warn().Err(err).Str("item_id", item.ID).Msg("applying sync item to scene failed")
			continue
		}
		if !ok {
			continue
		}

		plaintext, err := f.codec.CanonicalSerialize(raw)
		if err != nil {
			plaintext = ""
		}
		if err = f.items.MarkSceneApplied(ctx, item.ID, item.PwdHash, plaintext, info.rawKey); err != nil {
			log.Warn().Err(err).Str("item_id", item.ID).Msg("marking sync item applied failed")
			continue
		}
		applied++
	}

	return applied, nil
}

// BuildExistingSyncItemsInfo reconciles a batch of targets against the
// stored items, for bootstrap and credential changes.
//
// Per target: an existing item decryptable under the current credential is
// reused as-is; an existing but undecryptable item falls back to a
// plaintext projection when the type tolerates offline sync; everything
// else is built fresh. Fresh items for targets with no stored row are
// stamped with [CreateGenesisTime] when the manager asks for it, so a
// first-time bootstrap cannot out-rank a genuinely newer remote edit.
// Re-encryptions of a stored row take the current clock instead and win
// over the stale copy.
//
// Store read failures are logged and treated as "no existing item", which
// degrades to a safe idempotent rebuild.
func (f *Flow) BuildExistingSyncItemsInfo(ctx context.Context, targets []models.SyncTarget, cred *models.SyncCredential) ([]models.SyncItem, error) {
	log := logger.FromContext(ctx)
	out := make([]models.SyncItem, 0, len(targets))

	for _, target := range targets {
		ok, err := f.manager.IsSupportSync(target)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		info, err := f.buildKeyAndPayload(target)
		if err != nil {
			return nil, err
		}

		existing, err := f.items.GetItemByID(ctx, info.id)
		if err != nil {
			log.Warn().Err(err).Str("item_id", info.id).Msg("existing item lookup failed, rebuilding")
			existing = nil
		}

		if existing != nil {
			if _, decErr := DecryptSyncItem(f.codec, *existing, cred); decErr == nil {
				out = append(out, *existing)
				continue
			}
			if f.manager.SupportsOfflineSync() {
				plaintext, serErr := f.codec.CanonicalSerialize(info.raw)
				if serErr != nil {
					return nil, serErr
				}
				fallback := *existing
				fallback.Data = ""
				fallback.PwdHash = ""
				fallback.RawData = plaintext
				fallback.RawKey = info.rawKey
				fallback.ServerUploaded = false
				out = append(out, fallback)
				continue
			}
		}

		// Genesis time is reserved for targets with no stored item at
		// all. A rebuild of an existing undecryptable row (a password
		// rotation) takes the current clock, so the re-encrypted
		// revision out-ranks the stale-epoch copy on the relay.
		dataTime := f.clock.TimeNow()
		if existing == nil && f.manager.UseCreateGenesisTime(target) {
			dataTime = CreateGenesisTime
		}

		item, err := f.BuildSyncItem(ctx, target, cred, dataTime, false)
		if err != nil {
			if errors.Is(err, ErrNoCredential) {
				continue
			}
			return nil, err
		}
		if item != nil {
			out = append(out, *item)
		}
	}

	return out, nil
}

// BuildInitSyncDBItems is the bulk variant used at cloud-sync enablement.
// Targets whose stored item already carries the active credential's epoch
// are skipped outright: they are correctly encrypted and need no work.
func (f *Flow) BuildInitSyncDBItems(ctx context.Context, cred *models.SyncCredential) ([]models.SyncItem, error) {
	log := logger.FromContext(ctx)

	targets, err := f.manager.BuildSyncTargetsByDBQuery(ctx)
	if err != nil {
		return nil, err
	}

	rebuild := make([]models.SyncTarget, 0, len(targets))
	for _, target := range targets {
		ok, supErr := f.manager.IsSupportSync(target)
		if supErr != nil {
			return nil, supErr
		}
		if !ok {
			continue
		}

		info, keyErr := f.buildKeyAndPayload(target)
		if keyErr != nil {
			return nil, keyErr
		}

		existing, getErr := f.items.GetItemByID(ctx, info.id)
		if getErr != nil {
			log.Warn().Err(getErr).Str("item_id", info.id).Msg("existing item lookup failed, rebuilding")
			existing = nil
		}
		if existing != nil && cred != nil && existing.Data != "" && existing.PwdHash == itemPwdHash(f.manager.DataType(), *cred) {
			continue
		}

		rebuild = append(rebuild, target)
	}

	return f.BuildExistingSyncItemsInfo(ctx, rebuild, cred)
}
