package validators

import (
	"context"
	"fmt"

	"github.com/enzg/one-big-key-sub004/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldItemID targets the content-derived identifier of a sync item.
	FieldItemID = "item_id"

	// FieldDataType targets the data type tag of a sync item.
	FieldDataType = "data_type"

	// FieldDataTime targets the revision timestamp of a sync item.
	FieldDataTime = "data_time"

	// FieldItems targets the list of items in an upload request.
	FieldItems = "items"

	// FieldLength targets the declared item count of an upload request.
	FieldLength = "length"

	// FieldSince targets the incremental watermark of a fetch request.
	FieldSince = "since"

	// FieldDataTypes targets the type filter of a fetch request.
	FieldDataTypes = "data_types"
)

// SyncRequestValidator validates relay sync payloads before the service
// layer resolves them against stored revisions.
type SyncRequestValidator struct {
	allowed map[models.DataType]struct{}
}

func NewSyncRequestValidator() Validator {
	allowed := make(map[models.DataType]struct{}, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		allowed[dt] = struct{}{}
	}
	return &SyncRequestValidator{allowed: allowed}
}

func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.FetchRequest:
		return v.validateFetchRequest(ctx, value, fields...)
	case *models.FetchRequest:
		return v.validateFetchRequest(ctx, *value, fields...)

	case models.RelayItem:
		return v.validateRelayItem(ctx, value, fields...)
	case *models.RelayItem:
		return v.validateRelayItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRequestValidator) isValidDataType(dt models.DataType) bool {
	_, ok := v.allowed[dt]
	return ok
}

func (v *SyncRequestValidator) validateRelayItem(ctx context.Context, item models.RelayItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldDataType, FieldDataTime}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldDataType:
			if !v.isValidDataType(item.DataType) {
				return ErrInvalidDataType
			}
		case FieldDataTime:
			if item.DataTime <= 0 {
				return ErrInvalidDataTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncRequestValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			if len(request.Items) == 0 {
				return ErrEmptyItems
			}
			for i, item := range request.Items {
				if err := v.validateRelayItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldLength:
			if request.Length != 0 && request.Length != len(request.Items) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncRequestValidator) validateFetchRequest(ctx context.Context, request models.FetchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSince, FieldDataTypes}
	}

	for _, f := range fields {
		switch f {
		case FieldSince:
			if request.Since < 0 {
				return ErrInvalidSince
			}
		case FieldDataTypes:
			for _, dt := range request.DataTypes {
				if !v.isValidDataType(dt) {
					return ErrInvalidDataType
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
