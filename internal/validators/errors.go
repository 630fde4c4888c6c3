package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID     = errors.New("item ID is required")
	ErrInvalidDataType = errors.New("invalid data type")
	ErrInvalidDataTime = errors.New("invalid data time")
	ErrEmptyItems      = errors.New("items list cannot be empty")
	ErrInvalidSince    = errors.New("since cannot be negative")
	ErrLengthMismatch  = errors.New("length does not match items count")
)
