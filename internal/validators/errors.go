package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrInvalidRequest wraps every field-level rejection.
	ErrInvalidRequest = errors.New("invalid request")
)
