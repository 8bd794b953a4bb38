package validators

import "errors"

var (
	// ErrValidation wraps every rule violation found in a request.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)
