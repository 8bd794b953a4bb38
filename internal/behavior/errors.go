package behavior

import "errors"

var (
	// ErrModelUnavailable is returned when no behavioral model is loaded.
	ErrModelUnavailable = errors.New("behavior model not available")
	// ErrFeature is returned when the input cannot be turned into a valid
	// feature vector or the model rejects it.
	ErrFeature = errors.New("invalid behavior features")
	// ErrInvalidModel is returned when a model artifact is malformed.
	ErrInvalidModel = errors.New("invalid behavior model")
)
