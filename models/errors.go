package models

import "errors"

// ErrInvalidTimestamp is returned when a client timestamp matches none of the
// accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ErrInvalidFeatures is returned when a positional feature vector contains a
// non-numeric element.
var ErrInvalidFeatures = errors.New("invalid features")
