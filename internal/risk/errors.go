package risk

import "errors"

// ErrInvalidCutPoints is returned when cut points do not form three
// ordered, non-empty bands.
var ErrInvalidCutPoints = errors.New("invalid classifier cut points")
