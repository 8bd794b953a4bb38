package responder

import "errors"

// ErrExternalService wraps every language-model failure. It never leaves
// this package: callers get the canned reply instead.
var ErrExternalService = errors.New("language model unavailable")
