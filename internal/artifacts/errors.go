package artifacts

import "errors"

// ErrLoad is returned when the column manifest or the model cannot be loaded.
// A process that gets it must not serve estimates.
var ErrLoad = errors.New("failed to load artifacts")
