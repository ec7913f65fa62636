package interfaces

import "errors"

// ErrVersionConflict is returned by conditional repository writes when the
// stored version no longer matches the one the caller read.
var ErrVersionConflict = errors.New("estimate was modified concurrently")
