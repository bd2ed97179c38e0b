package sorting

import "errors"

// ErrUnsupportedAlgorithm is returned when an identifier does not name one of
// the ten supported algorithms.
var ErrUnsupportedAlgorithm = errors.New("sorting: unsupported algorithm")
