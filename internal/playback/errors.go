package playback

import "errors"

// ErrUnknownAlgorithm indicates an algorithm the controller does not manage.
var ErrUnknownAlgorithm = errors.New("playback: algorithm not managed by controller")
