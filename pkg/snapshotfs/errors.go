package snapshotfs

import "errors"

// ErrSnapshot is wrapped by every error returned from NewProvider.
var ErrSnapshot = errors.New("capture filesystem space snapshot")
