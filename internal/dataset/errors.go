package dataset

import "errors"

// ErrInput marks unusable caller input: empty sets, bad labels, bad
// resolutions. Not recoverable within a visualization pass.
var ErrInput = errors.New("invalid input")
