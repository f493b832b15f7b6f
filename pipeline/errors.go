package pipeline

import "errors"

// ErrCleanup marks a failed removal of the temporary synthesis artifact.
var ErrCleanup = errors.New("failed to remove temporary speech file")
