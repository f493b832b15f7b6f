package validate

import "errors"

var (
	ErrNotWavContainer = errors.New("not a WAV container")
	ErrMalformedHeader = errors.New("malformed WAV header")
)
