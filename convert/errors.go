package convert

import "errors"

var (
	ErrUnsupportedCodec = errors.New("unsupported input codec")
	ErrIO               = errors.New("audio file I/O failure")
	ErrInvalidTarget    = errors.New("invalid target profile")
)
