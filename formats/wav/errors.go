package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only PCM wav input supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported wav bit depth")
	ErrInvalidChannelCount  = errors.New("channel count must be at least 1")
)
