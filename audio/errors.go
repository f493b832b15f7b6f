// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")
	ErrInvalidGain         = errors.New("gain must be greater than zero")
	ErrPartialFrame        = errors.New("source returned a partial frame")
)
