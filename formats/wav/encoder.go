// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes interleaved integer PCM samples as a WAV file at the given
// sample rate, bit depth and channel count. Samples must already be
// quantized for bitDepth (see utils.Quantize): 8-bit unsigned, wider depths
// signed. The writer must support seeking so chunk sizes can be patched in
// after the data is written.
func Encode(ws io.WriteSeeker, sampleRate, bitDepth, channels int, samples []int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}
	if channels < 1 {
		return ErrInvalidChannelCount
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}
