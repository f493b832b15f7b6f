// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/kd9vox/rpwavgen/audio"
)

// wavReader is the subset of gowav.Decoder used by source, for testing.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	format     *goaudio.Format
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	// Normalize integer samples to [-1, 1]. 8-bit WAV samples are unsigned
	// with a 128 offset; wider samples are signed.
	switch s.bitDepth {
	case 8:
		for i := 0; i < n; i++ {
			dst[i] = (float32(s.intBuf.Data[i]) - 128.0) / 128.0
		}
	case 24:
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 8388608.0
		}
	case 32:
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 2147483648.0
		}
	default: // 16-bit
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 32768.0
		}
	}

	// A short read with no error means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs random access for chunk scanning
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		format:     format,
	}, nil
}
