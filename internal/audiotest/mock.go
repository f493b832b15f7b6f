// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides scripted sources for tests: silence, sine
// tones and constant levels at any sample rate and channel layout, short
// enough to stand in for synthesized announcement audio.
package audiotest

import (
	"io"
	"math"
)

// MockSource produces interleaved frames from a waveform function. It
// satisfies the audio.Source interface without importing it, so any
// package's tests may feed it into a stage pipeline.
type MockSource struct {
	rate     int
	channels int
	frames   int // frames the source produces in total
	read     int // frames handed out so far
	waveform func(frame, channel int) float32
}

// NewMockSource returns a source producing frames frames of waveform
// output at the given rate and channel count.
func NewMockSource(rate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentSource returns a source holding every sample at zero.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineSource returns a source producing a sine tone at freq Hz,
// identical across channels.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

// NewConstantSource returns a source holding every sample at value.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again from the start.
func (m *MockSource) Reset() {
	m.read = 0
}

// ReadSamples fills dst with whole frames. The final read returns its data
// together with io.EOF.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	if left := m.frames - m.read; want > left {
		want = left
	}

	for f := 0; f < want; f++ {
		idx := m.read + f
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(idx, c)
		}
	}

	m.read += want

	if m.read >= m.frames {
		return want * m.channels, io.EOF
	}
	return want * m.channels, nil
}
