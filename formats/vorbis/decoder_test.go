// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// oggvorbis reads run in whole frames
	framesRequested := len(buf) / m.channels
	samplesAvailable := len(m.samples) - m.offset
	framesAvailable := samplesAvailable / m.channels

	framesToRead := framesRequested
	if framesToRead > framesAvailable {
		framesToRead = framesAvailable
	}

	samplesToRead := framesToRead * m.channels
	copy(buf, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return framesToRead, io.EOF
	}

	return framesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not Ogg Vorbis data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 44100,
			channels:   2,
			samples:    make([]float32, 100),
		},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   2,
			samples:    testSamples,
		},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	for i := 0; i < n; i++ {
		if dst[i] != testSamples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   1,
			samples:    make([]float32, 100),
		},
		sampleRate: 8000,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 0)
	n, err := src.ReadSamples(dst)

	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}

	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	// 3 stereo frames
	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   2,
			samples:    testSamples,
		},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 4) // 2 frames
	n1, err1 := src.ReadSamples(dst)

	if err1 != nil && err1 != io.EOF {
		t.Fatalf("First ReadSamples() error = %v", err1)
	}

	if n1 != 4 {
		t.Errorf("First ReadSamples() n = %d, want 4", n1)
	}

	for i := 0; i < n1; i++ {
		if dst[i] != testSamples[i] {
			t.Errorf("First chunk dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}

	n2, err2 := src.ReadSamples(dst)

	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}

	if n2 != 2 {
		t.Errorf("Second ReadSamples() n = %d, want 2", n2)
	}

	for i := 0; i < n2; i++ {
		if dst[i] != testSamples[4+i] {
			t.Errorf("Second chunk dst[%d] = %v, want %v", i, dst[i], testSamples[4+i])
		}
	}
}

func TestSource_ReadSamples_Mono(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 16000,
			channels:   1,
			samples:    testSamples,
		},
		sampleRate: 16000,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	for i := 0; i < n; i++ {
		if dst[i] != testSamples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 44100,
			channels:   2,
			samples:    make([]float32, 100),
		},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// BenchmarkSource_ReadSamples benchmarks reading samples
func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 44100*10) // 10 seconds
	for i := range samples {
		samples[i] = float32(i%1000) / 1000.0
	}

	mockReader := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   2,
		samples:    samples,
	}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		mockReader.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
