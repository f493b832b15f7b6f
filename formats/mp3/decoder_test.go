// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16 // PCM samples (16-bit)
	offset     int
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := len(buf)
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Only read complete samples (even number of bytes)
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := 0; i < samplesToRead; i++ {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

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
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 100)},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
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

	// 8 samples (stereo: 4 frames)
	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, samples: testSamples},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	// Verify int16 -> float32 conversion
	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0, 0.25, -0.25, 0.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	testSamples := []int16{100, 200, 300, 400}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, samples: testSamples},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 4)
	n1, err1 := src.ReadSamples(dst)

	if err1 != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err1)
	}

	if n1 != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n1)
	}

	n2, err2 := src.ReadSamples(dst)

	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}

	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	testSamples := make([]int16, 10)
	for i := range testSamples {
		testSamples[i] = int16(i * 1000)
	}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, samples: testSamples},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 4)
	n1, err1 := src.ReadSamples(dst)

	if err1 != nil && err1 != io.EOF {
		t.Fatalf("First ReadSamples() error = %v", err1)
	}
	if n1 != 4 {
		t.Errorf("First ReadSamples() n = %d, want 4", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != nil && err2 != io.EOF {
		t.Fatalf("Second ReadSamples() error = %v", err2)
	}
	if n2 != 4 {
		t.Errorf("Second ReadSamples() n = %d, want 4", n2)
	}

	n3, err3 := src.ReadSamples(dst)
	if err3 != io.EOF {
		t.Errorf("Third ReadSamples() error = %v, want io.EOF", err3)
	}
	if n3 != 2 {
		t.Errorf("Third ReadSamples() n = %d, want 2", n3)
	}
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 1000)},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 100),
	}

	initialCap := cap(src.buf)

	dst := make([]float32, 1000)
	_, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if cap(src.buf) <= initialCap {
		t.Errorf("Buffer capacity = %d, want > %d (should have grown)", cap(src.buf), initialCap)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 100)},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// BenchmarkSource_ReadSamples benchmarks reading samples
func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*10) // 10 seconds
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mockReader := &mockMP3Reader{sampleRate: 44100, samples: samples}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		mockReader.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
