// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Gain scales every sample by a constant factor. Factors are expected in
// (0, 1]; amplification is allowed but samples are not clamped here, that
// happens at quantization time.
type Gain struct {
	src    Source
	factor float32
}

func NewGain(src Source, factor float64) (*Gain, error) {
	if factor <= 0 {
		return nil, ErrInvalidGain
	}
	return &Gain{src: src, factor: float32(factor)}, nil
}

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }
func (g *Gain) BufSize() int    { return g.src.BufSize() }

func (g *Gain) Close() error {
	err := g.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	for i := 0; i < n; i++ {
		dst[i] *= g.factor
	}
	return n, err
}
