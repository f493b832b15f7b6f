// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/kd9vox/rpwavgen/utils"
)

// Resampler streams a source at a different sample rate using cubic
// interpolation over a four-frame window. Channel count is preserved; when
// narrowing (the usual case for announcement audio, e.g. 44.1 kHz down to
// 16 kHz) a one-pole low-pass tames aliasing first.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	step     float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the interpolation point; window[0]
	// and window[3] are the outer support frames.
	window    [4][]float32
	hasFrame  [4]bool
	pos       float64 // fractional position between window[1] and window[2]
	readBuf   []float32
	exhausted bool

	// low-pass state, one value per channel, active only when narrowing
	lpState []float32
	lpAlpha float32
	useLP   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	// Filter only when narrowing; widening introduces no aliasing
	useLP := step > 1.0
	var lpAlpha float32
	if useLP {
		// Cutoff near the destination rate's Nyquist frequency
		lpAlpha = 0.5
	}

	r := &Resampler{
		src:      src,
		srcRate:  float64(src.SampleRate()),
		dstRate:  float64(dstRate),
		step:     step,
		channels: channels,
		readBuf:  make([]float32, 4096),
		useLP:    useLP,
		lpAlpha:  lpAlpha,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left by one frame and reads the next source
// frame into the last slot, filtering it when the low-pass is active.
func (r *Resampler) advance() error {
	if r.exhausted {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]

	n, err := r.src.ReadSamples(r.readBuf[:r.channels])
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.hasFrame[3] = true

		if r.useLP {
			for c := 0; c < r.channels; c++ {
				r.window[3][c] = r.lpAlpha*r.window[3][c] + (1-r.lpAlpha)*r.lpState[c]
				r.lpState[c] = r.window[3][c]
			}
		}
	} else {
		r.hasFrame[3] = false
	}

	if err == io.EOF {
		r.exhausted = true
		if !r.hasFrame[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill loads the initial four-frame window. A source shorter than the
// window repeats its last frame into the remaining slots.
func (r *Resampler) fill() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.readBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.hasFrame[i] = true

			// Seed the filter with the first frame so it starts settled
			if i == 0 && r.useLP {
				copy(r.lpState, r.readBuf[:n])
			}
		}
		if err == io.EOF {
			r.exhausted = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				if i > 0 {
					copy(r.window[j], r.window[i-1])
					r.hasFrame[j] = true
				}
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// ReadSamples fills dst with interleaved frames at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.hasFrame[1] {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// Keep pos inside [0, 1) so interpolation always runs between
		// window[1] and window[2]
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			var y0, y3 float32

			// Missing edge frames duplicate their inner neighbor
			if r.hasFrame[0] {
				y0 = r.window[0][c]
			} else {
				y0 = r.window[1][c]
			}
			y1 := r.window[1][c]
			y2 := r.window[2][c]
			if r.hasFrame[3] {
				y3 = r.window[3][c]
			} else {
				y3 = r.window[2][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
