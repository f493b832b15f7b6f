// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer converts a source to a fixed output channel count. Downmixing
// averages all input channels; upmixing replicates the averaged signal into
// every output channel. Matching counts pass through untouched.
type ChannelMixer struct {
	src Source
	out int
	tmp []float32
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	return &ChannelMixer{
		src: src,
		out: channels,
		tmp: make([]float32, 4096),
	}, nil
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.out {
		// Pass-through: channel layout already matches
		return m.src.ReadSamples(dst)
	}

	maxFrames := len(dst) / m.out
	samplesNeeded := maxFrames * in

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	if n%in != 0 {
		return 0, ErrPartialFrame
	}
	frames := n / in

	invChannels := float32(1.0) / float32(in)

	for f := 0; f < frames; f++ {
		var mixed float32

		// Unrolled paths for the common input layouts
		switch in {
		case 1:
			mixed = m.tmp[f]
		case 2:
			idx := f << 1
			mixed = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		case 4:
			idx := f << 2
			mixed = (m.tmp[idx] + m.tmp[idx+1] + m.tmp[idx+2] + m.tmp[idx+3]) * 0.25
		default:
			baseIdx := f * in
			for c := 0; c < in; c++ {
				mixed += m.tmp[baseIdx+c]
			}
			mixed *= invChannels
		}

		for c := 0; c < m.out; c++ {
			dst[f*m.out+c] = mixed
		}
	}

	return frames * m.out, err
}
