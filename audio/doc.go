// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the conversion pipeline is
// built from: the Source and Decoder interfaces, a decoder Registry keyed by
// format, and composable processing stages.
//
// A Source delivers interleaved float32 samples in [-1, 1]. Stages wrap one
// Source and present another, so a pipeline is assembled by nesting:
//
//	res := audio.NewResampler(src, 16000)
//	mix, _ := audio.NewChannelMixer(res, 1)
//	g, _ := audio.NewGain(mix, 0.8)
//
//	buf := make([]float32, 4096)
//	n, err := g.ReadSamples(buf)
//
// Stages:
//   - Resampler: cubic-interpolation rate conversion with a simple
//     anti-aliasing filter when downsampling
//   - ChannelMixer: downmix by averaging, upmix by replication
//   - Gain: constant volume scaling
package audio
