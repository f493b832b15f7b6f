// SPDX-License-Identifier: EPL-2.0

// Package convert transforms arbitrary audio input into a file matching a
// playback profile.
//
// A Converter decodes the input through the format registry (WAV, MP3, Ogg
// Vorbis and AIFF natively, anything else through the optional ffmpeg
// fallback), then assembles a stage pipeline from the audio package —
// resampler, channel mixer, gain — inserting only the stages the input
// actually needs, and finally quantizes and encodes into the target WAV
// container:
//
//	c := convert.New()
//	asset, err := c.Convert(ctx, "clip.mp3", "Speech.wav", profile.Default())
//
// The input file is never modified and the output is overwritten in place.
package convert
