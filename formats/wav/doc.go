// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio files using github.com/go-audio.
//
// The decoder accepts PCM input at 8, 16, 24 or 32-bit depth, mono or
// multi-channel, any sample rate, and returns an audio.Source streaming
// normalized float32 samples:
//
//	decoder := wav.Decoder{}
//	f, _ := os.Open("input.wav")
//	src, err := decoder.Decode(f)
//
// The encoder writes a complete WAV container for any of the supported bit
// depths and channel counts:
//
//	f, _ := os.Create("Speech.wav")
//	err := wav.Encode(f, 16000, 16, 1, samples)
//
// Samples passed to Encode must already be quantized to the target depth;
// utils.Quantize produces matching values.
//
// Compressed WAV payloads (anything other than format tag 1) are rejected
// with ErrOnlyPCMSupported.
package wav
