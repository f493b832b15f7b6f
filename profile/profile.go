// SPDX-License-Identifier: EPL-2.0

// Package profile describes the playback format a repeater expects from its
// announcement file. A Spec is an immutable value and is always passed
// explicitly into the operations that need it.
package profile

import "time"

// Encoding identifies how the audio payload inside a container is coded.
type Encoding string

const (
	// EncodingPCM is uncompressed linear PCM, the only encoding repeater
	// hardware plays back.
	EncodingPCM Encoding = "PCM"
	// EncodingNonPCM marks any compressed or unrecognized payload.
	EncodingNonPCM Encoding = "non-PCM"
)

// ContainerWAV is the only container format the hardware reads.
const ContainerWAV = "wav"

// Spec describes the audio format a playback device requires. The zero value
// is not usable; construct one with Default or with explicit fields.
type Spec struct {
	// Container is the file format wrapping the audio stream.
	Container string
	// MaxDuration is the longest announcement the device will play.
	MaxDuration time.Duration
	// SampleRateHz is the required sample rate in Hz.
	SampleRateHz int
	// BitDepthBits is the required bits per sample (8, 16, 24 or 32).
	BitDepthBits int
	// ChannelCount is the required number of channels (1 = mono).
	ChannelCount int
	// Encoding is the required payload coding.
	Encoding Encoding
}

// Default returns the profile required by ICOM ID-RP series repeaters:
// at most 10 seconds of 16 kHz, 16-bit, mono PCM in a WAV container.
func Default() Spec {
	return Spec{
		Container:    ContainerWAV,
		MaxDuration:  10 * time.Second,
		SampleRateHz: 16000,
		BitDepthBits: 16,
		ChannelCount: 1,
		Encoding:     EncodingPCM,
	}
}
