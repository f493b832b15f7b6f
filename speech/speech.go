// SPDX-License-Identifier: EPL-2.0

// Package speech models the platform text-to-speech service as a capability
// the pipeline depends on without knowing which OS or API provides it.
package speech

import "context"

// baselineRateWPM is the speaking rate, in words per minute, that maps to a
// provider's default speed.
const baselineRateWPM = 175

// Voice identifies an installed synthesis voice.
type Voice struct {
	Name     string
	Language string
}

// Request describes one synthesis job.
type Request struct {
	// Text is the announcement to speak.
	Text string
	// Voice names the narrator; must be one of the provider's voices.
	Voice string
	// Rate is the speaking rate in words per minute (1-299).
	Rate int
	// Gain is the output volume in (0, 1].
	Gain float64
}

// Synthesizer turns text into an audio file on disk.
type Synthesizer interface {
	// Name identifies the provider ("say", "openai").
	Name() string

	// FileExt is the container extension of synthesized files, without the
	// dot ("aiff", "wav").
	FileExt() string

	// AppliesGain reports whether Synthesize honors Request.Gain itself.
	// When false, the caller applies gain during conversion instead.
	AppliesGain() bool

	// Voices lists the provider's available narrator voices.
	Voices(ctx context.Context) ([]Voice, error)

	// Synthesize writes the spoken text to outPath. The context bounds the
	// wait; an expired deadline surfaces as ErrTimeout.
	Synthesize(ctx context.Context, req Request, outPath string) error
}

// HasVoice reports whether name is in voices.
func HasVoice(voices []Voice, name string) bool {
	for _, v := range voices {
		if v.Name == name {
			return true
		}
	}
	return false
}
