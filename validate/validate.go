// SPDX-License-Identifier: EPL-2.0

// Package validate inspects a WAV file's container header and certifies it
// against a playback profile, field by field.
package validate

import (
	"fmt"
	"os"
	"strconv"

	gowav "github.com/go-audio/wav"

	"github.com/kd9vox/rpwavgen/profile"
)

// Violation field names, in evaluation order.
const (
	FieldDuration   = "duration"
	FieldSampleRate = "sample rate"
	FieldBitDepth   = "bit depth"
	FieldChannels   = "channels"
	FieldEncoding   = "encoding"
)

// Asset describes an audio file once its container header has been read.
// Every property comes from the header; nothing is inferred from file size
// or extension. Assets are produced, never mutated.
type Asset struct {
	Path            string
	DurationSeconds float64
	SampleRateHz    int
	BitDepthBits    int
	ChannelCount    int
	Encoding        profile.Encoding
}

// Result reports profile compliance. When OK is false, Field names the
// first non-compliant property in evaluation order, and Expected/Actual
// hold the literal values that were compared.
type Result struct {
	OK       bool
	Field    string
	Expected string
	Actual   string
}

func (r Result) String() string {
	switch {
	case r.OK:
		return "ok"
	case r.Field == FieldDuration:
		return fmt.Sprintf("file is too long [%s > %s]", r.Actual, r.Expected)
	default:
		return fmt.Sprintf("file has wrong %s [%s != %s]", r.Field, r.Actual, r.Expected)
	}
}

// Inspect opens a WAV container and reads its header-derived properties.
// Duration is computed as frame count over frame rate, and the encoding is
// classified from the header's format tag: tag 1 (no compression) is PCM,
// anything else is non-PCM.
func Inspect(path string) (Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Asset{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Asset{}, fmt.Errorf("%s: %w", path, ErrNotWavContainer)
	}
	if err := dec.FwdToPCM(); err != nil {
		return Asset{}, fmt.Errorf("reading %s: %w", path, err)
	}

	// The header stores a per-sample width; frames interleave one sample
	// per channel
	sampleWidthBytes := int(dec.BitDepth) / 8
	frameSize := sampleWidthBytes * int(dec.NumChans)
	if frameSize == 0 || dec.SampleRate == 0 {
		return Asset{}, fmt.Errorf("%s: %w", path, ErrMalformedHeader)
	}
	frames := dec.PCMSize / frameSize

	encoding := profile.EncodingNonPCM
	if dec.WavAudioFormat == 1 {
		encoding = profile.EncodingPCM
	}

	return Asset{
		Path:            path,
		DurationSeconds: float64(frames) / float64(dec.SampleRate),
		SampleRateHz:    int(dec.SampleRate),
		BitDepthBits:    sampleWidthBytes * 8,
		ChannelCount:    int(dec.NumChans),
		Encoding:        encoding,
	}, nil
}

// Validate certifies the file at path against spec. Comparisons run in a
// fixed order and stop at the first violation: duration, sample rate, bit
// depth, channels, encoding. A duration exactly equal to the profile
// maximum is valid; the check is strictly-greater.
//
// Units are compared like for like: the sample rate check is Hz against Hz
// and the bit depth check is bits against bits, with the header's
// byte-oriented sample width converted to bits before comparing.
func Validate(path string, spec profile.Spec) (Result, error) {
	asset, err := Inspect(path)
	if err != nil {
		return Result{}, err
	}
	return Check(asset, spec), nil
}

// Check evaluates an already-inspected asset against spec.
func Check(asset Asset, spec profile.Spec) Result {
	if maxSec := spec.MaxDuration.Seconds(); asset.DurationSeconds > maxSec {
		return violation(FieldDuration, formatFloat(maxSec), formatFloat(asset.DurationSeconds))
	}
	if asset.SampleRateHz != spec.SampleRateHz {
		return violation(FieldSampleRate, strconv.Itoa(spec.SampleRateHz), strconv.Itoa(asset.SampleRateHz))
	}
	if asset.BitDepthBits != spec.BitDepthBits {
		return violation(FieldBitDepth, strconv.Itoa(spec.BitDepthBits), strconv.Itoa(asset.BitDepthBits))
	}
	if asset.ChannelCount != spec.ChannelCount {
		return violation(FieldChannels, strconv.Itoa(spec.ChannelCount), strconv.Itoa(asset.ChannelCount))
	}
	if asset.Encoding != spec.Encoding {
		return violation(FieldEncoding, string(spec.Encoding), string(asset.Encoding))
	}

	return Result{OK: true}
}

func violation(field, expected, actual string) Result {
	return Result{Field: field, Expected: expected, Actual: actual}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
