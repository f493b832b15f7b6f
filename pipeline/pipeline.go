// SPDX-License-Identifier: EPL-2.0

// Package pipeline sequences synthesis, conversion and validation into the
// fixed workflows the CLI exposes: generate, convert-only, validate-only.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kd9vox/rpwavgen/convert"
	"github.com/kd9vox/rpwavgen/profile"
	"github.com/kd9vox/rpwavgen/speech"
	"github.com/kd9vox/rpwavgen/validate"
)

// OutputFileName is the one file name repeater hardware loads; every
// workflow that writes produces exactly this name inside the output
// directory.
const OutputFileName = "Speech.wav"

// tempBaseName is the synthesis scratch file written next to the output.
// It is always removed again, whether the workflow succeeds or fails.
const tempBaseName = "temp_speech"

// DefaultSynthTimeout bounds the synthesis wait when no timeout is
// configured.
const DefaultSynthTimeout = 2 * time.Minute

// Result is the structured outcome of a workflow. A non-compliant
// validation is a Result, not an error; only infrastructure failures
// surface as errors.
type Result struct {
	// OutputPath is the file the workflow produced or inspected.
	OutputPath string

	// Asset describes the produced file, when a conversion ran.
	Asset validate.Asset

	// Validation is the compliance report, for workflows that validate.
	Validation validate.Result

	// CleanupErr reports a failed scratch-file removal. It never masks the
	// workflow's own error and is never silently dropped.
	CleanupErr error
}

// Pipeline runs one workflow at a time; it holds no mutable state between
// calls, so a single instance may serve sequential invocations.
type Pipeline struct {
	synth speech.Synthesizer
	conv  *convert.Converter
	spec  profile.Spec

	// SynthTimeout bounds the synthesis wait; zero means
	// DefaultSynthTimeout.
	SynthTimeout time.Duration
}

func New(synth speech.Synthesizer, conv *convert.Converter, spec profile.Spec) *Pipeline {
	return &Pipeline{
		synth: synth,
		conv:  conv,
		spec:  spec,
	}
}

// Generate synthesizes req into a scratch file, converts it to the
// canonical output under outputDir and validates the result. The scratch
// file is removed on every path out of this function; a removal failure is
// reported through Result.CleanupErr wrapped as ErrCleanup.
func (p *Pipeline) Generate(ctx context.Context, req speech.Request, outputDir string) (res Result, err error) {
	res.OutputPath = filepath.Join(outputDir, OutputFileName)

	// The narrator must be known before any synthesis or I/O happens
	voices, err := p.synth.Voices(ctx)
	if err != nil {
		return res, fmt.Errorf("listing voices: %w", err)
	}
	if req.Voice != "" && !speech.HasVoice(voices, req.Voice) {
		return res, fmt.Errorf("%w: %q", speech.ErrUnknownVoice, req.Voice)
	}

	tempPath := filepath.Join(outputDir, tempBaseName+"."+p.synth.FileExt())
	defer func() {
		res.CleanupErr = removeScratch(tempPath)
	}()

	synthCtx, cancel := context.WithTimeout(ctx, p.synthTimeout())
	defer cancel()
	if err := p.synth.Synthesize(synthCtx, req, tempPath); err != nil {
		return res, fmt.Errorf("synthesize: %w", err)
	}

	conv := p.converterFor(req)
	res.Asset, err = conv.Convert(ctx, tempPath, res.OutputPath, p.spec)
	if err != nil {
		return res, fmt.Errorf("convert: %w", err)
	}

	res.Validation, err = validate.Validate(res.OutputPath, p.spec)
	if err != nil {
		return res, fmt.Errorf("validate: %w", err)
	}

	return res, nil
}

// ConvertFile rewrites a caller-supplied input into the canonical output
// under outputDir. No validation runs and the input is left untouched.
func (p *Pipeline) ConvertFile(ctx context.Context, inputPath, outputDir string) (Result, error) {
	res := Result{OutputPath: filepath.Join(outputDir, OutputFileName)}

	asset, err := p.conv.Convert(ctx, inputPath, res.OutputPath, p.spec)
	if err != nil {
		return res, fmt.Errorf("convert: %w", err)
	}
	res.Asset = asset

	return res, nil
}

// ValidateFile certifies an existing file against the pipeline's profile.
// Read-only; nothing on disk changes.
func (p *Pipeline) ValidateFile(inputPath string) (Result, error) {
	res := Result{OutputPath: inputPath}

	validation, err := validate.Validate(inputPath, p.spec)
	if err != nil {
		return res, fmt.Errorf("validate: %w", err)
	}
	res.Validation = validation

	return res, nil
}

func (p *Pipeline) synthTimeout() time.Duration {
	if p.SynthTimeout > 0 {
		return p.SynthTimeout
	}
	return DefaultSynthTimeout
}

// converterFor applies the request gain in the conversion stage when the
// synthesizer could not apply it during synthesis.
func (p *Pipeline) converterFor(req speech.Request) *convert.Converter {
	if p.synth.AppliesGain() || req.Gain <= 0 {
		return p.conv
	}
	conv := *p.conv
	conv.Gain = req.Gain
	return &conv
}

// removeScratch deletes the synthesis scratch file. A file that was never
// created is not an error; anything else is wrapped as ErrCleanup.
func removeScratch(path string) error {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrCleanup, err)
}
