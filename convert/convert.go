// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kd9vox/rpwavgen/audio"
	"github.com/kd9vox/rpwavgen/formats/aiff"
	"github.com/kd9vox/rpwavgen/formats/mp3"
	"github.com/kd9vox/rpwavgen/formats/vorbis"
	"github.com/kd9vox/rpwavgen/formats/wav"
	"github.com/kd9vox/rpwavgen/profile"
	"github.com/kd9vox/rpwavgen/utils"
	"github.com/kd9vox/rpwavgen/validate"
)

// Converter decodes audio in any registered input format and rewrites it to
// match a playback profile: resample, remix channels, requantize, re-encode.
// The zero value is not usable; construct with New.
type Converter struct {
	reg *audio.Registry

	// Gain scales samples by a constant factor in (0, 1] before
	// quantization. Zero disables the gain stage.
	Gain float64

	// FFmpegFallback routes inputs without a native decoder through an
	// external ffmpeg. Without it such inputs fail with ErrUnsupportedCodec.
	FFmpegFallback bool
}

// New returns a Converter with every native decoder registered.
func New() *Converter {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return &Converter{reg: reg}
}

// Formats returns the input format keys this converter decodes natively.
func (c *Converter) Formats() []string {
	return c.reg.Formats()
}

// Convert reads inputPath, transforms the audio to satisfy spec and writes
// the result to outputPath, overwriting any existing file there. The input
// file is never modified. The returned asset describes the written file as
// read back from its own header.
//
// Conversion is deterministic: the same input bytes and spec produce the
// same output on a given backend.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string, spec profile.Spec) (validate.Asset, error) {
	if err := checkTarget(spec); err != nil {
		return validate.Asset{}, err
	}

	src, cleanup, err := c.open(ctx, inputPath)
	if err != nil {
		return validate.Asset{}, err
	}
	defer cleanup()

	samples, err := c.process(ctx, src, spec)
	if err != nil {
		return validate.Asset{}, fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	if err := writeOutput(outputPath, spec, samples); err != nil {
		return validate.Asset{}, err
	}

	return validate.Inspect(outputPath)
}

// writeOutput encodes samples into the target container at path. A failed
// encode never leaves a partial file behind.
func writeOutput(path string, spec profile.Spec, samples []int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	if err := wav.Encode(out, spec.SampleRateHz, spec.BitDepthBits, spec.ChannelCount, samples); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("%w: encoding %s: %v", ErrIO, path, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: closing %s: %v", ErrIO, path, err)
	}
	return nil
}

// checkTarget rejects profiles the backend cannot produce, before any I/O.
func checkTarget(spec profile.Spec) error {
	if spec.Container != profile.ContainerWAV {
		return fmt.Errorf("%w: container %q", ErrInvalidTarget, spec.Container)
	}
	if spec.Encoding != profile.EncodingPCM {
		return fmt.Errorf("%w: encoding %q", ErrInvalidTarget, spec.Encoding)
	}
	if spec.SampleRateHz <= 0 {
		return fmt.Errorf("%w: sample rate %d Hz", ErrInvalidTarget, spec.SampleRateHz)
	}
	if spec.ChannelCount < 1 {
		return fmt.Errorf("%w: %d channels", ErrInvalidTarget, spec.ChannelCount)
	}
	switch spec.BitDepthBits {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidTarget, spec.BitDepthBits)
	}
	return nil
}

// open decodes inputPath into a Source. The returned cleanup must always be
// called; it closes the source and removes any scratch file the ffmpeg
// fallback produced.
func (c *Converter) open(ctx context.Context, inputPath string) (audio.Source, func(), error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(inputPath)), ".")

	dec, ok := c.reg.Get(format)
	if !ok {
		if !c.FFmpegFallback {
			return nil, nil, fmt.Errorf("%w: %q (native formats: %s)",
				ErrUnsupportedCodec, format, strings.Join(c.reg.Formats(), ", "))
		}
		return c.openViaFFmpeg(ctx, inputPath)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s: %v", ErrIO, inputPath, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedCodec, inputPath, err)
	}

	cleanup := func() {
		src.Close()
		f.Close()
	}
	return src, cleanup, nil
}

// process runs the stage pipeline and collects quantized samples. Stages
// are only inserted when the source deviates from the target profile, so
// converting an already-conforming stream is a straight copy.
func (c *Converter) process(ctx context.Context, src audio.Source, spec profile.Spec) ([]int, error) {
	stage := src

	if stage.SampleRate() != spec.SampleRateHz {
		stage = audio.NewResampler(stage, spec.SampleRateHz)
	}
	if stage.Channels() != spec.ChannelCount {
		mixer, err := audio.NewChannelMixer(stage, spec.ChannelCount)
		if err != nil {
			return nil, err
		}
		stage = mixer
	}
	if c.Gain > 0 && c.Gain != 1 {
		g, err := audio.NewGain(stage, c.Gain)
		if err != nil {
			return nil, err
		}
		stage = g
	}

	// Estimate one second of output to size the first allocation
	samples := make([]int, 0, spec.SampleRateHz*spec.ChannelCount)
	buf := make([]float32, 1024*stage.Channels())

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, err := stage.ReadSamples(buf)
		for i := 0; i < n; i++ {
			samples = append(samples, utils.Quantize(buf[i], spec.BitDepthBits))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return samples, nil
}
