package convert

import (
	"context"
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/kd9vox/rpwavgen/audio"
	"github.com/kd9vox/rpwavgen/formats/wav"
)

// openViaFFmpeg decodes an input the native registry cannot read by running
// the system ffmpeg into a scratch 16-bit PCM wav, then decoding that
// natively. The cleanup closes the source and removes the scratch file.
func (c *Converter) openViaFFmpeg(ctx context.Context, inputPath string) (audio.Source, func(), error) {
	tmp, err := os.CreateTemp("", "rpwavgen-*.wav")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating scratch file: %v", ErrIO, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	err = ffmpeg.Input(inputPath).
		Output(tmpPath, ffmpeg.KwArgs{"acodec": "pcm_s16le"}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		os.Remove(tmpPath)
		return nil, nil, fmt.Errorf("%w: ffmpeg could not decode %s: %v", ErrUnsupportedCodec, inputPath, err)
	}

	if err := ctx.Err(); err != nil {
		os.Remove(tmpPath)
		return nil, nil, err
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return nil, nil, fmt.Errorf("%w: opening scratch file: %v", ErrIO, err)
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedCodec, inputPath, err)
	}

	cleanup := func() {
		src.Close()
		f.Close()
		os.Remove(tmpPath)
	}
	return src, cleanup, nil
}
