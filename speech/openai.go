package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sashabaranov/go-openai"
)

// OpenAI binds the OpenAI speech API as a synthesis provider for systems
// without a native synthesizer. It produces WAV files directly. The API has
// no output volume control, so AppliesGain is false and gain is applied
// during conversion.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed synthesizer. An empty model selects
// tts-1-hd.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = "tts-1-hd"
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAI) Name() string      { return "openai" }
func (p *OpenAI) FileExt() string   { return "wav" }
func (p *OpenAI) AppliesGain() bool { return false }

// Voices returns the fixed voice set the speech API accepts.
func (p *OpenAI) Voices(ctx context.Context) ([]Voice, error) {
	return []Voice{
		{Name: "alloy", Language: "en"},
		{Name: "echo", Language: "en"},
		{Name: "fable", Language: "en"},
		{Name: "onyx", Language: "en"},
		{Name: "nova", Language: "en"},
		{Name: "shimmer", Language: "en"},
	}, nil
}

func (p *OpenAI) Synthesize(ctx context.Context, req Request, outPath string) error {
	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(req.Voice),
		Speed:          speedForRate(req.Rate),
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: speech API did not answer in time", ErrTimeout)
		}
		return fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return fmt.Errorf("%w: reading audio data: %v", ErrSynthesis, err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrSynthesis, outPath, err)
	}

	return nil
}

// speedForRate maps a words-per-minute rate onto the API's relative speed,
// where 1.0 corresponds to the baseline rate. The API accepts 0.25-4.0.
func speedForRate(rate int) float64 {
	if rate <= 0 {
		return 1.0
	}
	speed := float64(rate) / baselineRateWPM
	if speed < 0.25 {
		return 0.25
	}
	if speed > 4.0 {
		return 4.0
	}
	return speed
}
