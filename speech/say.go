package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Say binds the macOS speech synthesizer through the say(1) command. It
// produces AIFF files and applies gain itself via an embedded volume
// command, since say has no volume flag.
type Say struct{}

func (Say) Name() string      { return "say" }
func (Say) FileExt() string   { return "aiff" }
func (Say) AppliesGain() bool { return true }

// Available reports whether the say command exists on this system.
func (Say) Available() bool {
	_, err := exec.LookPath("say")
	return err == nil
}

func (Say) Voices(ctx context.Context) ([]Voice, error) {
	out, err := exec.CommandContext(ctx, "say", "-v", "?").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: listing voices: %v", ErrSynthesis, err)
	}
	return parseVoices(out), nil
}

// parseVoices reads `say -v ?` output. Each line looks like
//
//	Samantha            en_US    # Hello, my name is Samantha.
//
// Voice names may contain spaces, so the name is everything before the
// language tag rather than the first field.
func parseVoices(out []byte) []Voice {
	var voices []Voice
	for _, line := range strings.SplitAfter(string(out), "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		lang := fields[len(fields)-1]
		name := strings.TrimRight(strings.TrimSuffix(line, lang), " \t")

		voices = append(voices, Voice{Name: name, Language: lang})
	}
	return voices
}

func (s Say) Synthesize(ctx context.Context, req Request, outPath string) error {
	text := req.Text
	if req.Gain > 0 {
		// Embedded speech command; volm takes 0.0-1.0
		text = fmt.Sprintf("[[volm %.2f]] %s", req.Gain, text)
	}

	args := []string{"-o", outPath}
	if req.Voice != "" {
		args = append(args, "-v", req.Voice)
	}
	if req.Rate > 0 {
		args = append(args, "-r", strconv.Itoa(req.Rate))
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, "say", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: say did not finish in time", ErrTimeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", ErrSynthesis, msg)
		}
		return fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	return nil
}
