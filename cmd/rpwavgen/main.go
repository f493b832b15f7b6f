// Command rpwavgen generates, converts and validates repeater announcement
// files. The produced file is always {output-dir}/Speech.wav in the format
// ICOM ID-RP series repeaters require: at most 10 seconds of 16 kHz,
// 16-bit, mono PCM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/kd9vox/rpwavgen/convert"
	"github.com/kd9vox/rpwavgen/internal/config"
	"github.com/kd9vox/rpwavgen/internal/logger"
	"github.com/kd9vox/rpwavgen/pipeline"
	"github.com/kd9vox/rpwavgen/profile"
	"github.com/kd9vox/rpwavgen/speech"
	"github.com/kd9vox/rpwavgen/validate"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	text := flag.String("text", "", "Text to synthesize into the announcement file")
	input := flag.String("input", "", "Input audio file to convert or validate")
	doConvert := flag.Bool("convert", false, "Convert the input file to the repeater format")
	doValidate := flag.Bool("validate", false, "Validate the input file against the repeater format")
	output := flag.String("output", "", "Output directory for Speech.wav")
	gain := flag.Float64("gain", 0, "Speech gain (0.01-1.0)")
	rate := flag.Int("rate", 0, "Speech rate in words per minute (1-299)")
	narrator := flag.String("narrator", "", "Synthesis voice")
	listVoices := flag.Bool("list-voices", false, "List available synthesis voices and exit")
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	configPath := flag.String("config", "", "Path to the configuration file")
	flag.Parse()

	logger.SetLevel(*logLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Error loading config", err)
		return exitFail
	}
	applyDefaults(&cfg, *output, *gain, *rate, *narrator)

	// Mutually exclusive option groups, matching the flag pairs
	if *text != "" && *input != "" {
		fmt.Fprintln(os.Stderr, "error: --text and --input are mutually exclusive")
		return exitUsage
	}
	if *doConvert && *doValidate {
		fmt.Fprintln(os.Stderr, "error: --convert and --validate are mutually exclusive")
		return exitUsage
	}

	if err := config.CheckGain(cfg.Gain); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUsage
	}
	if err := config.CheckRate(cfg.Rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUsage
	}

	synth, err := buildSynthesizer(cfg)
	if err != nil {
		logger.Error("Error selecting synthesis provider", err)
		return exitFail
	}

	conv := convert.New()
	conv.FFmpegFallback = true

	p := pipeline.New(synth, conv, profile.Default())
	p.SynthTimeout = cfg.SynthesisTimeout()

	ctx := context.Background()

	switch {
	case *listVoices:
		return printVoices(ctx, synth)

	case *text != "":
		req := speech.Request{
			Text:  *text,
			Voice: cfg.Narrator,
			Rate:  cfg.Rate,
			Gain:  cfg.Gain,
		}
		logger.Infof("Generating %s with voice %q", pipeline.OutputFileName, cfg.Narrator)
		res, err := p.Generate(ctx, req, cfg.OutputDir)
		return report(res, err, true)

	case *input != "" && *doValidate:
		res, err := p.ValidateFile(*input)
		return report(res, err, true)

	case *input != "" && *doConvert:
		logger.Infof("Converting %s to %s", *input, filepath.Join(cfg.OutputDir, pipeline.OutputFileName))
		res, err := p.ConvertFile(ctx, *input, cfg.OutputDir)
		return report(res, err, false)

	default:
		flag.Usage()
		return exitUsage
	}
}

// applyDefaults lets command-line values override the configuration file.
func applyDefaults(cfg *config.Config, output string, gain float64, rate int, narrator string) {
	if output != "" {
		cfg.OutputDir = output
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if gain != 0 {
		cfg.Gain = gain
	}
	if rate != 0 {
		cfg.Rate = rate
	}
	if narrator != "" {
		cfg.Narrator = narrator
	}
}

func buildSynthesizer(cfg config.Config) (speech.Synthesizer, error) {
	switch cfg.Provider {
	case "", "say":
		return speech.Say{}, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, errors.New("provider openai requires openai_api_key in the config file")
		}
		return speech.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown synthesis provider %q", cfg.Provider)
	}
}

func printVoices(ctx context.Context, synth speech.Synthesizer) int {
	voices, err := synth.Voices(ctx)
	if err != nil {
		logger.Error("Error listing voices", err)
		return exitFail
	}
	for _, v := range voices {
		fmt.Printf("%-40s %s\n", v.Name, v.Language)
	}
	return exitOK
}

// report prints the workflow outcome and maps it to a process exit code.
// Validation failures are reported, not crashed on; they still exit
// non-zero so scripts can rely on the code.
func report(res pipeline.Result, err error, validated bool) int {
	if res.CleanupErr != nil {
		logger.Error("Cleanup failed", res.CleanupErr)
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "FAIL %s\n", res.OutputPath)
		logger.Error("Workflow failed", err)
		return exitFail
	}

	if validated && !res.Validation.OK {
		color.New(color.FgRed).Fprintf(os.Stderr, "FAIL %s: %s\n", res.OutputPath, res.Validation)
		fmt.Fprintf(os.Stderr, "  field:    %s\n  expected: %s\n  actual:   %s\n",
			res.Validation.Field, res.Validation.Expected, res.Validation.Actual)
		return exitFail
	}

	if validated {
		color.New(color.FgGreen).Printf("PASS %s\n", res.OutputPath)
		printAsset(res.Asset)
	} else {
		fmt.Printf("Wrote %s\n", res.OutputPath)
	}
	return exitOK
}

func printAsset(a validate.Asset) {
	if a.Path == "" {
		return
	}
	fmt.Printf("  duration:    %.2fs\n", a.DurationSeconds)
	fmt.Printf("  sample rate: %d Hz\n", a.SampleRateHz)
	fmt.Printf("  bit depth:   %d\n", a.BitDepthBits)
	fmt.Printf("  channels:    %d\n", a.ChannelCount)
	fmt.Printf("  encoding:    %s\n", a.Encoding)
}
