package config

import (
	"flag"
	"fmt"
	"io"

	"hdxwave/pkg/spec"
)

type Wavetable struct {
	Frequency       float64
	SampleRate      float64
	Ceiling         int
	Name            string
	TrailingNewline bool
	Columns         int
	Preview         bool
	PNGPath         string
	WavPath         string
	Seconds         float64
	OpusPath        string
	Gain            float64
	Verbose         bool
}

type Morse struct {
	WPM         int
	Output      string
	Text        string
	Frequency   float64
	Play        bool
	Interactive bool
	Verbose     bool
}

// ParseWavetable membaca flag hdx-wavetable. Tanpa argumen hasilnya tabel 600 Hz, variant newline.
func ParseWavetable(name string, args []string, output io.Writer) (*Wavetable, error) {
	cfg := &Wavetable{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Float64Var(&cfg.Frequency, "freq", spec.ToneMorse, "tone frequency in Hz")
	legacy := fs.Bool("legacy", false, "use the legacy 588 Hz tone (its period is 77 samples, so the literal declares [u8; 77])")
	fs.Float64Var(&cfg.SampleRate, "rate", spec.SampleRate, "sample rate in Hz")
	fs.IntVar(&cfg.Ceiling, "ceiling", spec.SafetyCeiling, "maximum number of samples to walk")
	fs.StringVar(&cfg.Name, "name", spec.ArrayName, "array identifier in the literal")
	noNewline := fs.Bool("no-newline", false, "omit the trailing newline after the literal")
	fs.IntVar(&cfg.Columns, "columns", 0, "wrap the literal every N values (0 = single line)")
	fs.BoolVar(&cfg.Preview, "preview", false, "print a sparkline of the period to stderr")
	fs.StringVar(&cfg.PNGPath, "png", "", "write a PNG plot of the period")
	fs.StringVar(&cfg.WavPath, "wav", "", "write the looped tone as 8-bit mono WAV")
	fs.Float64Var(&cfg.Seconds, "seconds", 1.0, "length of the -wav/-opus export")
	fs.StringVar(&cfg.OpusPath, "opus", "", "write the looped tone as length-prefixed Opus frames")
	fs.Float64Var(&cfg.Gain, "gain", 1.0, "gain applied to the -opus export (clipped)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *legacy {
		if isSet(fs, "freq") {
			return nil, fmt.Errorf("-legacy and -freq are mutually exclusive")
		}
		cfg.Frequency = spec.ToneLegacy
	}
	cfg.TrailingNewline = !*noNewline

	if cfg.Columns < 0 {
		return nil, fmt.Errorf("-columns must be >= 0, got %d", cfg.Columns)
	}
	if cfg.Gain < 0 {
		return nil, fmt.Errorf("-gain must be >= 0, got %v", cfg.Gain)
	}
	if (cfg.WavPath != "" || cfg.OpusPath != "") && cfg.Seconds <= 0 {
		return nil, fmt.Errorf("-seconds must be positive, got %v", cfg.Seconds)
	}
	return cfg, nil
}

// ParseMorse membaca flag hdx-morse (default sama dengan program call sign aslinya).
func ParseMorse(name string, args []string, output io.Writer) (*Morse, error) {
	cfg := &Morse{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.WPM, "wpm", spec.MorseWPM, "words per minute")
	fs.StringVar(&cfg.Output, "output", spec.MorseOutput, "output WAV path")
	fs.StringVar(&cfg.Text, "text", spec.MorseCallSign, "text to key")
	fs.Float64Var(&cfg.Frequency, "freq", spec.ToneMorse, "tone frequency in Hz")
	fs.BoolVar(&cfg.Play, "play", false, "play the result through the speaker")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "ask for the settings interactively")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (m *Morse) Validate() error {
	if m.WPM <= 0 {
		return fmt.Errorf("-wpm must be positive, got %d", m.WPM)
	}
	if m.Output == "" {
		return fmt.Errorf("-output is required")
	}
	if m.Text == "" {
		return fmt.Errorf("-text is required")
	}
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
