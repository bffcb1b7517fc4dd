package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"hdxwave/pkg/spec"
)

func TestParseWavetableDefaults(t *testing.T) {
	cfg, err := ParseWavetable("test", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frequency != spec.ToneMorse || cfg.SampleRate != spec.SampleRate || cfg.Ceiling != spec.SafetyCeiling {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !cfg.TrailingNewline || cfg.Name != "WAV" || cfg.Columns != 0 {
		t.Errorf("unexpected literal defaults %+v", cfg)
	}
}

func TestParseWavetableFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*Wavetable) bool
		wantErr bool
	}{
		{"legacy", []string{"-legacy"}, func(c *Wavetable) bool { return c.Frequency == spec.ToneLegacy }, false},
		{"freq", []string{"-freq", "440"}, func(c *Wavetable) bool { return c.Frequency == 440 }, false},
		{"no newline", []string{"-no-newline"}, func(c *Wavetable) bool { return !c.TrailingNewline }, false},
		{"columns", []string{"-columns", "15"}, func(c *Wavetable) bool { return c.Columns == 15 }, false},
		{"default gain", nil, func(c *Wavetable) bool { return c.Gain == 1.0 }, false},
		{"gain", []string{"-gain", "0.5"}, func(c *Wavetable) bool { return c.Gain == 0.5 }, false},
		{"negative gain", []string{"-gain", "-1"}, nil, true},
		{"legacy and freq", []string{"-legacy", "-freq", "600"}, nil, true},
		{"negative columns", []string{"-columns", "-1"}, nil, true},
		{"zero seconds with export", []string{"-wav", "x.wav", "-seconds", "0"}, nil, true},
		{"stray argument", []string{"extra"}, nil, true},
		{"unknown flag", []string{"-bogus"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseWavetable("test", tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestParseWavetableHelp(t *testing.T) {
	if _, err := ParseWavetable("test", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseMorse(t *testing.T) {
	cfg, err := ParseMorse("test", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WPM != 20 || cfg.Output != "output.wav" || cfg.Text != "KD9KJV" || cfg.Frequency != 600 {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	for _, args := range [][]string{
		{"-wpm", "0"},
		{"-output", ""},
		{"-text", ""},
	} {
		if _, err := ParseMorse("test", args, io.Discard); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
