package main

import (
	"os"
	"path/filepath"
	"testing"

	"hdxwave/internal/config"
	"hdxwave/internal/container"
	"hdxwave/internal/morse"

	"go.uber.org/zap/zaptest"
)

func TestRenderCallSign(t *testing.T) {
	cfg := &config.Morse{WPM: 20, Output: "unused.wav", Text: "KD9KJV", Frequency: 600}
	pcm, err := renderCallSign(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	events, _ := morse.ScheduleWord(2646, "KD9KJV")
	if len(pcm) != morse.TotalSamples(events) {
		t.Errorf("got %d samples, want %d", len(pcm), morse.TotalSamples(events))
	}
	if pcm[0] != 128 {
		t.Errorf("first keyed sample should be the midpoint, got %d", pcm[0])
	}
}

func TestRenderCallSignErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	bad := []*config.Morse{
		{WPM: 20, Text: "K#", Frequency: 600},
		{WPM: 20, Text: "K", Frequency: 0},
		{WPM: 0, Text: "K", Frequency: 600},
	}
	for _, cfg := range bad {
		if _, err := renderCallSign(cfg, logger); err == nil {
			t.Errorf("%+v: expected error", cfg)
		}
	}
}

func TestRunWritesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e.wav")
	if code := run([]string{"-text", "E", "-wpm", "40", "-output", path}); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	info, err := container.ReadWav(f)
	if err != nil {
		t.Fatal(err)
	}

	unit, _ := morse.SamplesPerElement(40, 44100)
	if len(info.Samples) != 8*unit {
		t.Errorf("expected %d samples, got %d", 8*unit, len(info.Samples))
	}
}
