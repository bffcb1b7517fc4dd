package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hdxwave/internal/codec"
	"hdxwave/internal/container"
	"hdxwave/pkg/audioengine"
)

func TestPrintInfo(t *testing.T) {
	gen, _ := audioengine.NewGenerator(600)
	table, _ := gen.Table()

	info := &container.WavInfo{
		SampleRate: 44100,
		BitDepth:   8,
		Channels:   1,
		Duration:   time.Second,
		Samples:    audioengine.TileTable(table, 75*64),
	}

	var out bytes.Buffer
	printInfo(&out, info, 44144, true)
	s := out.String()

	for _, want := range []string{
		"SAMPLE RATE   : 44100 Hz",
		"FORMAT        : PCM 8-bit, 1 channel(s)",
		"DURATION      : 00:01.000",
		"RANGE         : 0 .. 255",
		"DOMINANT TONE : 588.0 Hz",
		"FINGERPRINT   : WAVT-V1-",
		"FILE SIZE     : 43.11 Kb",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := map[int64]string{
		512:             "512 B",
		2048:            "2.00 Kb",
		3 * 1024 * 1024: "3.00 Mb",
	}
	for in, want := range tests {
		if got := formatSize(in); got != want {
			t.Errorf("formatSize(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestInspectOpus(t *testing.T) {
	gen, _ := audioengine.NewGenerator(600)
	table, _ := gen.Table()

	var buf bytes.Buffer
	if _, err := codec.WriteOpusStream(&buf, audioengine.TileTable(table, 44100), 44100, 1.0); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tone.opus")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := inspectOpus(&out, path); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{
		"FORMAT        : Opus 48000 Hz, 1 channel(s), 20 ms frames",
		"FRAMES        : 50",
		"DURATION      : 00:01.000",
		"BITRATE       :",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestInspectOpusMissingFile(t *testing.T) {
	if err := inspectOpus(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.opus")); err == nil {
		t.Error("expected error for missing file")
	}
}
