package container

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteReadWav(t *testing.T) {
	samples := make([]uint8, 4410)
	for i := range samples {
		samples[i] = uint8(i % 256)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := WriteWavFile(path, samples, 44100); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	info, err := ReadWav(f)
	if err != nil {
		t.Fatal(err)
	}
	if info.SampleRate != 44100 || info.BitDepth != 8 || info.Channels != 1 {
		t.Errorf("unexpected header %+v", info)
	}
	if d := info.Duration - 100*time.Millisecond; d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("duration %v", info.Duration)
	}
	if !bytes.Equal(info.Samples, samples) {
		t.Errorf("samples changed on round trip (got %d samples)", len(info.Samples))
	}
}

func TestReadWavInvalid(t *testing.T) {
	if _, err := ReadWav(bytes.NewReader([]byte("not a wav file at all"))); err == nil {
		t.Error("expected error for invalid input")
	}
}
