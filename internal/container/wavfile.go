package container

import (
	"fmt"
	"io"
	"os"
	"time"

	"hdxwave/pkg/spec"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// WavInfo header WAV yang dibaca ulang
type WavInfo struct {
	SampleRate int
	BitDepth   int
	Channels   int
	Duration   time.Duration
	Samples    []uint8
}

// WriteWav menulis PCM unsigned 8-bit mono ke w.
func WriteWav(w io.WriteSeeker, samples []uint8, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, spec.BitDepth, spec.Channels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Data:           make([]int, len(samples)),
		Format:         &audio.Format{NumChannels: spec.Channels, SampleRate: sampleRate},
		SourceBitDepth: spec.BitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteWavFile membuat file baru di path.
func WriteWavFile(path string, samples []uint8, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWav(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadWav memvalidasi header dan membaca seluruh PCM 8-bit mono.
func ReadWav(r io.ReadSeeker) (*WavInfo, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file")
	}

	dur, err := dec.Duration()
	if err != nil {
		return nil, fmt.Errorf("read duration: %w", err)
	}

	info := &WavInfo{
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Channels:   int(dec.NumChans),
		Duration:   dur,
	}
	if info.BitDepth != spec.BitDepth || info.Channels != spec.Channels {
		return info, fmt.Errorf("unsupported format: %d-bit, %d channel(s)", info.BitDepth, info.Channels)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	dec = wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read pcm: %w", err)
	}

	info.Samples = make([]uint8, len(buf.Data))
	for i, v := range buf.Data {
		info.Samples[i] = uint8(v)
	}
	return info, nil
}
