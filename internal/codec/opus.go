package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
)

// 120ms @ 48kHz, frame Opus terpanjang
const maxFrameSamples = 5760

// OpusSummary hasil export Opus
type OpusSummary struct {
	Frames   int
	Bytes    uint64
	Duration float64
}

// WriteOpusStream meng-encode PCM 8-bit ke Opus dan menulis tiap frame sebagai
// [uint16 BE panjang][frame], format yang sama dengan blok audio HDX.
func WriteOpusStream(w io.Writer, samples []uint8, sourceRate int, gain float64) (OpusSummary, error) {
	var sum OpusSummary
	resChan := make(chan audioengine.EncoderResult, 100)

	var writeErr error
	var writeWg sync.WaitGroup
	writeWg.Add(1)
	go func() {
		defer writeWg.Done()
		for res := range resChan {
			if res.Error != nil || writeErr != nil {
				continue
			}
			if err := binary.Write(w, binary.BigEndian, uint16(len(res.Frame))); err != nil {
				writeErr = err
				continue
			}
			if _, err := w.Write(res.Frame); err != nil {
				writeErr = err
				continue
			}
			sum.Frames++
			sum.Bytes += uint64(2 + len(res.Frame))
		}
	}()

	dur, err := audioengine.StreamEncodeToOpus(samples, sourceRate, gain, resChan)
	close(resChan)
	writeWg.Wait()

	if err != nil {
		return sum, fmt.Errorf("opus encode: %w", err)
	}
	if writeErr != nil {
		return sum, fmt.Errorf("opus write: %w", writeErr)
	}
	sum.Duration = dur
	return sum, nil
}

// ReadOpusFrames membaca kembali frame yang ditulis WriteOpusStream.
func ReadOpusFrames(r io.Reader) ([][]byte, error) {
	var frames [][]byte
	for {
		var size uint16
		if err := binary.Read(r, binary.BigEndian, &size); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return nil, err
		}
		frame := make([]byte, size)
		if _, err := io.ReadFull(r, frame); err != nil {
			return nil, fmt.Errorf("truncated frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}
}

// InspectOpusStream membaca stream hasil WriteOpusStream dan men-decode tiap frame
// untuk menghitung durasi sebenarnya.
func InspectOpusStream(r io.Reader) (OpusSummary, error) {
	var sum OpusSummary
	frames, err := ReadOpusFrames(r)
	if err != nil {
		return sum, err
	}
	if len(frames) == 0 {
		return sum, fmt.Errorf("no opus frames")
	}

	dec, err := audioengine.NewStreamDecoder()
	if err != nil {
		return sum, err
	}
	pcm := make([]int16, maxFrameSamples*spec.OpusChannels)
	decoded := 0
	for i, f := range frames {
		n, err := dec.DecodeFrame(f, pcm)
		if err != nil {
			return sum, fmt.Errorf("decode frame %d: %w", i, err)
		}
		decoded += n
		sum.Frames++
		sum.Bytes += uint64(2 + len(f))
	}
	sum.Duration = float64(decoded) / float64(spec.OpusSampleRate)
	return sum, nil
}
