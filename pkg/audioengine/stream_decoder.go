package audioengine

import (
	"hdxwave/pkg/spec"

	"github.com/hraban/opus"
)

type StreamDecoder struct {
	dec *opus.Decoder
}

func NewStreamDecoder() (*StreamDecoder, error) {
	d, err := opus.NewDecoder(spec.OpusSampleRate, spec.OpusChannels)
	if err != nil {
		return nil, err
	}
	return &StreamDecoder{dec: d}, nil
}

// DecodeFrame mengembalikan jumlah sampel per channel yang terisi di outPcm.
func (sd *StreamDecoder) DecodeFrame(frame []byte, outPcm []int16) (int, error) {
	return sd.dec.Decode(frame, outPcm)
}
