package audioengine

import (
	"fmt"

	"hdxwave/pkg/spec"

	"github.com/hraban/opus"
)

type EncoderResult struct {
	Frame []byte
	Error error
}

// PrepareOpusPCM: u8 -> s16, resample ke 48kHz, lalu gain (1.0 = apa adanya).
func PrepareOpusPCM(samples []uint8, sourceRate int, gain float64) []int16 {
	pcm := Resample(ToPCM16(samples), sourceRate, spec.OpusSampleRate)
	if gain != 1.0 {
		ApplyQuickGain(pcm, gain)
	}
	return pcm
}

// StreamEncodeToOpus meng-encode PCM unsigned 8-bit (sourceRate) menjadi frame Opus
// 48kHz mono 20ms. Frame dikirim ke resultChan satu per satu; pemanggil yang menutup channel.
func StreamEncodeToOpus(samples []uint8, sourceRate int, gain float64, resultChan chan<- EncoderResult) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("no samples to encode")
	}

	enc, err := opus.NewEncoder(spec.OpusSampleRate, spec.OpusChannels, opus.AppAudio)
	if err != nil {
		return 0, err
	}

	pcm := PrepareOpusPCM(samples, sourceRate, gain)

	frameSize := spec.OpusSampleRate * spec.OpusFrameMs / 1000 // 960 @ 48kHz
	pcmBuf := make([]int16, frameSize*spec.OpusChannels)
	opusBuf := make([]byte, spec.OpusMaxPacket)

	totalSamples := 0
	for i := 0; i < len(pcm); i += len(pcmBuf) {
		end := i + len(pcmBuf)
		if end > len(pcm) {
			// Frame terakhir dipad dengan silence
			for j := range pcmBuf {
				pcmBuf[j] = 0
			}
			end = len(pcm)
		}
		n := copy(pcmBuf, pcm[i:end])

		outputSize, err := enc.Encode(pcmBuf, opusBuf)
		if err != nil {
			resultChan <- EncoderResult{Error: err}
			return 0, err
		}

		frameCopy := make([]byte, outputSize)
		copy(frameCopy, opusBuf[:outputSize])
		resultChan <- EncoderResult{Frame: frameCopy}
		totalSamples += n
	}

	duration := float64(totalSamples) / float64(spec.OpusSampleRate) / float64(spec.OpusChannels)
	return duration, nil
}
