package codec

import (
	"fmt"
	"math/cmplx"

	"hdxwave/pkg/audioengine"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFrequency menjalankan FFT atas tabel yang diulang `periods` kali
// dan mengembalikan frekuensi bin terkuat (DC diabaikan).
// Panjang jendela kelipatan panjang tabel, jadi nada loop jatuh tepat di satu bin.
func DominantFrequency(table []uint8, sampleRate float64, periods int) (float64, error) {
	if len(table) == 0 {
		return 0, fmt.Errorf("empty table")
	}
	if periods <= 0 {
		periods = 1
	}

	return DominantFrequencyPCM(audioengine.TileTable(table, len(table)*periods), sampleRate)
}

// DominantFrequencyPCM sama seperti DominantFrequency untuk PCM unsigned 8-bit mentah.
func DominantFrequencyPCM(samples []uint8, sampleRate float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}

	window := make([]float64, len(samples))
	for i, s := range samples {
		window[i] = float64(s) - 128.0
	}
	coeffs := fft.FFTReal(window)

	peakBin := 0
	peakMag := 0.0
	for k := 1; k <= len(coeffs)/2; k++ {
		mag := cmplx.Abs(coeffs[k])
		if mag > peakMag {
			peakMag = mag
			peakBin = k
		}
	}
	if peakBin == 0 {
		return 0, fmt.Errorf("no spectral peak (silent input)")
	}

	return float64(peakBin) * sampleRate / float64(len(samples)), nil
}
