package audioengine

import "hdxwave/pkg/spec"

// TileTable mengulang tabel satu periode sampai n sampel.
func TileTable(table []uint8, n int) []uint8 {
	if len(table) == 0 || n <= 0 {
		return nil
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = table[i%len(table)]
	}
	return out
}

// ApplyRelease meredam `length` sampel terakhir secara linear menuju midpoint,
// supaya tidak ada klik di akhir nada.
func ApplyRelease(samples []uint8, length int) {
	n := len(samples)
	if length <= 0 || n == 0 {
		return
	}
	if length > n {
		length = n
	}
	start := n - length
	for i := start; i < n; i++ {
		scale := 1.0 - float64(i-start+1)/float64(length)
		v := scale*(float64(samples[i])-spec.Midpoint) + spec.Midpoint
		samples[i] = uint8(v)
	}
}

// ToPCM16 mengubah sampel unsigned 8-bit menjadi int16 bertanda (128 -> 0).
func ToPCM16(samples []uint8) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(int(s)-spec.Midpoint) << 8
	}
	return out
}

// ApplyQuickGain melakukan penguatan dengan clipping tanpa buffer tambahan
func ApplyQuickGain(samples []int16, factor float64) {
	for i := range samples {
		val := float64(samples[i]) * factor
		if val > 32767 {
			val = 32767
		} else if val < -32768 {
			val = -32768
		}
		samples[i] = int16(val)
	}
}

// Resample mengubah rate secara linear (mis. 44100 -> 48000 untuk Opus).
func Resample(in []int16, fromRate, toRate int) []int16 {
	if len(in) == 0 || fromRate <= 0 || toRate <= 0 {
		return nil
	}
	if fromRate == toRate {
		out := make([]int16, len(in))
		copy(out, in)
		return out
	}

	n := int(int64(len(in)) * int64(toRate) / int64(fromRate))
	out := make([]int16, n)
	ratio := float64(fromRate) / float64(toRate)
	for i := range out {
		pos := float64(i) * ratio
		i0 := int(pos)
		frac := pos - float64(i0)
		i1 := i0 + 1
		if i1 >= len(in) {
			i1 = len(in) - 1
		}
		out[i] = int16(float64(in[i0])*(1-frac) + float64(in[i1])*frac)
	}
	return out
}
