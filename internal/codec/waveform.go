package codec

import (
	"strings"

	"hdxwave/pkg/audioengine"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// GenerateWaveformData memadatkan tabel menjadi maksimal targetPoints titik
// (puncak per blok), skala 0-255 tetap.
func GenerateWaveformData(table []uint8, targetPoints int) []uint8 {
	if targetPoints <= 0 || len(table) <= targetPoints {
		out := make([]uint8, len(table))
		copy(out, table)
		return out
	}

	step := (len(table) + targetPoints - 1) / targetPoints
	points := make([]uint8, 0, targetPoints)
	for i := 0; i < len(table); i += step {
		end := i + step
		if end > len(table) {
			end = len(table)
		}
		points = audioengine.CollectWaveformPoints(table[i:end], points)
	}
	return points
}

// RenderSparkline untuk preview di terminal (stderr)
func RenderSparkline(table []uint8, width int) string {
	points := GenerateWaveformData(table, width)
	var sb strings.Builder
	for _, p := range points {
		idx := int(p) * len(sparkLevels) / 256
		sb.WriteRune(sparkLevels[idx])
	}
	return sb.String()
}
