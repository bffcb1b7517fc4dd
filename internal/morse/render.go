package morse

import (
	"fmt"

	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
)

// Render mengubah jadwal menjadi PCM unsigned 8-bit.
// Off = nilai 0, On = tabel diulang dengan ekor diredam menuju midpoint.
func Render(events []Event, table []uint8) ([]uint8, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("empty wave table")
	}

	out := make([]uint8, 0, TotalSamples(events))
	for _, ev := range events {
		switch ev.Sound {
		case Off:
			out = append(out, make([]uint8, ev.Duration)...)
		case On:
			tone := audioengine.TileTable(table, ev.Duration)
			audioengine.ApplyRelease(tone, spec.MorseReleaseLength)
			out = append(out, tone...)
		}
	}
	return out, nil
}
