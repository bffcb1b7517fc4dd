package audioengine

import "hdxwave/pkg/spec"

// TableStats ringkasan tabel untuk log dan hdx-meta
type TableStats struct {
	Length    int
	Min       uint8
	Max       uint8
	BelowMid  int
	AboveMid  int
	Crossings int // jumlah perpindahan sisi midpoint
}

func AnalyzeTable(table []uint8) TableStats {
	st := TableStats{Length: len(table)}
	if len(table) == 0 {
		return st
	}
	st.Min, st.Max = table[0], table[0]

	side := 0
	for _, v := range table {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}

		cur := 0
		if v < spec.Midpoint {
			st.BelowMid++
			cur = -1
		} else if v > spec.Midpoint {
			st.AboveMid++
			cur = 1
		}
		if cur != 0 {
			if side != 0 && cur != side {
				st.Crossings++
			}
			side = cur
		}
	}
	return st
}

// CollectWaveformPoints mengambil puncak (jarak terjauh dari midpoint) tiap blok untuk UI
func CollectWaveformPoints(chunk []uint8, points []uint8) []uint8 {
	if len(chunk) == 0 {
		return points
	}
	peak := chunk[0]
	for _, v := range chunk {
		if distance(v) > distance(peak) {
			peak = v
		}
	}
	return append(points, peak)
}

func distance(v uint8) int {
	d := int(v) - spec.Midpoint
	if d < 0 {
		return -d
	}
	return d
}
