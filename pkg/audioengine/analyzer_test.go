package audioengine

import "testing"

func TestAnalyzeTable600(t *testing.T) {
	st := AnalyzeTable(table600)
	if st.Length != 75 {
		t.Errorf("length %d", st.Length)
	}
	if st.Min != 0 || st.Max != 255 {
		t.Errorf("range %d..%d", st.Min, st.Max)
	}
	if st.Crossings != 2 {
		t.Errorf("expected 2 midpoint crossings, got %d", st.Crossings)
	}
	if st.BelowMid+st.AboveMid != st.Length-1 {
		t.Errorf("only the first sample sits on the midpoint: below=%d above=%d", st.BelowMid, st.AboveMid)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if st := AnalyzeTable(nil); st != (TableStats{}) {
		t.Errorf("got %+v", st)
	}
}

func TestCollectWaveformPoints(t *testing.T) {
	var points []uint8
	points = CollectWaveformPoints([]uint8{128, 140, 135}, points)
	points = CollectWaveformPoints([]uint8{120, 10, 200}, points)
	points = CollectWaveformPoints(nil, points)

	if len(points) != 2 || points[0] != 140 || points[1] != 10 {
		t.Errorf("got %v", points)
	}
}
