package morse

import (
	"testing"

	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
)

func TestRender(t *testing.T) {
	gen, _ := audioengine.NewGenerator(spec.ToneMorse)
	table, err := gen.Table()
	if err != nil {
		t.Fatal(err)
	}

	unit := 1000
	events := []Event{{On, unit}, {Off, unit}}
	pcm, err := Render(events, table)
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != 2*unit {
		t.Fatalf("expected %d samples, got %d", 2*unit, len(pcm))
	}

	release := spec.MorseReleaseLength
	for i := 0; i < unit-release; i++ {
		if pcm[i] != table[i%len(table)] {
			t.Fatalf("sample %d: got %d, want %d", i, pcm[i], table[i%len(table)])
		}
	}
	if pcm[unit-1] != spec.Midpoint {
		t.Errorf("tone should end on the midpoint, got %d", pcm[unit-1])
	}
	for i := unit; i < 2*unit; i++ {
		if pcm[i] != 0 {
			t.Fatalf("silence sample %d = %d", i, pcm[i])
		}
	}
}

func TestRenderCallSignLength(t *testing.T) {
	gen, _ := audioengine.NewGenerator(spec.ToneMorse)
	table, _ := gen.Table()

	unit, _ := SamplesPerElement(spec.MorseWPM, spec.SampleRate)
	events, err := ScheduleWord(unit, spec.MorseCallSign)
	if err != nil {
		t.Fatal(err)
	}
	pcm, err := Render(events, table)
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != TotalSamples(events) {
		t.Errorf("rendered %d samples, schedule has %d", len(pcm), TotalSamples(events))
	}
}

func TestRenderEmptyTable(t *testing.T) {
	if _, err := Render([]Event{{On, 10}}, nil); err == nil {
		t.Error("expected error for empty table")
	}
}
