package audioengine

import (
	"errors"
	"fmt"
	"math"

	"hdxwave/pkg/spec"
)

var (
	// ErrPeriodNotDetected dikembalikan jika batas aman habis sebelum satu periode penuh terlihat.
	ErrPeriodNotDetected = errors.New("period not detected within bound")
	// ErrInvalidTone untuk frekuensi yang tidak bisa menghasilkan tabel valid.
	ErrInvalidTone = errors.New("invalid tone frequency")
)

// CrossingState adalah state mesin penghenti periode.
type CrossingState int

const (
	BeforeHalfCrossing CrossingState = iota
	AfterHalfCrossing
)

func (s CrossingState) String() string {
	switch s {
	case BeforeHalfCrossing:
		return "BEFORE_HALF_CROSSING"
	case AfterHalfCrossing:
		return "AFTER_HALF_CROSSING"
	}
	return fmt.Sprintf("CrossingState(%d)", int(s))
}

type Generator struct {
	Frequency  float64
	SampleRate float64
	Ceiling    int
}

type Option func(*Generator)

func WithSampleRate(rate float64) Option {
	return func(g *Generator) { g.SampleRate = rate }
}

func WithCeiling(n int) Option {
	return func(g *Generator) { g.Ceiling = n }
}

func NewGenerator(freq float64, opts ...Option) (*Generator, error) {
	g := &Generator{
		Frequency:  freq,
		SampleRate: spec.SampleRate,
		Ceiling:    spec.SafetyCeiling,
	}
	for _, opt := range opts {
		opt(g)
	}

	if math.IsNaN(g.SampleRate) || math.IsInf(g.SampleRate, 0) || g.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidTone, g.SampleRate)
	}
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 || freq >= g.SampleRate/2 {
		return nil, fmt.Errorf("%w: %v Hz (must be in (0, %v))", ErrInvalidTone, freq, g.SampleRate/2)
	}
	if g.Ceiling <= 0 {
		return nil, fmt.Errorf("%w: ceiling %d", ErrInvalidTone, g.Ceiling)
	}
	return g, nil
}

// Quantize menghitung sampel 8-bit pada indeks x: floor((sin(2π·f·x/rate)+1)·128).
// Nilai teoretis 256 (sin tepat 1.0) dipotong ke 255.
func Quantize(freq, sampleRate float64, x int) uint8 {
	phase := ((freq * float64(x)) / sampleRate) * 2.0 * math.Pi
	v := math.Floor((math.Sin(phase) + 1.0) * 128.0)
	if v > 255 {
		v = 255
	} else if v < 0 {
		v = 0
	}
	return uint8(v)
}

// Walk menelusuri indeks sampel dari 0 dan memanggil fn untuk setiap sampel
// yang masuk tabel. Berhenti pada sampel pertama > midpoint setelah ada sampel
// < midpoint; sampel itu ikut dipanggil sebagai entri terakhir.
func (g *Generator) Walk(fn func(x int, sample uint8, state CrossingState) error) (int, error) {
	state := BeforeHalfCrossing

	for x := 0; x < g.Ceiling; x++ {
		sample := Quantize(g.Frequency, g.SampleRate, x)

		if sample < spec.Midpoint {
			state = AfterHalfCrossing
		}
		if fn != nil {
			if err := fn(x, sample, state); err != nil {
				return x, err
			}
		}
		if sample > spec.Midpoint && state == AfterHalfCrossing {
			return x + 1, nil
		}
	}

	return g.Ceiling, fmt.Errorf("%w: %.1f Hz @ %.0f Hz after %d samples",
		ErrPeriodNotDetected, g.Frequency, g.SampleRate, g.Ceiling)
}

// Table mengumpulkan satu periode penuh.
func (g *Generator) Table() ([]uint8, error) {
	// Perkiraan panjang periode untuk pre-alokasi
	hint := int(g.SampleRate/g.Frequency) + 2
	if hint > g.Ceiling {
		hint = g.Ceiling
	}
	table := make([]uint8, 0, hint)

	_, err := g.Walk(func(_ int, sample uint8, _ CrossingState) error {
		table = append(table, sample)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
