package morse

import (
	"errors"
	"fmt"
	"unicode"

	"hdxwave/pkg/spec"
)

var ErrUnknownCharacter = errors.New("unknown morse character")

type Sound int

const (
	Off Sound = iota
	On
)

func (s Sound) String() string {
	if s == On {
		return "On"
	}
	return "Off"
}

// Event satu potong bunyi/senyap, Duration dalam sampel
type Event struct {
	Sound    Sound
	Duration int
}

var table = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..",
	'E': ".", 'F': "..-.", 'G': "--.", 'H': "....",
	'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.",
	'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..", '0': "-----", '1': ".----",
	'2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'?': "..--..", ',': "--..--", '.': ".-.-.-", '/': "_..-.",
}

// Lookup mengembalikan kode morse (tidak peka huruf besar/kecil).
func Lookup(c rune) (string, error) {
	code, ok := table[unicode.ToUpper(c)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacter, c)
	}
	return code, nil
}

// SamplesPerElement panjang satu dit dalam sampel; 20 wpm @ 44100 = 2646.
func SamplesPerElement(wpm int, sampleRate float64) (int, error) {
	if wpm <= 0 {
		return 0, fmt.Errorf("wpm must be positive, got %d", wpm)
	}
	elementsPerSecond := float64(wpm*spec.MorseElementsWord) / 60.0
	return int(sampleRate / elementsPerSecond), nil
}

// ScheduleCharacter: dit = On(unit), dah = On(3·unit), masing-masing diikuti Off(unit).
// Off terakhir diganti Off(3·unit) sebagai jeda antar huruf.
func ScheduleCharacter(unit int, code string) []Event {
	var out []Event
	for _, c := range code {
		switch c {
		case '.':
			out = append(out, Event{On, unit})
		case '-', '_':
			out = append(out, Event{On, 3 * unit})
		default:
			continue
		}
		out = append(out, Event{Off, unit})
	}
	if len(out) > 0 {
		out[len(out)-1] = Event{Off, 3 * unit}
	}
	return out
}

// ScheduleWord menyusun jadwal satu kata; Off terakhir menjadi Off(7·unit).
func ScheduleWord(unit int, word string) ([]Event, error) {
	var out []Event
	for _, c := range word {
		code, err := Lookup(c)
		if err != nil {
			return nil, err
		}
		out = append(out, ScheduleCharacter(unit, code)...)
	}
	if len(out) > 0 {
		out[len(out)-1] = Event{Off, 7 * unit}
	}
	return out, nil
}

// TotalSamples jumlah sampel seluruh jadwal
func TotalSamples(events []Event) int {
	n := 0
	for _, ev := range events {
		n += ev.Duration
	}
	return n
}
