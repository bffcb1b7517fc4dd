package main

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// playFile memutar WAV hasil render lewat speaker dan menunggu sampai selesai.
func playFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		streamer,
		beep.Callback(func() {
			close(done)
		}),
	))
	<-done

	if err := streamer.Err(); err != nil {
		return err
	}
	speaker.Clear()
	return nil
}
