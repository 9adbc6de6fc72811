package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	cueLow    = 660.0
	cueHigh   = 880.0
	cueNote   = 40 * time.Millisecond
	cueFade   = 5 * time.Millisecond
	cueVolume = -2.0 // log2 gain, a quarter of full scale
	cueNotes  = 2
)

// NewToggleCue builds two short sine notes, from then to, each with a linear fade in and out
func NewToggleCue(sr beep.SampleRate, from, to float64) (beep.Streamer, error) {
	first, err := note(sr, from)
	if err != nil {
		return nil, err
	}
	second, err := note(sr, to)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Seq(first, second),
		Base:     2,
		Volume:   cueVolume,
	}, nil
}

// CueLength is the number of samples a toggle cue produces at sr
func CueLength(sr beep.SampleRate) int {
	return cueNotes * sr.N(cueNote)
}

func note(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(cueNote)
	return &envelope{
		streamer: beep.Take(n, sine),
		total:    n,
		fade:     sr.N(cueFade),
	}, nil
}

// envelope applies a linear fade at both ends to avoid clicks
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	fade     int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.fade > 0 {
			if e.pos < e.fade {
				gain = float64(e.pos) / float64(e.fade)
			} else if rem := e.total - e.pos; rem < e.fade {
				gain = float64(rem) / float64(e.fade)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
