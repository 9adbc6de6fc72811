// Package audio plays the short cue that marks a mode toggle
// Audio is optional: every call is a no-op until Initialize succeeds
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages the speaker and the toggle cue
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	sm.initialized = true
	return nil
}

// Cleanup stops pending sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayToggle plays a rising blip when entering mouse mode and a falling one otherwise
func (sm *SoundManager) PlayToggle(toMouse bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	from, to := cueLow, cueHigh
	if !toMouse {
		from, to = cueHigh, cueLow
	}

	if cue := toggleCue(from, to); cue != nil {
		speaker.Play(cue)
	}
}

// toggleCue builds a cue at the speaker rate; failures are logged and yield nil
func toggleCue(from, to float64) beep.Streamer {
	cue, err := NewToggleCue(sampleRate, from, to)
	if err != nil {
		log.Printf("toggle cue %g->%g Hz: %v", from, to, err)
		return nil
	}
	return cue
}
