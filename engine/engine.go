// Package engine runs the single-threaded event loop of the viewer
//
// One goroutine forwards tcell events into a channel; every handler and
// every draw runs on the loop goroutine. Redraw requests are coalesced:
// the view is only painted on the next frame tick when it is dirty.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mandel-orbit/audio"
	"github.com/lixenwraith/mandel-orbit/input"
	"github.com/lixenwraith/mandel-orbit/view"
)

// FrameUpdateInterval is the idle tick at which pending redraws are painted
const FrameUpdateInterval = 16 * time.Millisecond

// Engine binds a screen to a view
type Engine struct {
	screen  tcell.Screen
	view    *view.View
	tracker input.Tracker
	sound   *audio.SoundManager
}

// New creates an engine; sound may be nil
func New(screen tcell.Screen, v *view.View, sound *audio.SoundManager) *Engine {
	e := &Engine{
		screen: screen,
		view:   v,
		sound:  sound,
	}
	v.SetOnToggle(e.onToggle)
	return e
}

func (e *Engine) onToggle(m view.Mode) {
	log.Printf("mode toggled to %s, mouse at %v, C = %v", m, e.view.State().Mouse, e.view.C())
	if e.sound != nil {
		e.sound.PlayToggle(m == view.ModeMouse)
	}
}

// Layout sizes the view to the current screen
func (e *Engine) Layout() {
	w, h := e.screen.Size()
	e.view.Layout(w, h)
}

// HandleEvent applies one event; false means quit
func (e *Engine) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			break
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'r', 'R':
			e.view.ResetSliders()
		}

	case *tcell.EventMouse:
		e.view.HandleMouse(e.tracker.Translate(ev))

	case *tcell.EventResize:
		w, h := ev.Size()
		log.Printf("resize %dx%d", w, h)
		e.view.Layout(w, h)
		e.tracker.Reset()
		e.screen.Sync()
	}
	return true
}

// Frame paints the view if a redraw is pending
func (e *Engine) Frame() {
	if !e.view.Dirty() {
		return
	}
	e.view.Draw(e.screen)
	e.screen.Show()
}

// Run enables mouse reporting and loops until quit, screen closure or ctx cancellation
func (e *Engine) Run(ctx context.Context) error {
	e.screen.EnableMouse(tcell.MouseMotionEvents)
	defer e.screen.DisableMouse()
	e.screen.HideCursor()

	e.Layout()
	e.Frame()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer close(eventChan)
		for {
			ev := e.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !e.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			e.Frame()
		}
	}
}
