// Package widget provides the bounded slider controls of the viewer
package widget

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mandel-orbit/render"
)

// Orientation selects the slider axis
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

const (
	runeTrackH = '─'
	runeTrackV = '│'
	runeHandle = '█'
)

// Slider is a scalar control clamped to [Min, Max]
// Horizontal sliders grow left to right, vertical ones bottom to top
type Slider struct {
	Label    string
	Min, Max float64

	orient   Orientation
	value    float64
	initial  float64
	observer []func(float64)

	// Track geometry in cells, assigned by Layout
	x, y, length int
}

// NewSlider creates a slider; init is clamped into range
func NewSlider(label string, min, max, init float64, orient Orientation) *Slider {
	s := &Slider{
		Label:  label,
		Min:    min,
		Max:    max,
		orient: orient,
	}
	s.initial = s.clamp(init)
	s.value = s.initial
	return s
}

func (s *Slider) Value() float64 {
	return s.value
}

// SetValue clamps v and notifies every observer, even if the value is unchanged
func (s *Slider) SetValue(v float64) {
	s.Set(s.clamp(v))
}

// Set assigns v without clamping and notifies every observer
// The handle stays pinned to the nearest track end while v is out of range.
func (s *Slider) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.value = v
	for _, fn := range s.observer {
		fn(s.value)
	}
}

// OnChanged registers fn to run after every SetValue
func (s *Slider) OnChanged(fn func(float64)) {
	s.observer = append(s.observer, fn)
}

// Reset restores the initial value
func (s *Slider) Reset() {
	s.SetValue(s.initial)
}

func (s *Slider) clamp(v float64) float64 {
	return min(max(v, s.Min), s.Max)
}

// Layout places the track; (x, y) is its left end for horizontal sliders
// and its top end for vertical ones
func (s *Slider) Layout(x, y, length int) {
	s.x, s.y, s.length = x, y, max(length, 0)
}

// Contains reports whether the cell is on the track
func (s *Slider) Contains(x, y int) bool {
	if s.length == 0 {
		return false
	}
	if s.orient == Horizontal {
		return y == s.y && x >= s.x && x < s.x+s.length
	}
	return x == s.x && y >= s.y && y < s.y+s.length
}

// ValueAt maps a cell to a slider value; cells past the ends clamp
func (s *Slider) ValueAt(x, y int) float64 {
	if s.length <= 1 {
		return s.value
	}
	var pos int
	if s.orient == Horizontal {
		pos = x - s.x
	} else {
		pos = s.length - 1 - (y - s.y)
	}
	pos = min(max(pos, 0), s.length-1)
	return s.Min + float64(pos)/float64(s.length-1)*(s.Max-s.Min)
}

// handleOffset is the handle position along the track
func (s *Slider) handleOffset() int {
	if s.length <= 1 {
		return 0
	}
	frac := min(max((s.value-s.Min)/(s.Max-s.Min), 0), 1)
	return int(math.Round(frac * float64(s.length-1)))
}

// HandleCell returns the screen cell of the handle
func (s *Slider) HandleCell() (x, y int) {
	off := s.handleOffset()
	if s.orient == Horizontal {
		return s.x + off, s.y
	}
	return s.x, s.y + s.length - 1 - off
}

// Draw renders track, handle, label and value
// Horizontal: label left of the track, value right of it
// Vertical: label above the track, value below it
func (s *Slider) Draw(screen tcell.Screen, theme render.Theme) {
	if s.length == 0 {
		return
	}
	valueText := fmt.Sprintf("%.3f", s.value)

	if s.orient == Horizontal {
		for i := 0; i < s.length; i++ {
			screen.SetContent(s.x+i, s.y, runeTrackH, nil, theme.Track)
		}
		render.Text(screen, s.x-render.TextWidth(s.Label)-1, s.y, s.Label, theme.Label)
		render.Text(screen, s.x+s.length+1, s.y, valueText, theme.Label)
	} else {
		for i := 0; i < s.length; i++ {
			screen.SetContent(s.x, s.y+i, runeTrackV, nil, theme.Track)
		}
		render.Text(screen, s.x-render.TextWidth(s.Label)/2, s.y-1, s.Label, theme.Label)
		render.Text(screen, s.x-render.TextWidth(valueText)/2, s.y+s.length, valueText, theme.Label)
	}

	hx, hy := s.HandleCell()
	screen.SetContent(hx, hy, runeHandle, nil, theme.Handle)
}
