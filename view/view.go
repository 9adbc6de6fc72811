// Package view owns the interactive orbit plot: sliders, mode and redraw state
//
// All methods run on the event loop goroutine; nothing here is safe for
// concurrent use.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mandel-orbit/config"
	"github.com/lixenwraith/mandel-orbit/input"
	"github.com/lixenwraith/mandel-orbit/orbit"
	"github.com/lixenwraith/mandel-orbit/render"
	"github.com/lixenwraith/mandel-orbit/widget"
)

// Layout margins in cells
const (
	plotLeft     = 8 // vertical slider column plus its label
	plotTop      = 2 // status row plus vertical slider label
	plotRightPad = 9 // room for the horizontal slider value
	plotBottom   = 5 // vertical slider value, horizontal slider, hint
	sliderColumn = 3 // x of the vertical slider track
	minPlotCells = 3
)

const hintText = "right-click: toggle mouse/slider   drag sliders in slider mode   r: reset sliders   q: quit"

// View is the interactive orbit display
type View struct {
	seed  complex128
	steps int
	theme render.Theme

	state State
	c     complex128

	axes *render.Axes
	line render.Line
	re   *widget.Slider
	im   *widget.Slider

	// Slider held by the left button, nil when not dragging
	drag *widget.Slider
	// Set while a mode toggle writes the mouse position into the sliders
	syncing bool

	width, height int
	dirty         bool
	onToggle      func(Mode)
}

// New builds a view in mouse-driven mode showing the orbit of the configured initial C
func New(cfg config.Config) *View {
	v := &View{
		seed:  cfg.Seed(),
		steps: orbit.DefaultSteps,
		theme: render.DefaultTheme(),
		state: State{Mode: ModeMouse},
		axes:  render.NewAxes(cfg.Plot.Bound),
		re:    widget.NewSlider("Re", cfg.Slider.Min, cfg.Slider.Max, cfg.Slider.Init, widget.Horizontal),
		im:    widget.NewSlider("Im", cfg.Slider.Min, cfg.Slider.Max, cfg.Slider.Init, widget.Vertical),
	}

	v.re.OnChanged(func(float64) { v.sliderChanged() })
	v.im.OnChanged(func(float64) { v.sliderChanged() })

	v.recompute(cfg.InitialC())
	return v
}

// SetOnToggle registers a hook run after every mode transition
func (v *View) SetOnToggle(fn func(Mode)) {
	v.onToggle = fn
}

func (v *View) State() State {
	return v.state
}

// C returns the parameter of the orbit currently drawn
func (v *View) C() complex128 {
	return v.c
}

// Path returns the coordinates of the drawn orbit
func (v *View) Path() (xs, ys []float64) {
	return v.line.Data()
}

// Sliders returns the real and imaginary sliders
func (v *View) Sliders() (re, im *widget.Slider) {
	return v.re, v.im
}

func (v *View) Axes() *render.Axes {
	return v.axes
}

// Dirty reports a pending redraw request
func (v *View) Dirty() bool {
	return v.dirty
}

func (v *View) requestRedraw() {
	v.dirty = true
}

// RecomputeFromMouse redraws the orbit with C taken from the stored pointer position
func (v *View) RecomputeFromMouse() {
	v.recompute(v.state.Mouse)
}

// RecomputeFromSliders redraws the orbit with C taken from the slider pair
func (v *View) RecomputeFromSliders() {
	v.recompute(complex(v.re.Value(), v.im.Value()))
}

func (v *View) recompute(c complex128) {
	v.c = c
	xs, ys := orbit.Split(orbit.Generate(v.seed, c, v.steps))
	v.line.SetData(xs, ys)
	v.requestRedraw()
}

// sliderChanged is the change callback of both sliders
// A mode toggle always recomputes from the freshly assigned sliders. A user
// drag only counts in slider mode; in mouse mode it recomputes from the
// pointer, so the drag has no visible effect on the path.
func (v *View) sliderChanged() {
	if v.syncing || v.state.Mode == ModeSlider {
		v.RecomputeFromSliders()
		return
	}
	v.RecomputeFromMouse()
}

// MouseMoved records the pointer position; ok is false outside the plot
// In mouse mode the orbit follows immediately, in slider mode only the position is kept
func (v *View) MouseMoved(pos complex128, ok bool) {
	if !ok {
		return
	}
	v.state.Mouse = pos
	if v.state.Mode == ModeMouse {
		v.RecomputeFromMouse()
	}
}

// Clicked handles a button press; only the right button does anything
func (v *View) Clicked(btn input.MouseButton, pos complex128, ok bool) {
	if btn != input.MouseBtnRight {
		return
	}
	v.toggleMode(pos, ok)
}

// toggleMode flips the mode and snaps both sliders to the stored pointer position
// Entering mouse mode adds an explicit recompute from the pointer, after the
// click position (when inside the plot) has been stored
func (v *View) toggleMode(pos complex128, ok bool) {
	v.state.Mode = v.state.Mode.Toggle()

	v.syncing = true
	v.re.Set(real(v.state.Mouse))
	v.im.Set(imag(v.state.Mouse))
	v.syncing = false

	if v.state.Mode == ModeMouse {
		if ok {
			v.state.Mouse = pos
		}
		v.RecomputeFromMouse()
	}

	if v.onToggle != nil {
		v.onToggle(v.state.Mode)
	}
}

// HandleMouse routes a translated mouse event to the plot or the sliders
func (v *View) HandleMouse(ev input.MouseEvent) {
	switch ev.Action {
	case input.MouseActionPress:
		switch ev.Button {
		case input.MouseBtnRight:
			pos, ok := v.axes.DataAt(ev.X, ev.Y)
			v.Clicked(ev.Button, pos, ok)
		case input.MouseBtnLeft:
			if s := v.sliderAt(ev.X, ev.Y); s != nil {
				v.drag = s
				s.SetValue(s.ValueAt(ev.X, ev.Y))
				return
			}
			pos, ok := v.axes.DataAt(ev.X, ev.Y)
			v.Clicked(ev.Button, pos, ok)
		}

	case input.MouseActionDrag:
		if v.drag != nil {
			v.drag.SetValue(v.drag.ValueAt(ev.X, ev.Y))
			return
		}
		v.MouseMoved(v.axes.DataAt(ev.X, ev.Y))

	case input.MouseActionMove:
		v.MouseMoved(v.axes.DataAt(ev.X, ev.Y))

	case input.MouseActionRelease:
		if ev.Button == input.MouseBtnLeft {
			v.drag = nil
		}
	}
}

// ResetSliders returns both sliders to their configured initial values
func (v *View) ResetSliders() {
	v.drag = nil
	v.re.Reset()
	v.im.Reset()
}

func (v *View) sliderAt(x, y int) *widget.Slider {
	switch {
	case v.re.Contains(x, y):
		return v.re
	case v.im.Contains(x, y):
		return v.im
	default:
		return nil
	}
}

// Layout assigns cells to the plot and sliders for a w x h screen
// Screens too small for a plot leave every component without cells
func (v *View) Layout(w, h int) {
	v.width, v.height = w, h
	v.drag = nil

	pw := w - plotLeft - plotRightPad
	ph := h - plotTop - plotBottom
	if pw < minPlotCells || ph < minPlotCells {
		v.axes.SetRect(render.Rect{})
		v.re.Layout(0, 0, 0)
		v.im.Layout(0, 0, 0)
		v.requestRedraw()
		return
	}

	v.axes.SetRect(render.Rect{X: plotLeft, Y: plotTop, W: pw, H: ph})
	v.im.Layout(sliderColumn, plotTop, ph)
	v.re.Layout(plotLeft, h-3, pw)
	v.requestRedraw()
}

// Draw paints the whole view and clears the redraw request
func (v *View) Draw(s tcell.Screen) {
	v.dirty = false
	w, h := v.width, v.height
	render.Fill(s, render.Rect{W: w, H: h}, v.theme.Background)

	render.Fill(s, render.Rect{W: w, H: 1}, v.theme.Status)
	render.Text(s, 1, 0, v.statusText(), v.theme.Status)

	if v.axes.Rect().Empty() {
		render.Text(s, 1, min(2, h-1), "terminal too small", v.theme.Label)
		return
	}

	render.DrawAxes(s, v.axes, v.theme.Axis)
	render.DrawLine(s, v.axes, &v.line, v.theme.Background, v.theme.Path)
	render.DrawMarker(s, v.axes, 0, v.theme.Origin)

	v.re.Draw(s, v.theme)
	v.im.Draw(s, v.theme)

	render.Text(s, 1, h-1, hintText, v.theme.Hint)
}

func (v *View) statusText() string {
	return fmt.Sprintf("%s   C = %+.3f %+.3fi   Z0 = %+.3f %+.3fi",
		v.state.Mode, real(v.c), imag(v.c), real(v.seed), imag(v.seed))
}
