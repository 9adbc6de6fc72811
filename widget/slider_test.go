package widget

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mandel-orbit/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderClamp(t *testing.T) {
	s := NewSlider("Re", -1, 1, 5, Horizontal)
	assert.Equal(t, 1.0, s.Value(), "init is clamped")

	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{-3, -1},
		{2, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		assert.Equal(t, tt.want, s.Value(), "SetValue(%g)", tt.in)
	}
}

func TestSliderSetKeepsRawValue(t *testing.T) {
	s := NewSlider("Re", -1, 1, 0, Horizontal)
	s.Layout(10, 20, 21)

	var got []float64
	s.OnChanged(func(v float64) { got = append(got, v) })

	s.Set(1.2)
	assert.Equal(t, 1.2, s.Value())
	hx, _ := s.HandleCell()
	assert.Equal(t, 30, hx, "handle pinned to the right end")

	s.Set(-1.25)
	assert.Equal(t, -1.25, s.Value())
	hx, _ = s.HandleCell()
	assert.Equal(t, 10, hx, "handle pinned to the left end")

	s.Set(math.NaN())
	assert.Equal(t, -1.25, s.Value(), "NaN ignored")
	assert.Equal(t, []float64{1.2, -1.25}, got)

	s.SetValue(1.2)
	assert.Equal(t, 1.0, s.Value(), "SetValue still clamps")
}

func TestSliderObserversFireOnEverySet(t *testing.T) {
	s := NewSlider("Im", -1, 1, 0, Vertical)

	var got []float64
	s.OnChanged(func(v float64) { got = append(got, v) })
	calls := 0
	s.OnChanged(func(float64) { calls++ })

	s.SetValue(0.5)
	s.SetValue(0.5)
	s.SetValue(9)
	s.Reset()

	assert.Equal(t, []float64{0.5, 0.5, 1, 0}, got)
	assert.Equal(t, 4, calls)
}

func TestHorizontalGeometry(t *testing.T) {
	s := NewSlider("Re", -1, 1, 0, Horizontal)
	s.Layout(10, 20, 21)

	assert.True(t, s.Contains(10, 20))
	assert.True(t, s.Contains(30, 20))
	assert.False(t, s.Contains(31, 20))
	assert.False(t, s.Contains(15, 19))

	assert.Equal(t, -1.0, s.ValueAt(10, 20))
	assert.Equal(t, 1.0, s.ValueAt(30, 20))
	assert.InDelta(t, 0, s.ValueAt(20, 20), 1e-12)
	assert.Equal(t, -1.0, s.ValueAt(0, 20), "left of track clamps")
	assert.Equal(t, 1.0, s.ValueAt(99, 20), "right of track clamps")

	hx, hy := s.HandleCell()
	assert.Equal(t, 20, hx)
	assert.Equal(t, 20, hy)
}

func TestVerticalGeometry(t *testing.T) {
	s := NewSlider("Im", -1, 1, 0, Vertical)
	s.Layout(3, 2, 11)

	assert.True(t, s.Contains(3, 2))
	assert.True(t, s.Contains(3, 12))
	assert.False(t, s.Contains(3, 13))
	assert.False(t, s.Contains(4, 5))

	assert.Equal(t, 1.0, s.ValueAt(3, 2), "top is max")
	assert.Equal(t, -1.0, s.ValueAt(3, 12), "bottom is min")
	assert.InDelta(t, 0, s.ValueAt(3, 7), 1e-12)

	s.SetValue(1)
	hx, hy := s.HandleCell()
	assert.Equal(t, 3, hx)
	assert.Equal(t, 2, hy)
}

func TestSliderWithoutLayout(t *testing.T) {
	s := NewSlider("Re", -1, 1, 0.3, Horizontal)
	assert.False(t, s.Contains(0, 0))
	assert.Equal(t, 0.3, s.ValueAt(5, 5))
}

func TestSliderDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 10)

	s := NewSlider("Re", -1, 1, 0, Horizontal)
	s.Layout(5, 8, 11)
	s.Draw(screen, render.DefaultTheme())

	r, _, _, _ := screen.GetContent(10, 8)
	assert.Equal(t, runeHandle, r)
	r, _, _, _ = screen.GetContent(5, 8)
	assert.Equal(t, runeTrackH, r)
	r, _, _, _ = screen.GetContent(2, 8)
	assert.Equal(t, 'R', r)
	r, _, _, _ = screen.GetContent(17, 8)
	assert.Equal(t, '0', r)
}
