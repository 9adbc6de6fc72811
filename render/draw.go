package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	runeAxisH     = '─'
	runeAxisV     = '│'
	runeAxisCross = '┼'
	runeSegment   = '·'
	runeVertex    = '•'
	runeSeed      = 'o'
	runeOrigin    = '●'
)

// Fill paints every cell of r with a blank in style
func Fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Text draws str starting at (x, y) and returns the display width consumed
func Text(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	col := x
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}

// TextWidth reports the display width of str
func TextWidth(str string) int {
	return runewidth.StringWidth(str)
}

// DrawAxes draws the two axis lines through the data origin, clipped to the plot
func DrawAxes(s tcell.Screen, a *Axes, style tcell.Style) {
	r := a.Rect()
	if r.Empty() {
		return
	}
	ox, oy := a.CellAtRounded(0)

	if oy >= r.Y && oy < r.Y+r.H {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, oy, runeAxisH, nil, style)
		}
	}
	if ox >= r.X && ox < r.X+r.W {
		for y := r.Y; y < r.Y+r.H; y++ {
			ch := runeAxisV
			if y == oy {
				ch = runeAxisCross
			}
			s.SetContent(ox, y, ch, nil, style)
		}
	}
}

// DrawMarker draws a single glyph at data point z if it falls inside the plot
func DrawMarker(s tcell.Screen, a *Axes, z complex128, style tcell.Style) {
	x, y := a.CellAtRounded(z)
	if a.Rect().Contains(x, y) {
		s.SetContent(x, y, runeOrigin, nil, style)
	}
}

// DrawLine rasterises the path: segments first, then vertices on top
// Vertex colour follows the gradient from the first to the last point
// Segments touching a non-finite point are skipped
func DrawLine(s tcell.Screen, a *Axes, l *Line, bg tcell.Style, g Gradient) {
	n := l.Len()
	if n == 0 || a.Rect().Empty() {
		return
	}

	colorAt := func(i int) tcell.Style {
		if n == 1 {
			return bg.Foreground(g.At(0))
		}
		return bg.Foreground(g.At(float64(i) / float64(n-1)))
	}

	for i := 1; i < n; i++ {
		x0, y0 := a.CellAt(l.Point(i - 1))
		x1, y1 := a.CellAt(l.Point(i))
		drawSegment(s, a.Rect(), x0, y0, x1, y1, colorAt(i-1))
	}

	for i := 0; i < n; i++ {
		fx, fy := a.CellAt(l.Point(i))
		if !finite(fx) || !finite(fy) {
			continue
		}
		x, y := int(math.Round(fx)), int(math.Round(fy))
		if !a.Rect().Contains(x, y) {
			continue
		}
		ch := runeVertex
		if i == 0 {
			ch = runeSeed
		}
		s.SetContent(x, y, ch, nil, colorAt(i))
	}
}

func drawSegment(s tcell.Screen, r Rect, x0, y0, x1, y1 float64, style tcell.Style) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}

	x0, y0, x1, y1, ok := clipSegment(r, x0, y0, x1, y1)
	if !ok || !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}

	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		if r.Contains(x, y) {
			s.SetContent(x, y, runeSegment, nil, style)
		}
	}
}

// clipSegment clips a fractional-cell segment to r using Liang-Barsky
// The clip window extends half a cell past the outer cell centres
func clipSegment(r Rect, x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	xmin, xmax := float64(r.X)-0.5, float64(r.X+r.W)-0.5
	ymin, ymax := float64(r.Y)-0.5, float64(r.Y+r.H)-0.5

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
