// Package render draws the orbit plot onto a tcell screen
//
// Axes own the mapping between data space (complex plane) and the cell
// rectangle assigned by layout. Rows grow downward while the imaginary
// axis grows upward, so the vertical mapping is flipped.
package render

import "math"

// Rect is a cell rectangle; W and H count cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a rectangle with no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Axes maps fixed data bounds onto a cell rectangle
type Axes struct {
	XMin, XMax float64
	YMin, YMax float64
	rect       Rect
}

// NewAxes creates axes spanning [-bound, bound] in both directions
func NewAxes(bound float64) *Axes {
	return &Axes{
		XMin: -bound,
		XMax: bound,
		YMin: -bound,
		YMax: bound,
	}
}

func (a *Axes) SetRect(r Rect) {
	a.rect = r
}

func (a *Axes) Rect() Rect {
	return a.rect
}

// CellAt maps a data point to fractional cell coordinates
// Integer results are cell centres; values outside the rect are not clamped
func (a *Axes) CellAt(z complex128) (x, y float64) {
	x = float64(a.rect.X) + (real(z)-a.XMin)/(a.XMax-a.XMin)*float64(a.rect.W) - 0.5
	y = float64(a.rect.Y) + (a.YMax-imag(z))/(a.YMax-a.YMin)*float64(a.rect.H) - 0.5
	return x, y
}

// CellAtRounded returns the cell containing z
func (a *Axes) CellAtRounded(z complex128) (x, y int) {
	fx, fy := a.CellAt(z)
	return int(math.Round(fx)), int(math.Round(fy))
}

// DataAt maps the centre of a cell to data space
// ok is false when the cell lies outside the plot rectangle
func (a *Axes) DataAt(x, y int) (z complex128, ok bool) {
	if a.rect.Empty() || !a.rect.Contains(x, y) {
		return 0, false
	}
	re := a.XMin + (float64(x-a.rect.X)+0.5)/float64(a.rect.W)*(a.XMax-a.XMin)
	im := a.YMax - (float64(y-a.rect.Y)+0.5)/float64(a.rect.H)*(a.YMax-a.YMin)
	return complex(re, im), true
}
