package render

// Line is a drawable path given by parallel coordinate sequences
type Line struct {
	xs, ys []float64
}

// SetData replaces the coordinate sequences; inputs are copied
// Sequences of unequal length are truncated to the shorter one
func (l *Line) SetData(xs, ys []float64) {
	n := min(len(xs), len(ys))
	l.xs = append(l.xs[:0], xs[:n]...)
	l.ys = append(l.ys[:0], ys[:n]...)
}

// Data returns copies of the current coordinates
func (l *Line) Data() (xs, ys []float64) {
	xs = append([]float64(nil), l.xs...)
	ys = append([]float64(nil), l.ys...)
	return xs, ys
}

func (l *Line) Len() int {
	return len(l.xs)
}

// Point returns the i-th vertex as a complex number
func (l *Line) Point(i int) complex128 {
	return complex(l.xs[i], l.ys[i])
}
