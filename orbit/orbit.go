// Package orbit computes trajectories of the quadratic map z -> z^2 + c.
package orbit

// DefaultSteps is the number of iterations applied after the seed
const DefaultSteps = 20

// Generate returns the orbit of seed under z -> z^2 + c
// Result holds steps+1 points: the seed followed by each iterate in order
// Values are not guarded; a diverging orbit runs the full count and may reach Inf/NaN
func Generate(seed, c complex128, steps int) []complex128 {
	if steps < 0 {
		steps = 0
	}

	points := make([]complex128, steps+1)
	points[0] = seed
	for i := 1; i <= steps; i++ {
		z := points[i-1]
		points[i] = z*z + c
	}
	return points
}

// Split separates an orbit into real and imaginary coordinate sequences
func Split(points []complex128) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = real(p)
		ys[i] = imag(p)
	}
	return xs, ys
}
