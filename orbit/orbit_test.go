package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name  string
		seed  complex128
		c     complex128
		steps int
		want  int
	}{
		{"default steps", 0, complex(-0.5, 0.2), DefaultSteps, 21},
		{"zero steps", complex(1, 1), complex(0.3, 0), 0, 1},
		{"negative steps clamp to seed", complex(1, 1), 0, -4, 1},
		{"diverging orbit keeps full length", 0, complex(2, 2), DefaultSteps, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Generate(tt.seed, tt.c, tt.steps)
			require.Len(t, points, tt.want)
			assert.Equal(t, tt.seed, points[0])
		})
	}
}

// TestGenerateRecurrence checks every point against direct component arithmetic
func TestGenerateRecurrence(t *testing.T) {
	samples := []struct{ seed, c complex128 }{
		{0, complex(-0.5, 0.2)},
		{complex(0.1, -0.3), complex(0.25, 0)},
		{complex(-0.7, 0.7), complex(-1, 1)},
		{complex(0.5, 0.5), complex(0, -0.8)},
	}

	for _, s := range samples {
		points := Generate(s.seed, s.c, DefaultSteps)
		for i := 1; i < len(points); i++ {
			prev := points[i-1]
			re, im := real(prev), imag(prev)
			wantRe := re*re - im*im + real(s.c)
			wantIm := 2*re*im + imag(s.c)

			if !finite(wantRe) || !finite(wantIm) || !finite(real(points[i])) || !finite(imag(points[i])) {
				break
			}
			assert.InDelta(t, wantRe, real(points[i]), 1e-9*math.Max(1, math.Abs(wantRe)), "re at step %d", i)
			assert.InDelta(t, wantIm, imag(points[i]), 1e-9*math.Max(1, math.Abs(wantIm)), "im at step %d", i)
		}
	}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func TestGenerateFirstIterates(t *testing.T) {
	c := complex(-0.5, 0.2)
	points := Generate(0, c, DefaultSteps)

	assert.Equal(t, complex128(0), points[0])
	assert.Equal(t, c, points[1])
	assert.Equal(t, c*c+c, points[2])
}

func TestGenerateFixedPointAtOrigin(t *testing.T) {
	for i, p := range Generate(0, 0, DefaultSteps) {
		assert.Equal(t, complex128(0), p, "step %d", i)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(complex(0.2, -0.1), complex(-0.75, 0.1), DefaultSteps)
	b := Generate(complex(0.2, -0.1), complex(-0.75, 0.1), DefaultSteps)
	assert.Equal(t, a, b)
}

func TestSplit(t *testing.T) {
	xs, ys := Split([]complex128{complex(1, 2), complex(-3, 4), 0})
	assert.Equal(t, []float64{1, -3, 0}, xs)
	assert.Equal(t, []float64{2, 4, 0}, ys)

	xs, ys = Split(nil)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}
