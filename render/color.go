package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient blends between two colours in HCL space
type Gradient struct {
	From, To colorful.Color
}

// DefaultGradient runs from a cool blue at the seed to a warm orange at the last iterate
func DefaultGradient() Gradient {
	return Gradient{
		From: colorful.Hcl(250, 0.45, 0.70),
		To:   colorful.Hcl(50, 0.65, 0.75),
	}
}

// At returns the colour at position t in [0, 1]
func (g Gradient) At(t float64) tcell.Color {
	t = min(max(t, 0), 1)
	c := g.From.BlendHcl(g.To, t).Clamped()
	r, gr, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(gr), int32(b))
}

// Theme groups the styles used by the plot and widgets
type Theme struct {
	Background tcell.Style
	Axis       tcell.Style
	Origin     tcell.Style
	Track      tcell.Style
	Handle     tcell.Style
	Label      tcell.Style
	Status     tcell.Style
	Hint       tcell.Style
	Path       Gradient
}

// DefaultTheme mirrors a light plot on a dark terminal
func DefaultTheme() Theme {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Theme{
		Background: bg,
		Axis:       bg.Foreground(tcell.ColorGray),
		Origin:     bg.Foreground(tcell.ColorRed).Bold(true),
		Track:      bg.Foreground(tcell.NewRGBColor(238, 232, 170)),
		Handle:     bg.Foreground(tcell.ColorSteelBlue),
		Label:      bg.Foreground(tcell.ColorWhite),
		Status:     tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 60)).Foreground(tcell.ColorWhite),
		Hint:       bg.Foreground(tcell.ColorDimGray),
		Path:       DefaultGradient(),
	}
}
