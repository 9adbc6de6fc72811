package view

// Mode selects the source of the parameter C
type Mode uint8

const (
	// ModeMouse: C follows the pointer over the plot
	ModeMouse Mode = iota
	// ModeSlider: C is read from the real and imaginary sliders
	ModeSlider
)

func (m Mode) String() string {
	switch m {
	case ModeMouse:
		return "mouse-driven"
	case ModeSlider:
		return "slider-driven"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeMouse {
		return ModeSlider
	}
	return ModeMouse
}

// State is the interaction state touched by every handler
// Mouse is the last pointer position over the plot, in data coordinates
type State struct {
	Mode  Mode
	Mouse complex128
}
