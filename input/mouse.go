// Package input turns tcell mouse state reports into discrete actions
//
// tcell delivers the full button mask on every mouse event rather than
// press/release transitions, so a Tracker remembers the previous mask
// and position to recover them.
package input

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// MouseEvent is a single translated action at a cell position
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

const buttonBits = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Tracker converts successive tcell mouse events into MouseEvents
type Tracker struct {
	held   tcell.ButtonMask
	x, y   int
	primed bool
}

// Translate reports the action implied by ev relative to the previous event
// Presses win over releases when both happen in one report; wheel bits are ignored
func (t *Tracker) Translate(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	buttons := ev.Buttons() & buttonBits

	pressed := buttons &^ t.held
	released := t.held &^ buttons
	moved := !t.primed || x != t.x || y != t.y

	t.held = buttons
	t.x, t.y = x, y
	t.primed = true

	out := MouseEvent{X: x, Y: y}
	switch {
	case pressed != 0:
		out.Action = MouseActionPress
		out.Button = buttonFromMask(pressed)
	case released != 0:
		out.Action = MouseActionRelease
		out.Button = buttonFromMask(released)
	case moved && buttons != 0:
		out.Action = MouseActionDrag
		out.Button = buttonFromMask(buttons)
	case moved:
		out.Action = MouseActionMove
	}
	return out
}

// Reset forgets held buttons, used when the terminal loses track (resize, focus)
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// buttonFromMask picks one button, preferring right, then left, then middle
func buttonFromMask(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.ButtonSecondary != 0:
		return MouseBtnRight
	case m&tcell.ButtonPrimary != 0:
		return MouseBtnLeft
	case m&tcell.ButtonMiddle != 0:
		return MouseBtnMiddle
	default:
		return MouseBtnNone
	}
}
