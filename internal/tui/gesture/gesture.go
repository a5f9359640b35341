// Package gesture turns horizontal swipes into month navigation.
package gesture

// Threshold is the minimum horizontal travel, in pixels, for a swipe.
// A delta of exactly Threshold is not a swipe.
const Threshold = 40

// Touch is one contact point of a touch event.
type Touch struct {
	X float64
	Y float64
}

// Stepper is the navigation a swipe drives.
type Stepper interface {
	Next()
	Previous()
}

// Direction is the outcome of a completed gesture.
type Direction int

const (
	None     Direction = iota // no navigation
	Previous                  // swipe right
	Next                      // swipe left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// Interpreter tracks a single in-progress swipe.
type Interpreter struct {
	nav      Stepper
	startX   float64
	hasStart bool
}

// NewInterpreter creates an Interpreter that steps nav.
func NewInterpreter(nav Stepper) *Interpreter {
	return &Interpreter{nav: nav}
}

// TouchStart records the X of the first touch point. Extra simultaneous
// touches are ignored.
func (g *Interpreter) TouchStart(touches []Touch) {
	if len(touches) == 0 {
		return
	}
	g.startX = touches[0].X
	g.hasStart = true
}

// TouchEnd completes the gesture and steps the navigator at most once.
// The recorded start is always consumed.
func (g *Interpreter) TouchEnd(touches []Touch) Direction {
	if !g.hasStart {
		return None
	}
	startX := g.startX
	g.Cancel()

	if len(touches) == 0 {
		return None
	}

	delta := touches[0].X - startX
	switch {
	case delta > Threshold:
		g.nav.Previous()
		return Previous
	case delta < -Threshold:
		g.nav.Next()
		return Next
	}
	return None
}

// Cancel drops any recorded start.
func (g *Interpreter) Cancel() {
	g.startX = 0
	g.hasStart = false
}

// Active reports whether a touch start is pending.
func (g *Interpreter) Active() bool {
	return g.hasStart
}
