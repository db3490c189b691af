package bubbletea

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	fps             = 60
	springFrequency = 8.0
	springDamping   = 1.0 // critically damped: no overshoot past the highlight
	settleEpsilon   = 0.005
)

// expandAnim tracks a card's expansion from collapsed (0) to expanded (1).
// Its position picks both the fill between surface and highlight and how
// many body lines are revealed.
type expandAnim struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newSurfaceAnim() expandAnim {
	return expandAnim{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

// step advances one frame and reports whether the animation has settled.
// A settled animation sits exactly on its target.
func (a *expandAnim) step() bool {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.snap()
		return true
	}
	return false
}

func (a *expandAnim) snap() {
	a.pos = a.target
	a.vel = 0
}

func (a expandAnim) settled() bool {
	return a.pos == a.target && a.vel == 0
}

func (a expandAnim) progress() float64 {
	return math.Max(0, math.Min(1, a.pos))
}
