package game

import "math"

const (
	SpinDivisor = 100 // Scales hit offset into vertical speed
	MaxSpin     = 5   // Bound on |VY| after a paddle hit
)

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewBall places a ball at the court centre with the serve velocity
func NewBall(c Court) Ball {
	x, y := c.Center()
	return Ball{X: x, Y: y, VX: c.BallVX, VY: c.BallVY, Radius: c.BallRadius}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceWalls reverses vertical direction when the ball touches the top or
// bottom wall. Y is not pulled back inside the court.
func (b *Ball) BounceWalls(c Court) bool {
	if b.Y <= 0 || b.Y >= c.Height {
		b.VY = -b.VY
		return true
	}
	return false
}

// Stop zeroes the velocity
func (b *Ball) Stop() {
	b.VX = 0
	b.VY = 0
}

// Deflect bounces the ball off p when it overlaps the hit box while moving
// toward the paddle. The new vertical speed depends on where the ball
// struck, measured from a quarter of the way down the paddle.
func Deflect(b *Ball, p Paddle, c Court) bool {
	if b.VX*sides[p.Player].approach <= 0 {
		return false
	}
	if !p.Hits(*b, c) {
		return false
	}

	b.VX = -b.VX
	offset := b.Y - (p.Y + c.PaddleHeight/4)
	speed := math.Abs(b.VX) + math.Abs(b.VY)
	b.VY = clamp(speed*offset/SpinDivisor, -MaxSpin, MaxSpin)
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
