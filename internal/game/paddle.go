package game

// Paddle is one player's bat. X is fixed per side, Y is the top edge.
type Paddle struct {
	Player Player
	X      float64
	Y      float64
}

// NewPaddle places the paddle for the given side, vertically centred
func NewPaddle(p Player, c Court) Paddle {
	return Paddle{
		Player: p,
		X:      sides[p].paddleX(c),
		Y:      c.Height/2 - c.PaddleHeight/2,
	}
}

// MovePaddle resolves one tick of input into a new y. Down wins when
// both actions are held.
func MovePaddle(y float64, in PaddleInput, c Court) float64 {
	switch {
	case in.Down:
		y += c.PaddleSpeed
	case in.Up:
		y -= c.PaddleSpeed
	}

	if y < 0 {
		y = 0
	}
	if maxY := c.MaxPaddleY(); y > maxY {
		y = maxY
	}
	return y
}

// Move applies input to the paddle in place
func (p *Paddle) Move(in PaddleInput, c Court) {
	p.Y = MovePaddle(p.Y, in, c)
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Bounds is the drawn paddle rectangle
func (p Paddle) Bounds(c Court) Rect {
	return Rect{X: p.X, Y: p.Y, W: c.PaddleWidth, H: c.PaddleHeight}
}

// HitBox is the collision rectangle, which may be smaller than Bounds
func (p Paddle) HitBox(c Court) Rect {
	hb := c.HitBoxes[p.Player]
	return Rect{X: p.X, Y: p.Y, W: hb.Width, H: hb.Height}
}

// Hits reports whether the ball centre is inside the hit box
func (p Paddle) Hits(b Ball, c Court) bool {
	return p.HitBox(c).Contains(b.X, b.Y)
}
