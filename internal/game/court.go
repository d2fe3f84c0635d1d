package game

import (
	"fmt"
	"math"
)

// Default court values
const (
	DefaultWidth        = 800
	DefaultHeight       = 400
	DefaultPaddleWidth  = 40
	DefaultPaddleHeight = 200
	DefaultPaddleSpeed  = 6
	DefaultBallRadius   = 10
	DefaultBallVX       = 12
	DefaultBallVY       = 1
	DefaultWinThreshold = 7
)

// HitBox is the collision extent of a paddle, measured from its top-left
// corner. It is independent of the drawn paddle size.
type HitBox struct {
	Width  float64
	Height float64
}

// Court holds the immutable match configuration
type Court struct {
	Width        float64
	Height       float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	BallRadius   float64
	BallVX       float64
	BallVY       float64
	WinThreshold int // a player wins once their score exceeds this

	// HitBoxes is indexed by Player
	HitBoxes [2]HitBox
}

// DefaultCourt returns the standard 800x400 court with full-size hit boxes
func DefaultCourt() Court {
	c := Court{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		BallRadius:   DefaultBallRadius,
		BallVX:       DefaultBallVX,
		BallVY:       DefaultBallVY,
		WinThreshold: DefaultWinThreshold,
	}
	c.HitBoxes[Player1] = c.FullHitBox()
	c.HitBoxes[Player2] = c.FullHitBox()
	return c
}

// FullHitBox covers the whole drawn paddle
func (c Court) FullHitBox() HitBox {
	return HitBox{Width: c.PaddleWidth, Height: c.PaddleHeight}
}

// HalfHitBox covers the top-left quarter of the paddle: half its width
// and half its height.
func (c Court) HalfHitBox() HitBox {
	return HitBox{Width: c.PaddleWidth / 2, Height: c.PaddleHeight / 2}
}

// MaxPaddleY is the largest y a paddle may rest at
func (c Court) MaxPaddleY() float64 {
	return c.Height - c.PaddleHeight
}

// Center returns the serve position
func (c Court) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}

// ConfigError reports a degenerate court configuration
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid court %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that the court can be played on. It returns a
// *ConfigError describing the first problem found.
func (c Court) Validate() error {
	values := []struct {
		field string
		v     float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball radius", c.BallRadius},
		{"ball vx", c.BallVX},
		{"ball vy", c.BallVY},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return configErr(f.field, "must be a finite number, got %v", f.v)
		}
	}

	for _, f := range values[:6] {
		if f.v <= 0 {
			return configErr(f.field, "must be positive, got %v", f.v)
		}
	}

	if c.BallVX == 0 {
		return configErr("ball vx", "must be non-zero")
	}
	if c.PaddleHeight >= c.Height {
		return configErr("paddle height", "%v does not fit in court height %v", c.PaddleHeight, c.Height)
	}
	// Player1 sits one paddle width in from the left edge and must not
	// overlap Player2 at the right edge.
	if 3*c.PaddleWidth >= c.Width {
		return configErr("paddle width", "paddles overlap in court width %v", c.Width)
	}
	if c.WinThreshold <= 0 {
		return configErr("win threshold", "must be positive, got %d", c.WinThreshold)
	}

	for _, p := range Players {
		hb := c.HitBoxes[p]
		if !(hb.Width > 0 && hb.Width <= c.PaddleWidth) {
			return configErr(p.String()+" hit box width", "must be in (0, %v], got %v", c.PaddleWidth, hb.Width)
		}
		if !(hb.Height > 0 && hb.Height <= c.PaddleHeight) {
			return configErr(p.String()+" hit box height", "must be in (0, %v], got %v", c.PaddleHeight, hb.Height)
		}
	}

	return nil
}
