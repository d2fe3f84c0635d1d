package game

// Score holds points per player
type Score [2]int

// Check awards a point when the ball has left the court horizontally and
// serves it again. It must see the ball before paddle collisions run.
func (s *Score) Check(b *Ball, c Court) (Player, bool) {
	var scorer Player
	switch {
	case b.X >= c.Width:
		scorer = Player1
	case b.X <= 0:
		scorer = Player2
	default:
		return 0, false
	}

	s[scorer]++
	Serve(b, c)
	return scorer, true
}

// Serve puts the ball back at the centre heading the other way. VY is kept.
func Serve(b *Ball, c Court) {
	b.X, b.Y = c.Center()
	b.VX = -b.VX
}

// Leader returns the player whose score exceeds threshold, if any
func (s Score) Leader(threshold int) (Player, bool) {
	for _, p := range Players {
		if s[p] > threshold {
			return p, true
		}
	}
	return 0, false
}
