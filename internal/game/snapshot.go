package game

// PaddleState is the render view of a paddle
type PaddleState struct {
	Player Player
	X, Y   float64
}

// BallState is the render view of the ball
type BallState struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot is a read-only copy of the match for renderers and other
// observers. Holding one does not alias match state.
type Snapshot struct {
	Tick    int
	Court   Court
	Paddles [2]PaddleState
	Ball    BallState
	Score   Score
	Phase   Phase
	Winner  Player
	Scorer  Player
	Events  Events
}

// Snapshot returns the current state
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   m.Tick,
		Court:  m.Court,
		Ball:   BallState{X: m.Ball.X, Y: m.Ball.Y, VX: m.Ball.VX, VY: m.Ball.VY},
		Score:  m.Score,
		Phase:  m.Phase,
		Winner: m.Winner,
		Scorer: m.Scorer,
		Events: m.Events,
	}
	for i, p := range m.Paddles {
		s.Paddles[i] = PaddleState{Player: p.Player, X: p.X, Y: p.Y}
	}
	return s
}
