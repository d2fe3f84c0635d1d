package game

// Phase of a match
type Phase int

const (
	Playing Phase = iota
	Finished
)

func (p Phase) String() string {
	if p == Finished {
		return "finished"
	}
	return "playing"
}

// Events flags what happened during a tick
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventScore
	EventPaddleHit
	EventMatchOver
)

// Has reports whether all flags in e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Match owns the whole simulation state. It is not safe for concurrent use.
type Match struct {
	Court   Court
	Paddles [2]Paddle
	Ball    Ball
	Score   Score
	Phase   Phase
	Winner  Player
	Tick    int

	// Scorer is the player who scored on the last tick, valid when
	// Events has EventScore.
	Scorer Player
	Events Events
}

// NewMatch validates the court and sets up a match ready for its first tick
func NewMatch(c Court) (*Match, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		Court: c,
		Ball:  NewBall(c),
	}
	for _, p := range Players {
		m.Paddles[p] = NewPaddle(p, c)
	}
	return m, nil
}

// Step polls src once and advances the match by one tick
func (m *Match) Step(src InputSource) Snapshot {
	return m.Update(src.Snapshot())
}

// Update runs one game tick
func (m *Match) Update(in InputSnapshot) Snapshot {
	m.Tick++
	m.Events = 0

	for _, p := range Players {
		m.Paddles[p].Move(in[p], m.Court)
	}

	if m.Phase == Finished {
		return m.Snapshot()
	}

	if m.Ball.BounceWalls(m.Court) {
		m.Events |= EventWallBounce
	}

	if scorer, ok := m.Score.Check(&m.Ball, m.Court); ok {
		m.Scorer = scorer
		m.Events |= EventScore
	}

	for _, p := range Players {
		if Deflect(&m.Ball, m.Paddles[p], m.Court) {
			m.Events |= EventPaddleHit
		}
	}

	m.Ball.Move()

	if winner, ok := m.Score.Leader(m.Court.WinThreshold); ok {
		m.Phase = Finished
		m.Winner = winner
		m.Ball.Stop()
		m.Events |= EventMatchOver
	}

	return m.Snapshot()
}

// IsOver returns true once a player has won
func (m *Match) IsOver() bool {
	return m.Phase == Finished
}
