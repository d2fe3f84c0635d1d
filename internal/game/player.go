package game

// Player identifies one side of the court. It doubles as an index into
// per-player tables.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Players lists both sides in tick order
var Players = [...]Player{Player1, Player2}

type side struct {
	name string
	// paddleX is the fixed paddle column for the side
	paddleX func(c Court) float64
	// approach is the sign of VX for a ball travelling toward the paddle
	approach float64
}

var sides = [...]side{
	Player1: {
		name:     "player1",
		paddleX:  func(c Court) float64 { return c.PaddleWidth },
		approach: -1,
	},
	Player2: {
		name:     "player2",
		paddleX:  func(c Court) float64 { return c.Width - c.PaddleWidth },
		approach: 1,
	},
}

func (p Player) String() string {
	if p < Player1 || p > Player2 {
		return "unknown"
	}
	return sides[p].name
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	return 1 - p
}

// PaddleInput is the pair of movement actions for one paddle
type PaddleInput struct {
	Up   bool
	Down bool
}

// InputSnapshot holds the state of all four actions for one tick,
// indexed by Player.
type InputSnapshot [2]PaddleInput

// InputSource supplies input to the match. It is queried once per tick.
type InputSource interface {
	Snapshot() InputSnapshot
}
