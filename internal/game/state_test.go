package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T) *Match {
	t.Helper()
	m, err := NewMatch(DefaultCourt())
	require.NoError(t, err)
	return m
}

type scriptedInput struct {
	inputs []InputSnapshot
	polls  int
}

func (s *scriptedInput) Snapshot() InputSnapshot {
	in := s.inputs[s.polls%len(s.inputs)]
	s.polls++
	return in
}

func randomInputs(seed int64, n int) []InputSnapshot {
	r := rand.New(rand.NewSource(seed))
	inputs := make([]InputSnapshot, n)
	for i := range inputs {
		for _, p := range Players {
			inputs[i][p] = PaddleInput{Up: r.Intn(3) == 0, Down: r.Intn(3) == 0}
		}
	}
	return inputs
}

func TestNewMatch(t *testing.T) {
	m := newTestMatch(t)

	assert.Equal(t, Playing, m.Phase)
	assert.Equal(t, Score{}, m.Score)
	assert.Equal(t, 0, m.Tick)
	assert.Equal(t, Ball{X: 400, Y: 200, VX: 12, VY: 1, Radius: 10}, m.Ball)
	assert.Equal(t, Paddle{Player: Player1, X: 40, Y: 100}, m.Paddles[Player1])
	assert.Equal(t, Paddle{Player: Player2, X: 760, Y: 100}, m.Paddles[Player2])
}

func TestMatch_Update(t *testing.T) {
	m := newTestMatch(t)

	snap := m.Update(InputSnapshot{})

	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, 412.0, snap.Ball.X)
	assert.Equal(t, 201.0, snap.Ball.Y)
	assert.Equal(t, Events(0), snap.Events)
}

func TestMatch_StepPollsOnce(t *testing.T) {
	m := newTestMatch(t)
	src := &scriptedInput{inputs: []InputSnapshot{{Player1: {Down: true}}}}

	m.Step(src)
	m.Step(src)

	assert.Equal(t, 2, src.polls)
	assert.Equal(t, 112.0, m.Paddles[Player1].Y)
	assert.Equal(t, 100.0, m.Paddles[Player2].Y)
}

func TestMatch_PaddleHitScenario(t *testing.T) {
	m := newTestMatch(t)

	// The ball reaches x=760 after 30 ticks and meets Player2's paddle
	// on the 31st.
	for i := 0; i < 30; i++ {
		snap := m.Update(InputSnapshot{})
		require.False(t, snap.Events.Has(EventPaddleHit), "unexpected hit on tick %d", snap.Tick)
	}
	require.Equal(t, 760.0, m.Ball.X)
	require.Equal(t, 230.0, m.Ball.Y)

	snap := m.Update(InputSnapshot{})

	assert.True(t, snap.Events.Has(EventPaddleHit))
	assert.Equal(t, -12.0, snap.Ball.VX)
	assert.Equal(t, 5.0, snap.Ball.VY)
	assert.Equal(t, 748.0, snap.Ball.X)
	assert.Equal(t, 235.0, snap.Ball.Y)
}

func TestMatch_ScoreLeftExit(t *testing.T) {
	m := newTestMatch(t)
	m.Ball.X = -1
	m.Ball.VX = -12
	m.Ball.VY = 0

	snap := m.Update(InputSnapshot{})

	assert.True(t, snap.Events.Has(EventScore))
	assert.Equal(t, Player2, snap.Scorer)
	assert.Equal(t, Score{0, 1}, snap.Score)
	assert.Equal(t, 12.0, snap.Ball.VX)
	// served from the centre, then integrated once
	assert.Equal(t, 412.0, snap.Ball.X)
	assert.Equal(t, 200.0, snap.Ball.Y)
}

func TestMatch_ScoreIncrementsByOne(t *testing.T) {
	m := newTestMatch(t)
	// Player1 parks at the top and lets points through.
	in := InputSnapshot{Player1: {Up: true}}

	total := 0
	for i := 0; i < 5000 && m.Phase == Playing; i++ {
		before := m.Score
		snap := m.Update(in)
		gained := snap.Score[Player1] - before[Player1] + snap.Score[Player2] - before[Player2]
		if snap.Events.Has(EventScore) {
			require.Equal(t, 1, gained, "tick %d", snap.Tick)
			total++
		} else {
			require.Equal(t, 0, gained, "tick %d", snap.Tick)
		}
	}

	assert.Equal(t, total, m.Score[Player1]+m.Score[Player2])
	assert.Equal(t, 15, total)
	assert.Equal(t, Finished, m.Phase)
	assert.Equal(t, Player2, m.Winner)
	assert.Equal(t, 1369, m.Tick)
}

func TestMatch_WallBounceFlipsVY(t *testing.T) {
	m := newTestMatch(t)
	m.Ball.Y = -0.5
	m.Ball.VY = -1

	snap := m.Update(InputSnapshot{})

	assert.True(t, snap.Events.Has(EventWallBounce))
	assert.Equal(t, 1.0, snap.Ball.VY)
	assert.Equal(t, 0.5, snap.Ball.Y)

	m.Ball.Y = 400
	m.Ball.VY = 2
	snap = m.Update(InputSnapshot{})

	assert.True(t, snap.Events.Has(EventWallBounce))
	assert.Equal(t, -2.0, snap.Ball.VY)
	assert.Equal(t, 398.0, snap.Ball.Y)
}

func TestMatch_WinFreezesBall(t *testing.T) {
	m := newTestMatch(t)
	m.Score[Player1] = 7
	m.Ball.X = 800

	snap := m.Update(InputSnapshot{})

	require.Equal(t, Finished, snap.Phase)
	assert.Equal(t, Player1, snap.Winner)
	assert.Equal(t, 8, snap.Score[Player1])
	assert.True(t, snap.Events.Has(EventMatchOver|EventScore))
	assert.Equal(t, 0.0, snap.Ball.VX)
	assert.Equal(t, 0.0, snap.Ball.VY)

	ballX, ballY := snap.Ball.X, snap.Ball.Y
	paddleY := m.Paddles[Player2].Y
	for i := 0; i < 100; i++ {
		snap = m.Update(InputSnapshot{Player2: {Down: true}})
		require.Equal(t, Finished, snap.Phase)
		require.Equal(t, 0.0, snap.Ball.VX)
		require.Equal(t, 0.0, snap.Ball.VY)
		require.Equal(t, ballX, snap.Ball.X)
		require.Equal(t, ballY, snap.Ball.Y)
		require.Equal(t, Score{8, 0}, snap.Score)
		require.Equal(t, Events(0), snap.Events)
	}

	assert.True(t, m.IsOver())
	assert.Greater(t, m.Paddles[Player2].Y, paddleY, "paddles keep moving after the match ends")
}

func TestMatch_Player2Wins(t *testing.T) {
	m := newTestMatch(t)
	m.Score = Score{3, 7}
	m.Ball.X = 0
	m.Ball.VX = -12

	snap := m.Update(InputSnapshot{})

	assert.Equal(t, Finished, snap.Phase)
	assert.Equal(t, Player2, snap.Winner)
}

func TestMatch_ThresholdMustBeExceeded(t *testing.T) {
	m := newTestMatch(t)
	m.Score[Player1] = 6
	m.Ball.X = 800

	snap := m.Update(InputSnapshot{})

	assert.Equal(t, 7, snap.Score[Player1])
	assert.Equal(t, Playing, snap.Phase)
	assert.NotZero(t, snap.Ball.VX)
}

func TestMatch_PaddlesStayInBounds(t *testing.T) {
	m := newTestMatch(t)
	maxY := m.Court.MaxPaddleY()

	for _, in := range randomInputs(7, 3000) {
		m.Update(in)
		for _, p := range m.Paddles {
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, maxY)
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	inputs := randomInputs(42, 5000)
	a := newTestMatch(t)
	b := newTestMatch(t)

	for i, in := range inputs {
		sa := a.Update(in)
		sb := b.Update(in)
		require.Equal(t, sa, sb, "runs diverged at tick %d", i+1)
	}
}

func TestMatch_SnapshotIsACopy(t *testing.T) {
	m := newTestMatch(t)
	snap := m.Snapshot()

	m.Update(InputSnapshot{Player1: {Up: true}})

	assert.Equal(t, 0, snap.Tick)
	assert.Equal(t, 400.0, snap.Ball.X)
	assert.Equal(t, 100.0, snap.Paddles[Player1].Y)
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, "player1", Player1.String())
	assert.Equal(t, "player2", Player2.String())
	assert.Equal(t, "unknown", Player(5).String())
}
