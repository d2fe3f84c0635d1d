package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/rong/internal/game"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
	NetChar    = '|'
)

// Viewport maps court coordinates onto the terminal rows between the
// scoreboard and the status bar.
type Viewport struct {
	Width, Height int // terminal size
	scaleX        float64
	scaleY        float64
}

// NewViewport fits the court into a screenW x screenH terminal
func NewViewport(c game.Court, screenW, screenH int) Viewport {
	rows := screenH - 2
	if rows < 1 {
		rows = 1
	}
	return Viewport{
		Width:  screenW,
		Height: screenH,
		scaleX: float64(screenW) / c.Width,
		scaleY: float64(rows) / c.Height,
	}
}

// Cell converts a court point to a screen cell. The returned row already
// accounts for the scoreboard line.
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.scaleX)), int(math.Floor(y*v.scaleY)) + 1
}

// InCourt reports whether a screen cell lies in the drawable court area
func (v Viewport) InCourt(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 1 && row < v.Height-1
}

// ScoreGlyphs returns the scoreboard text for each player. Once the match
// is finished the numbers are replaced by W and L.
func ScoreGlyphs(s game.Snapshot) [2]string {
	var glyphs [2]string
	for _, p := range game.Players {
		switch {
		case s.Phase != game.Finished:
			glyphs[p] = strconv.Itoa(s.Score[p])
		case s.Winner == p:
			glyphs[p] = "W"
		default:
			glyphs[p] = "L"
		}
	}
	return glyphs
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMatch draws one frame of the match
func (r *Renderer) RenderMatch(s game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	view := NewViewport(s.Court, screenW, screenH)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Net
	netStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	centerX, _ := view.Cell(s.Court.Width/2, 0)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, netStyle, NetChar)
	}

	r.renderScoreboard(s, screenW)

	for _, p := range s.Paddles {
		r.renderPaddle(view, s.Court, p)
	}

	ballX, ballY := view.Cell(s.Ball.X, s.Ball.Y)
	if view.InCourt(ballX, ballY) {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}

	if s.Phase == game.Finished {
		r.renderWinner(s, screenW, screenH)
	}

	// Status bar
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	statusText := fmt.Sprintf(" Tick: %d | First past %d wins | W/S and Up/Down to move, q to quit", s.Tick, s.Court.WinThreshold)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(view Viewport, c game.Court, p game.PaddleState) {
	left, top := view.Cell(p.X, p.Y)
	right, bottom := view.Cell(p.X+c.PaddleWidth, p.Y+c.PaddleHeight)
	// Always draw at least one cell, and keep the right paddle on screen.
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	if left >= view.Width {
		left = view.Width - 1
	}

	style := GetPlayerStyle(p.Player)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if view.InCourt(x, y) {
				r.screen.SetCell(x, y, style, PaddleChar)
			}
		}
	}
}

// renderScoreboard draws "[ P1 3 - 2 P2 ]" at top center
func (r *Renderer) renderScoreboard(s game.Snapshot, screenW int) {
	glyphs := ScoreGlyphs(s)
	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)

	parts := []struct {
		text  string
		style tcell.Style
	}{
		{"[ ", boardStyle},
		{"P1", boardStyle.Foreground(PlayerColors[game.Player1])},
		{" " + glyphs[game.Player1] + " - " + glyphs[game.Player2] + " ", boardStyle},
		{"P2", boardStyle.Foreground(PlayerColors[game.Player2])},
		{" ]", boardStyle},
	}

	width := 0
	for _, part := range parts {
		width += len(part.text)
	}

	x := (screenW - width) / 2
	for _, part := range parts {
		r.screen.DrawText(x, 0, part.text, part.style)
		x += len(part.text)
	}
}

func (r *Renderer) renderWinner(s game.Snapshot, screenW, screenH int) {
	boxW := 44
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')

	winner := strings.ToUpper(s.Winner.String()) + " WINS!"
	winnerStyle := fillStyle.Foreground(PlayerColors[s.Winner]).Bold(true)
	r.screen.DrawText((screenW-len(winner))/2, boxY+2, winner, winnerStyle)

	hint := "ENTER for a new match | 'q' to quit"
	r.screen.DrawText((screenW-len(hint))/2, boxY+4, hint, fillStyle.Foreground(tcell.ColorGreen))
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawText(titleX, screenH/2-2, title, titleStyle)

	maxErrLen := screenW - 4
	errMsg := err
	if len(errMsg) > maxErrLen && maxErrLen > 3 {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	errX := (screenW - len(errMsg)) / 2
	r.screen.DrawText(errX, screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
