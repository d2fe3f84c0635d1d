package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/rong/internal/game"
)

// HoldTicks is how long a key press keeps its action held (~133ms at 60Hz).
// Terminals report presses and autorepeat, never releases.
const HoldTicks = 8

// Binding matches a terminal key. Rune bindings are case-insensitive.
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// Matches reports whether the key event fires this binding
func (b Binding) Matches(key tcell.Key, r rune) bool {
	if b.Key == tcell.KeyRune {
		return key == tcell.KeyRune && unicode.ToLower(r) == b.Rune
	}
	return key == b.Key
}

// PaddleKeys binds the two actions of one paddle
type PaddleKeys struct {
	Up   Binding
	Down Binding
}

// Bindings is indexed by game.Player
var Bindings = [2]PaddleKeys{
	game.Player1: {
		Up:   Binding{Key: tcell.KeyRune, Rune: 'w'},
		Down: Binding{Key: tcell.KeyRune, Rune: 's'},
	},
	game.Player2: {
		Up:   Binding{Key: tcell.KeyUp},
		Down: Binding{Key: tcell.KeyDown},
	},
}

const (
	actionUp = iota
	actionDown
)

// Keyboard turns key presses into per-tick input snapshots. It implements
// game.InputSource and must be used from a single goroutine.
type Keyboard struct {
	tick  int
	until [2][2]int // [player][action] first tick the action is released
}

// NewKeyboard creates a keyboard with nothing held
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press records a key press. It returns false if the key is not bound to
// a paddle.
func (k *Keyboard) Press(key tcell.Key, r rune) bool {
	handled := false
	for _, p := range game.Players {
		keys := Bindings[p]
		switch {
		case keys.Up.Matches(key, r):
			k.until[p][actionUp] = k.tick + HoldTicks
			k.until[p][actionDown] = 0
			handled = true
		case keys.Down.Matches(key, r):
			k.until[p][actionDown] = k.tick + HoldTicks
			k.until[p][actionUp] = 0
			handled = true
		}
	}
	return handled
}

// Release drops every held action
func (k *Keyboard) Release() {
	k.until = [2][2]int{}
}

// Snapshot reports the held actions for the current tick and advances
// to the next one.
func (k *Keyboard) Snapshot() game.InputSnapshot {
	var in game.InputSnapshot
	for _, p := range game.Players {
		in[p] = game.PaddleInput{
			Up:   k.until[p][actionUp] > k.tick,
			Down: k.until[p][actionDown] > k.tick,
		}
	}
	k.tick++
	return in
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start a new match
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}
