package app

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diegok/rong/internal/audio"
	"github.com/diegok/rong/internal/config"
	"github.com/diegok/rong/internal/game"
	"github.com/diegok/rong/internal/ui"
)

// App is the main application controller that manages the match lifecycle.
type App struct {
	cfg      *config.Config
	log      *logrus.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.Keyboard

	match   *game.Match
	matchID string
	last    game.Snapshot

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *logrus.Logger) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		keyboard: ui.NewKeyboard(),
		quit:     make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays until quit.
func (a *App) Run() error {
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			a.log.WithError(err).Warn("sound disabled")
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-a.sigChan:
			a.log.WithField("signal", sig.String()).Info("interrupted")
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.startMatch()
	if runErr == nil {
		runErr = a.mainLoop()
	} else {
		a.renderer.RenderError(runErr.Error())
		a.screen.PollEvent()
	}

	a.cleanup()
	return runErr
}

func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
}

func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// startMatch replaces the current match with a fresh one.
func (a *App) startMatch() error {
	m, err := game.NewMatch(a.cfg.Court)
	if err != nil {
		return errors.Wrap(err, "failed to start match")
	}
	a.match = m
	a.matchID = uuid.NewString()
	a.last = m.Snapshot()
	a.keyboard.Release()

	a.entry().WithFields(logrus.Fields{
		"width":         a.cfg.Court.Width,
		"height":        a.cfg.Court.Height,
		"win_threshold": a.cfg.Court.WinThreshold,
		"tick_rate":     a.cfg.TickRate,
	}).Info("match started")
	return nil
}

func (a *App) entry() *logrus.Entry {
	return a.log.WithField("match", a.matchID)
}

// mainLoop is the main event loop that handles input, ticks and rendering.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.tick()
			a.renderer.RenderMatch(a.last)
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderMatch(a.last)
	}
	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		a.entry().WithField("tick", a.last.Tick).Info("quit")
		return true
	}
	if a.match.IsOver() && ui.IsStartKey(key) {
		if err := a.startMatch(); err != nil {
			a.entry().WithError(err).Error("rematch")
		}
		return false
	}
	a.keyboard.Press(key, r)
	return false
}

// tick advances the match one step and reacts to what happened in it.
func (a *App) tick() {
	s := a.match.Step(a.keyboard)
	a.last = s

	if s.Events == 0 {
		return
	}
	if !a.cfg.Mute {
		audio.Play(s.Events)
	}

	log := a.entry().WithField("tick", s.Tick)
	if s.Events.Has(game.EventPaddleHit) {
		log.WithFields(logrus.Fields{"vx": s.Ball.VX, "vy": s.Ball.VY}).Debug("paddle hit")
	}
	if s.Events.Has(game.EventScore) {
		log.WithFields(logrus.Fields{
			"scorer":  s.Scorer.String(),
			"player1": s.Score[game.Player1],
			"player2": s.Score[game.Player2],
		}).Info("point")
	}
	if s.Events.Has(game.EventMatchOver) {
		log.WithFields(logrus.Fields{
			"winner":  s.Winner.String(),
			"player1": s.Score[game.Player1],
			"player2": s.Score[game.Player2],
		}).Info("match over")
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
	a.stop()
}
