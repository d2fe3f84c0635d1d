package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diegok/rong/internal/game"
	"github.com/diegok/rong/internal/logger"
)

// Default values for configuration
const (
	DefaultTickRate = 60
	DefaultLogFile  = "rong.log"
	DefaultLogLevel = "info"
	EnvPrefix       = "RONG"
)

// Config holds the application configuration
type Config struct {
	Court    game.Court
	TickRate int
	Mute     bool
	Log      logger.Options
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rong", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("config", "", "config file (yaml, toml, json or properties)")
	fs.Float64("width", game.DefaultWidth, "court width")
	fs.Float64("height", game.DefaultHeight, "court height")
	fs.Float64("paddle-width", game.DefaultPaddleWidth, "paddle width")
	fs.Float64("paddle-height", game.DefaultPaddleHeight, "paddle height")
	fs.Float64("paddle-speed", game.DefaultPaddleSpeed, "paddle movement per tick")
	fs.Float64("ball-radius", game.DefaultBallRadius, "ball radius")
	fs.Float64("ball-vx", game.DefaultBallVX, "initial horizontal ball speed per tick")
	fs.Float64("ball-vy", game.DefaultBallVY, "initial vertical ball speed per tick")
	fs.Int("win-threshold", game.DefaultWinThreshold, "a player wins once their score exceeds this")
	fs.Bool("p1-half-hitbox", false, "shrink player 1 paddle hit box to half width and height")
	fs.Bool("p2-half-hitbox", false, "shrink player 2 paddle hit box to half width and height")
	fs.Int("tick-rate", DefaultTickRate, "simulation ticks per second")
	fs.Bool("mute", false, "disable sound")
	fs.String("log-file", DefaultLogFile, "log file, empty to disable logging")
	fs.String("log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	fs.Int("log-max-size", 10, "log file size in megabytes before rotation")
	fs.Int("log-max-backups", 3, "rotated log files to keep")
	fs.Int("log-max-age", 28, "days to keep rotated log files")
	fs.Bool("log-compress", false, "gzip rotated log files")

	return fs
}

// Usage returns the option summary
func Usage() string {
	return newFlagSet().FlagUsages()
}

// ParseArgs parses command line arguments and returns a Config. Values
// come from, in increasing priority: defaults, the config file, RONG_*
// environment variables and explicit flags.
func ParseArgs(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	r := reader{v: v}
	cfg := &Config{
		TickRate: r.intVal("tick-rate"),
		Mute:     r.boolVal("mute"),
		Log: logger.Options{
			Filename:   r.stringVal("log-file"),
			Level:      r.stringVal("log-level"),
			MaxSize:    r.intVal("log-max-size"),
			MaxBackups: r.intVal("log-max-backups"),
			MaxAge:     r.intVal("log-max-age"),
			Compress:   r.boolVal("log-compress"),
		},
	}

	c := game.Court{
		Width:        r.floatVal("width"),
		Height:       r.floatVal("height"),
		PaddleWidth:  r.floatVal("paddle-width"),
		PaddleHeight: r.floatVal("paddle-height"),
		PaddleSpeed:  r.floatVal("paddle-speed"),
		BallRadius:   r.floatVal("ball-radius"),
		BallVX:       r.floatVal("ball-vx"),
		BallVY:       r.floatVal("ball-vy"),
		WinThreshold: r.intVal("win-threshold"),
	}
	for i, key := range []string{"p1-half-hitbox", "p2-half-hitbox"} {
		if r.boolVal(key) {
			c.HitBoxes[i] = c.HalfHitBox()
		} else {
			c.HitBoxes[i] = c.FullHitBox()
		}
	}
	cfg.Court = c

	if r.err != nil {
		return nil, r.err
	}

	if cfg.TickRate < 1 || cfg.TickRate > 1000 {
		return nil, errors.Errorf("tick rate must be between 1 and 1000, got %d", cfg.TickRate)
	}

	if err := cfg.Court.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration")
	}

	return cfg, nil
}

// reader converts viper values strictly, keeping the first failure
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = errors.Wrapf(err, "option %s", key)
	}
}

func (r *reader) floatVal(key string) float64 {
	f, err := cast.ToFloat64E(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return f
}

func (r *reader) intVal(key string) int {
	i, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return i
}

func (r *reader) boolVal(key string) bool {
	b, err := cast.ToBoolE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return b
}

func (r *reader) stringVal(key string) string {
	s, err := cast.ToStringE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return s
}
