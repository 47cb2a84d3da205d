package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"snake-arcade/game"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "SNAKE_"

const (
	FrontendRaylib = "raylib"
	FrontendTerm   = "term"
)

const (
	PilotGreedy = "greedy"
	PilotQLearn = "qlearn"
)

var (
	ErrInvalidFrontend = errors.New("unknown frontend")
	ErrInvalidFPS      = errors.New("fps must be positive")
	ErrInvalidPilot    = errors.New("unknown pilot")
	ErrInvalidVolume   = errors.New("volume must be within [0, 1]")
	ErrInvalidHeadless = errors.New("headless rounds cannot be negative")
	ErrInvalidEnv      = errors.New("invalid environment override")
)

// Config is the process configuration. It is read once at startup.
type Config struct {
	game.Config

	Frontend  string
	FPS       int
	LogFile   string
	LogLevel  string
	Mute      bool
	Volume    float64
	Autopilot bool
	Pilot     string
	Headless  int // Rounds to play without a window; 0 opens one
}

func Default() Config {
	return Config{
		Config:   game.DefaultConfig(),
		Frontend: FrontendRaylib,
		FPS:      60,
		LogFile:  "snake.log",
		LogLevel: "info",
		Volume:   0.5,
		Pilot:    PilotGreedy,
	}
}

// Load builds the configuration from defaults, then SNAKE_* environment
// variables, then command line flags.
func Load(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()
	if getenv != nil {
		if err := cfg.applyEnv(getenv); err != nil {
			return cfg, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend: raylib or term")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	fs.DurationVar(&cfg.TickPeriod, "tick", cfg.TickPeriod, "Time between snake moves")
	fs.Float64Var(&cfg.PlayArea, "play-area", cfg.PlayArea, "Play area side in pixels")
	fs.Float64Var(&cfg.CellSize, "cell", cfg.CellSize, "Cell side in pixels")
	fs.IntVar(&cfg.RecentScores, "scores", cfg.RecentScores, "High score table size")
	fs.DurationVar(&cfg.RestartDelay, "restart-delay", cfg.RestartDelay, "Pause between game over and the next round")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Fruit placement seed (0 = time based)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (empty disables logging)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume from 0 to 1")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the computer steer")
	fs.StringVar(&cfg.Pilot, "pilot", cfg.Pilot, "Computer player: greedy or qlearn")
	fs.IntVar(&cfg.Headless, "headless", cfg.Headless, "Play N computer rounds without a window and print stats")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks process settings and the embedded game constants
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendRaylib, FrontendTerm:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrontend, c.Frontend)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	switch c.Pilot {
	case PilotGreedy, PilotQLearn:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPilot, c.Pilot)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Volume)
	}
	if c.Headless < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeadless, c.Headless)
	}
	return c.Config.Validate()
}

// FrameTime is the nominal duration of one frame
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	var errs []error
	parse := func(key string, set func(string) error) {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		if err := set(v); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidEnv, EnvPrefix, key, v, err))
		}
	}

	str("FRONTEND", &c.Frontend)
	str("LOG_FILE", &c.LogFile)
	str("LOG_LEVEL", &c.LogLevel)
	str("PILOT", &c.Pilot)
	parse("FPS", func(v string) (err error) { c.FPS, err = strconv.Atoi(v); return })
	parse("TICK", func(v string) (err error) { c.TickPeriod, err = time.ParseDuration(v); return })
	parse("PLAY_AREA", func(v string) (err error) { c.PlayArea, err = strconv.ParseFloat(v, 64); return })
	parse("CELL", func(v string) (err error) { c.CellSize, err = strconv.ParseFloat(v, 64); return })
	parse("SCORES", func(v string) (err error) { c.RecentScores, err = strconv.Atoi(v); return })
	parse("RESTART_DELAY", func(v string) (err error) { c.RestartDelay, err = time.ParseDuration(v); return })
	parse("SEED", func(v string) (err error) { c.Seed, err = strconv.ParseUint(v, 10, 64); return })
	parse("MUTE", func(v string) (err error) { c.Mute, err = strconv.ParseBool(v); return })
	parse("VOLUME", func(v string) (err error) { c.Volume, err = strconv.ParseFloat(v, 64); return })
	parse("AUTOPILOT", func(v string) (err error) { c.Autopilot, err = strconv.ParseBool(v); return })
	parse("HEADLESS", func(v string) (err error) { c.Headless, err = strconv.Atoi(v); return })

	return errors.Join(errs...)
}
