package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/logger"
	"snake-arcade/ui"
)

func main() {
	if err := run(os.Args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args[0], args[1:], os.Getenv, os.Stderr)
	if err != nil {
		return err
	}

	opts := logger.DefaultOptions()
	opts.File = cfg.LogFile
	opts.Level = cfg.LogLevel
	log, err := logger.Init(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Headless > 0 {
		return runHeadless(cfg, log.Named("headless"), os.Stdout)
	}

	sim, err := game.New(cfg.Config, game.WithLogger(log.Named("game")))
	if err != nil {
		return err
	}

	sounds := audio.NewPlayer(cfg.Mute, cfg.Volume, log.Named("audio"))
	defer sounds.Close()

	log.Infow("starting",
		"frontend", cfg.Frontend,
		"tick", cfg.TickPeriod,
		"half_width", sim.Grid().HalfWidth,
		"autopilot", cfg.Autopilot,
		"pilot", cfg.Pilot)

	sess := newSession(sim, newPilot(cfg), cfg.Autopilot, sounds, log)
	switch cfg.Frontend {
	case config.FrontendTerm:
		return runTerminal(cfg, sess, log)
	default:
		runWindow(cfg, sess, log)
		return nil
	}
}

// runWindow drives the session from the raylib frame loop until the window
// closes or Q is pressed
func runWindow(cfg config.Config, sess *session, log *zap.SugaredLogger) {
	width, height := ui.WindowSize(cfg.Grid())
	rl.InitWindow(width, height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(cfg.Grid())
	keyboard := ui.Keyboard{}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) {
			sess.togglePause()
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			sess.toggleAutopilot()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			sess.restart()
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		sess.frame(dt, keyboard)
		renderer.Draw(sess.snapshot(), sess.overlay())
	}

	stats := sess.sim.Stats()
	log.Infow("window closed",
		"games", stats.GetGamesPlayed(),
		"best", stats.GetMaxScore(),
		"average", stats.GetAverageScore())
}
