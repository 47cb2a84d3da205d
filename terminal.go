package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"snake-arcade/config"
	"snake-arcade/term"
)

const keyBuffer = 64

// runTerminal drives the session at cfg.FPS on a tcell screen. Key events are
// read on their own goroutine and drained once per frame.
func runTerminal(cfg config.Config, sess *session, log *zap.SugaredLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	// Restore the terminal before anything is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Errorw("terminal loop panicked", "panic", r)
			fmt.Fprintf(os.Stderr, "snake crashed: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	screen.HideCursor()
	screen.Clear()

	keys := term.NewKeys(keyBuffer)
	go keys.Listen(screen)

	renderer := term.NewRenderer(screen)
	ticker := time.NewTicker(cfg.FrameTime())
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last)
		last = now

		for _, cmd := range keys.Drain() {
			switch cmd {
			case term.CmdQuit:
				return nil
			case term.CmdPause:
				sess.togglePause()
			case term.CmdAutopilot:
				sess.toggleAutopilot()
			case term.CmdRestart:
				sess.restart()
			}
		}
		if keys.Resized() {
			screen.Sync()
		}

		sess.frame(dt, keys)
		renderer.Draw(sess.snapshot(), sess.overlay())
	}
	return nil
}
