package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"snake-arcade/ai"
	"snake-arcade/config"
	"snake-arcade/game"
)

// ticksPerCell bounds a round that never ends: a pilot circling forever is
// cut off after this many ticks per board cell.
const ticksPerCell = 50

// runHeadless plays cfg.Headless rounds with the configured pilot, one tick
// per step, and prints the session statistics to out.
func runHeadless(cfg config.Config, log *zap.SugaredLogger, out io.Writer) error {
	sim, err := game.New(cfg.Config, game.WithLogger(log))
	if err != nil {
		return err
	}
	pilot := newPilot(cfg)
	pilot.Observe(sim.Snapshot(), game.Report{})

	grid := sim.Grid()
	side := 2*grid.HalfWidth - 1
	limit := cfg.Headless * side * side * ticksPerCell

	stats := sim.Stats()
	ticks := 0
	for stats.GetGamesPlayed() < cfg.Headless {
		if ticks >= limit {
			log.Warnw("headless run stopped early", "ticks", ticks, "rounds", stats.GetGamesPlayed())
			break
		}
		r := sim.Step(cfg.TickPeriod, pilot)
		pilot.Observe(sim.Snapshot(), r)
		if r.Ticked {
			ticks++
		}
		if r.GameOver {
			log.Debugw("round over", "round", stats.GetGamesPlayed(), "score", r.Record.Score, "cause", r.Cause)
		}
	}

	fmt.Fprintf(out, "pilot:    %s\n", cfg.Pilot)
	fmt.Fprintf(out, "games:    %d\n", stats.GetGamesPlayed())
	fmt.Fprintf(out, "best:     %d\n", stats.GetMaxScore())
	fmt.Fprintf(out, "average:  %.2f\n", stats.GetAverageScore())
	fmt.Fprintf(out, "median:   %.1f\n", stats.GetMedianScore())
	fmt.Fprintf(out, "duration: %v\n", stats.GetAverageDuration())
	if l, ok := pilot.(*ai.Learner); ok {
		fmt.Fprintf(out, "states:   %d\n", len(l.QTable))
		fmt.Fprintf(out, "epsilon:  %.3f\n", l.Epsilon)
	}
	return nil
}
