package main

import (
	"time"

	"go.uber.org/zap"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
)

// session is the per-frame glue shared by both frontends: it owns pause and
// autopilot state and routes each report to the pilot and the speaker.
type session struct {
	sim       *game.Simulation
	pilot     ai.Pilot
	sounds    *audio.Player
	log       *zap.SugaredLogger
	autopilot bool
	paused    bool
	snap      game.Snapshot
}

func newSession(sim *game.Simulation, pilot ai.Pilot, autopilot bool, sounds *audio.Player, log *zap.SugaredLogger) *session {
	s := &session{
		sim:       sim,
		pilot:     pilot,
		sounds:    sounds,
		log:       log,
		autopilot: autopilot,
		snap:      sim.Snapshot(),
	}
	pilot.Observe(s.snap, game.Report{})
	if sounds != nil {
		sounds.Play(audio.SoundStart)
	}
	return s
}

func newPilot(cfg config.Config) ai.Pilot {
	if cfg.Pilot == config.PilotQLearn {
		return ai.NewLearner(0.1, 0.9, cfg.Seed)
	}
	return ai.NewAutopilot()
}

// frame advances the simulation by dt. keyboard is ignored while the
// autopilot steers; a paused session does not advance at all.
func (s *session) frame(dt time.Duration, keyboard game.Input) game.Report {
	if s.paused {
		return game.Report{}
	}
	input := keyboard
	if s.autopilot {
		input = s.pilot
	}

	r := s.sim.Step(dt, input)
	s.snap = s.sim.Snapshot()
	s.pilot.Observe(s.snap, r)
	if s.sounds != nil {
		s.sounds.OnReport(r)
	}

	if r.GameOver {
		s.log.Infow("round over",
			"cause", r.Cause,
			"score", r.Record.Score,
			"duration", r.Record.Duration(),
			"autopilot", s.autopilot)
	}
	return r
}

func (s *session) togglePause() {
	s.paused = !s.paused
	s.log.Debugw("pause toggled", "paused", s.paused)
}

func (s *session) toggleAutopilot() {
	s.autopilot = !s.autopilot
	s.log.Infow("autopilot toggled", "enabled", s.autopilot)
}

func (s *session) restart() {
	s.sim.RequestRestart()
}

func (s *session) snapshot() game.Snapshot {
	return s.snap
}

// overlay is the status line drawn over the board
func (s *session) overlay() string {
	switch {
	case s.paused:
		return "Paused (P to resume)"
	case s.autopilot:
		return "Autopilot"
	default:
		return ""
	}
}
