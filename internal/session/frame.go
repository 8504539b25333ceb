package session

import (
	"git.lost.host/meutraa/rhythm/internal/fx"
	"git.lost.host/meutraa/rhythm/internal/game"
)

// Frame is everything the presentation layer needs after one tick.
type Frame struct {
	State    State
	Profile  game.Profile
	Stats    game.Stats
	Grade    string
	Progress float64 // towards the next level
	Viewport game.Viewport
	Notes    []game.Note
	Effects  []fx.Effect

	// GameOver sequence, 0 to 1
	Over     float64
	OverDone bool
	Passed   bool

	// What happened during the tick
	Sounds          []string
	Judgements      []game.Judgement
	Missed          int
	ComboMilestones int
	LevelUps        int
	Ended           bool // the session went over during this tick
	Restart         bool
	Quit            bool
}

func (s *Session) frame(f Frame) Frame {
	f.State = s.state
	f.Profile = s.profile
	f.Stats = s.stats
	f.Grade = s.stats.Grade()
	f.Progress = game.LevelProgress(s.stats.Score, s.stats.Level, s.opts.Thresholds)
	f.Viewport = s.vp
	f.Notes = s.field.Snapshot()
	f.Effects = s.effects.Effects()
	f.Passed = s.passed
	if s.state == GameOver {
		f.Over = float64(s.overElapsed) / float64(OverDuration)
		f.OverDone = s.overElapsed >= OverDuration
	}
	return f
}
