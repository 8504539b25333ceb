package main

import (
	"time"

	"git.lost.host/meutraa/rhythm/internal/audio"
	"git.lost.host/meutraa/rhythm/internal/clock"
	"git.lost.host/meutraa/rhythm/internal/game"
	"git.lost.host/meutraa/rhythm/internal/input"
	"git.lost.host/meutraa/rhythm/internal/log"
	"git.lost.host/meutraa/rhythm/internal/render"
	"git.lost.host/meutraa/rhythm/internal/score"
	"git.lost.host/meutraa/rhythm/internal/session"
	"git.lost.host/meutraa/rhythm/internal/theme"
)

// Program drives one session per tick: drain input, tick, draw, then
// hand sounds and finished runs to their collaborators.
type Program struct {
	Renderer render.Renderer
	Input    input.Source
	Player   audio.Player
	Store    score.Store
	Theme    theme.Theme
	Log      *log.Logger
	Name     string
	Now      func() time.Time

	session *session.Session
	clock   *clock.Clock
	scores  []score.Record
}

func (p *Program) Init(s *session.Session) {
	if nil == p.Now {
		p.Now = time.Now
		p.clock = clock.New()
	} else {
		p.clock = clock.WithSource(p.Now)
	}
	p.session = s
	p.scores = p.Store.Load()
	p.Log.Infof("loaded %d high scores", len(p.scores))
}

// resize checks the drawable area once per tick.
func (p *Program) resize() {
	cols, rows := p.Renderer.Size()
	vp := p.session.Viewport()
	if vp.Width == cols && vp.Height == rows {
		return
	}
	p.Log.Debugf("resized to %dx%d", cols, rows)
	p.session.Resize(game.NewViewport(cols, rows))
}

// Step runs a single tick. It returns false once the player quits.
func (p *Program) Step(dt time.Duration) bool {
	p.resize()

	events := p.Input.Poll()
	f := p.session.Tick(events, dt)

	p.Renderer.Draw(render.Compose(f, p.Theme))

	for _, name := range f.Sounds {
		p.Player.Play(name)
	}

	if f.Ended {
		p.save(f)
	}
	if f.Quit {
		p.Log.Infof("quit")
		return false
	}
	if f.Restart {
		p.session = p.session.Next()
	}
	return true
}

func (p *Program) save(f session.Frame) {
	if !score.Qualifies(p.scores, f.Stats.Score) {
		p.Log.Infof("score %d did not make the table", f.Stats.Score)
		return
	}
	p.scores = p.Store.Save(score.NewRecord(p.Name, f.Profile.Name, f.Stats, p.Now()))
	for i, r := range p.scores {
		p.Log.Infof("%d. %-12s %7d %-7s %5.1f%% %s", i+1, r.Name, r.Score, r.Difficulty, r.Accuracy, r.Date)
	}
}

// Run ticks at the given period until the player quits.
func (p *Program) Run(period time.Duration) {
	p.Renderer.RenderLoop(period, func(startTime time.Time, duration time.Duration) bool {
		return p.Step(p.clock.Tick())
	})
}

func (p *Program) Session() *session.Session {
	return p.session
}

func (p *Program) Scores() []score.Record {
	return p.scores
}
