package session

import (
	"errors"
	"math/rand"
	"time"

	"git.lost.host/meutraa/rhythm/internal/fx"
	"git.lost.host/meutraa/rhythm/internal/game"
	rlog "git.lost.host/meutraa/rhythm/internal/log"
)

type State uint8

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "playing"
}

// OverDuration is the length of the game over sequence.
const OverDuration = 2 * time.Second

var ErrGameOver = errors.New("session is over")

// Symbolic sound names handed to the audio collaborator.
const (
	SoundPerfect  = "perfect"
	SoundGood     = "good"
	SoundMiss     = "miss"
	SoundLevelUp  = "level_up"
	SoundCombo    = "combo"
	SoundGameOver = "game_over"
)

type Options struct {
	Profiles   []game.Profile // Selectable difficulties, progression order
	Profile    game.Profile
	Viewport   game.Viewport
	Thresholds []int
	Rand       *rand.Rand
	Log        *rlog.Logger
}

// Session owns all mutable state of one game, from the first note to the
// end of the game over sequence.
type Session struct {
	opts    Options
	profile game.Profile
	vp      game.Viewport
	rng     *rand.Rand
	log     *rlog.Logger

	state   State
	stats   game.Stats
	field   game.Field
	spawner *game.Spawner
	effects fx.Registry

	overElapsed time.Duration
	passed      bool
}

func New(opts Options) *Session {
	if len(opts.Profiles) == 0 {
		opts.Profiles = game.Presets
	}
	if opts.Profile.Name == "" {
		opts.Profile, _ = game.Lookup(opts.Profiles, game.DefaultProfile)
		if opts.Profile.Name == "" {
			opts.Profile = opts.Profiles[0]
		}
	}
	if len(opts.Thresholds) == 0 {
		opts.Thresholds = game.LevelThresholds
	}
	if opts.Viewport.ScaleX == 0 {
		opts.Viewport = game.NewViewport(game.BaseWidth, game.BaseHeight)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Log == nil {
		opts.Log = rlog.Discard()
	}

	s := &Session{
		opts: opts,
		vp:   opts.Viewport,
		rng:  opts.Rand,
		log:  opts.Log,
	}
	s.profile = opts.Profile
	s.Reset()
	return s
}

// Reset returns every piece of game state to its initial value, keeping
// the selected difficulty and viewport.
func (s *Session) Reset() {
	s.state = Playing
	s.stats = game.NewStats()
	s.field = game.Field{}
	s.spawner = game.NewSpawner()
	s.effects.Clear()
	s.overElapsed = 0
	s.passed = false
	s.log.Infof("session started on %v", s.profile.Name)
}

// Next builds the session that follows this one on restart. The difficulty
// is kept unless this run cleared it, in which case the next one is picked.
func (s *Session) Next() *Session {
	opts := s.opts
	opts.Viewport = s.vp
	opts.Profile = s.profile
	if s.passed {
		opts.Profile = game.NextProfile(s.opts.Profiles, s.profile.Name)
		s.log.Infof("%v cleared, moving on to %v", s.profile.Name, opts.Profile.Name)
	}
	return New(opts)
}

// Tick applies the events of one tick in order, then advances time by dt.
func (s *Session) Tick(events []game.Event, dt time.Duration) Frame {
	f := Frame{}
	for _, ev := range events {
		s.handle(ev, &f)
	}

	switch s.state {
	case Playing:
		s.advance(dt, &f)
	case GameOver:
		if f.Ended {
			break
		}
		s.overElapsed += dt
		if s.overElapsed > OverDuration {
			s.overElapsed = OverDuration
		}
	}

	// Health is only checked once everything in the tick has settled,
	// including a pause that came after a fatal press.
	if s.state != GameOver && s.stats.Dead() {
		s.end(&f)
	}

	return s.frame(f)
}

func (s *Session) handle(ev game.Event, f *Frame) {
	switch ev.Kind {
	case game.LanePress:
		switch {
		case s.state == GameOver:
			s.skipOver()
		case s.state == Playing && ev.Lane >= 0 && ev.Lane < game.Lanes:
			s.press(ev.Lane, f)
		}
	case game.PauseToggle:
		switch s.state {
		case Playing:
			s.state = Paused
			s.log.Debugf("paused")
		case Paused:
			s.state = Playing
			s.log.Debugf("resumed")
		case GameOver:
			if s.skipOver() {
				f.Quit = true
			}
		}
	case game.DifficultySelect:
		if err := s.SetDifficulty(ev.Difficulty); nil != err {
			s.log.Debugf("difficulty %q ignored: %v", ev.Difficulty, err)
		}
	case game.Quit:
		f.Quit = true
	case game.Restart:
		if s.state == GameOver && s.skipOver() {
			f.Restart = true
		}
	case game.Skip:
		if s.state == GameOver {
			s.skipOver()
		}
	}
}

// skipOver ends the game over sequence early. It reports whether the
// sequence had already finished.
func (s *Session) skipOver() bool {
	if s.overElapsed >= OverDuration {
		return true
	}
	s.overElapsed = OverDuration
	return false
}

func (s *Session) press(lane int, f *Frame) {
	j := game.Judge(lane, s.field.Notes, s.profile, s.vp.TargetY(), &s.stats)
	if j.Outcome == game.None {
		return
	}
	f.Judgements = append(f.Judgements, j)

	x, y := s.vp.LaneX(lane), s.vp.TargetY()
	s.effects.Add(fx.NewHitText(x, y, j))
	switch j.Outcome {
	case game.Perfect:
		animal := fx.NewCelebration(x, y-20, lane, 1)
		s.effects.Add(animal)
		f.Sounds = append(f.Sounds, animal.Animal.String(), SoundPerfect)
	case game.Good:
		s.effects.Add(fx.NewCelebration(x, y-10, lane, 0.7))
		f.Sounds = append(f.Sounds, SoundGood)
	case game.Miss:
		f.Sounds = append(f.Sounds, SoundMiss)
	}

	if j.ComboMilestone {
		s.effects.Add(fx.NewComboBanner(game.BaseWidth/2, game.BaseHeight/2, j.Combo))
		f.Sounds = append(f.Sounds, SoundCombo)
		f.ComboMilestones++
	}

	s.checkLevel(f)
}

func (s *Session) checkLevel(f *Frame) {
	from, to, up := s.stats.CheckLevel(s.opts.Thresholds)
	if !up {
		return
	}
	s.effects.Add(fx.NewLevelBanner(from, to))
	f.Sounds = append(f.Sounds, SoundLevelUp)
	f.LevelUps++
	s.log.Infof("level %d -> %d at %d points", from, to, s.stats.Score)
}

func (s *Session) advance(dt time.Duration, f *Frame) {
	s.effects.Update(dt)

	if n, ok := s.spawner.TrySpawn(dt, s.profile, s.rng); ok {
		s.field.Add(n)
		s.stats.TotalNotesSpawned++
	}

	targetY := s.vp.TargetY()
	for _, n := range s.field.Notes {
		n.Advance(dt)
		if n.PastWindow(targetY, s.profile.GoodWindow) {
			n.State = game.Missed
			s.stats.MissNote()
			f.Missed++
		}
	}
	s.field.Prune()
}

func (s *Session) end(f *Frame) {
	s.state = GameOver
	s.overElapsed = 0
	s.effects.Clear()
	s.passed = s.profile.Passed(&s.stats)
	f.Ended = true
	f.Sounds = append(f.Sounds, SoundGameOver)
	s.log.Infof("game over: score %d, level %d, max combo %d, grade %v",
		s.stats.Score, s.stats.Level, s.stats.MaxCombo, s.stats.Grade())
}

// SetDifficulty swaps the profile used for new spawns and for judgement.
// Notes already falling keep their speed.
func (s *Session) SetDifficulty(name string) error {
	if s.state == GameOver {
		return ErrGameOver
	}
	p, err := game.Lookup(s.opts.Profiles, name)
	if nil != err {
		return err
	}
	s.profile = p
	s.log.Infof("difficulty set to %v", p.Name)
	return nil
}

// Resize takes a new viewport. Note positions are logical and need no
// adjustment.
func (s *Session) Resize(vp game.Viewport) {
	s.vp = vp
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Stats() game.Stats {
	return s.stats
}

func (s *Session) Profile() game.Profile {
	return s.profile
}

func (s *Session) Viewport() game.Viewport {
	return s.vp
}
