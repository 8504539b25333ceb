package main

import (
	"fmt"
	stdlog "log"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/rhythm/internal/audio"
	"git.lost.host/meutraa/rhythm/internal/config"
	"git.lost.host/meutraa/rhythm/internal/game"
	"git.lost.host/meutraa/rhythm/internal/input"
	"git.lost.host/meutraa/rhythm/internal/log"
	"git.lost.host/meutraa/rhythm/internal/parser"
	"git.lost.host/meutraa/rhythm/internal/render"
	"git.lost.host/meutraa/rhythm/internal/score"
	"git.lost.host/meutraa/rhythm/internal/session"
	"git.lost.host/meutraa/rhythm/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		stdlog.Fatalln(err)
	}
}

func names(profiles []game.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

func openStore(c *config.Config, l *log.Logger) score.Store {
	store, err := score.Open(c.Store, c.Scores, l)
	if nil != err {
		l.Errorf("%v, high scores will not be kept", err)
		return &score.Memory{}
	}
	return store
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	l, err := log.Open(c.Log, log.LevelFromString(c.LogLevel))
	if nil != err {
		return err
	}
	defer l.Close()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}

	profiles, err := parser.Load(psr, c.Profiles)
	if nil != err {
		l.Warnf("%v, using built in difficulties", err)
	}
	profile, err := game.Lookup(profiles, c.Difficulty)
	if nil != err {
		return err
	}

	bindings := input.DefaultBindings(names(profiles))
	bindings.Lanes = c.LaneKeys()
	source, err := input.OpenKeyboard(bindings, l)
	if nil != err {
		return err
	}
	defer func() {
		if err := source.Close(); nil != err {
			l.Warnf("unable to close keyboard: %v", err)
		}
	}()

	player := audio.Open(c.Mute, l)
	defer player.Close()

	store := openStore(c, l)
	defer func() {
		if err := store.Close(); nil != err {
			l.Warnf("unable to close score store: %v", err)
		}
	}()

	cols, rows := r.Size()
	seed := c.RandomSeed(time.Now())
	l.Infof("starting on %v with seed %d", profile.Name, seed)
	s := session.New(session.Options{
		Profiles: profiles,
		Profile:  profile,
		Viewport: game.NewViewport(cols, rows),
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      l,
	})

	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to set up terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			l.Errorf("unable to restore terminal: %v", err)
		}
	}()

	p := &Program{
		Renderer: r,
		Input:    source,
		Player:   player,
		Store:    store,
		Theme:    th,
		Log:      l,
		Name:     c.Name,
	}
	p.Init(s)
	p.Run(c.FramePeriod())
	return nil
}
