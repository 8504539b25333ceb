package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/rhythm/internal/clock"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Difficulty  string
	Profiles    string
	Name        string
	Store       string
	Scores      string
	Keys        string
	RefreshRate float64
	Mute        bool
	Log         string
	LogLevel    string
	Seed        int64
}

func app(c *Config) *kingpin.Application {
	a := kingpin.New("rhythm", "Falling note rhythm game for the terminal")
	a.Version(Version)
	a.Flag("difficulty", "Starting difficulty").Default("normal").Short('d').StringVar(&c.Difficulty)
	a.Flag("profiles", "YAML file of extra or overriding difficulties").ExistingFileVar(&c.Profiles)
	a.Flag("name", "Player name for the high score table").Default("Player").Short('n').StringVar(&c.Name)
	a.Flag("store", "High score store").Default("yaml").EnumVar(&c.Store, "yaml", "sqlite", "gdata")
	a.Flag("scores", "High score file, defaults by store").StringVar(&c.Scores)
	a.Flag("keys", "Runes for lanes one to four").Default("dfjk").Short('k').StringVar(&c.Keys)
	a.Flag("fps", "Tick rate").Default("60").Short('R').Float64Var(&c.RefreshRate)
	a.Flag("mute", "Disable sound").Short('m').BoolVar(&c.Mute)
	a.Flag("log", "Log file, - for stderr, empty to discard").Default("rhythm.log").StringVar(&c.Log)
	a.Flag("log-level", "Log level").Default("info").EnumVar(&c.LogLevel, "debug", "info", "warn", "error", "none")
	a.Flag("seed", "Random seed, 0 picks one from the clock").Default("0").Int64Var(&c.Seed)
	return a
}

func Parse(args []string) (*Config, error) {
	c := &Config{}
	if _, err := app(c).Parse(args); nil != err {
		return nil, fmt.Errorf("unable to parse flags: %w", err)
	}
	if len([]rune(c.Keys)) != 4 {
		return nil, fmt.Errorf("expected 4 lane keys, got %q", c.Keys)
	}
	if c.RefreshRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %v", c.RefreshRate)
	}
	if c.Scores == "" {
		switch c.Store {
		case "sqlite":
			c.Scores = "./scores.db"
		case "yaml":
			c.Scores = "rhythm_scores.yaml"
		}
	}
	return c, nil
}

func (c *Config) FramePeriod() time.Duration {
	return clock.Period(c.RefreshRate)
}

func (c *Config) LaneKeys() []rune {
	return []rune(c.Keys)
}

// RandomSeed is the configured seed or one taken from now.
func (c *Config) RandomSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
