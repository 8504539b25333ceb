package parser

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/rhythm/internal/game"
	"gopkg.in/yaml.v3"
)

// DefaultParser reads difficulty profiles from a YAML file of the form
//
//	difficulties:
//	  - name: normal
//	    note_speed: 300
//	    ...
type DefaultParser struct{}

type profileFile struct {
	Difficulties []game.Profile `yaml:"difficulties"`
}

func (p *DefaultParser) Parse(file string) ([]game.Profile, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read profiles: %w", err)
	}
	return p.decode(data)
}

func (p *DefaultParser) decode(data []byte) ([]game.Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); nil != err {
		return nil, fmt.Errorf("unable to parse profiles: %w", err)
	}
	if len(f.Difficulties) == 0 {
		return nil, fmt.Errorf("no difficulties defined")
	}

	seen := map[string]bool{}
	for _, profile := range f.Difficulties {
		if err := profile.Validate(); nil != err {
			return nil, err
		}
		if seen[profile.Name] {
			return nil, fmt.Errorf("difficulty %q defined twice", profile.Name)
		}
		seen[profile.Name] = true
	}
	return f.Difficulties, nil
}

// Load merges the profiles in file over the presets. An empty file name
// returns the presets.
func Load(psr Parser, file string) ([]game.Profile, error) {
	if file == "" {
		return game.Presets, nil
	}
	profiles, err := psr.Parse(file)
	if nil != err {
		return game.Presets, err
	}
	return game.Merge(game.Presets, profiles), nil
}
