package testdata

import (
	"os"
	"path/filepath"
)

// Profiles overrides one preset and adds a new difficulty.
const Profiles = `difficulties:
  - name: normal
    note_speed: 330
    spawn_interval_min: 0.5
    spawn_interval_max: 1.2
    perfect_window: 15
    good_window: 30
    notes_to_pass: 80
    accuracy_to_pass: 75
  - name: insane
    note_speed: 900
    spawn_interval_min: 0.1
    spawn_interval_max: 0.3
    perfect_window: 5
    good_window: 10
    notes_to_pass: 400
    accuracy_to_pass: 92
`

// Scores is an unsorted table with one record too many.
const Scores = `- name: ada
  score: 1200
  difficulty: normal
  max_combo: 31
  accuracy: 88.5
  date: "2024-03-01 10:00"
- name: bob
  score: 5400
  difficulty: hard
  max_combo: 80
  accuracy: 91.2
  date: "2024-03-02 11:30"
- name: cy
  score: 300
  difficulty: easy
  max_combo: 9
  accuracy: 60
  date: "2024-03-03 09:15"
- name: dee
  score: 2500
  difficulty: normal
  max_combo: 44
  accuracy: 79.9
  date: "2024-03-04 20:45"
- name: eve
  score: 900
  difficulty: easy
  max_combo: 20
  accuracy: 85
  date: "2024-03-05 08:00"
- name: fay
  score: 100
  difficulty: easy
  max_combo: 3
  accuracy: 40
  date: "2024-03-06 07:00"
`

// Write puts a fixture into dir and returns its path.
func Write(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); nil != err {
		return "", err
	}
	return path, nil
}
