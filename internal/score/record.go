package score

import (
	"sort"
	"time"

	"git.lost.host/meutraa/rhythm/internal/game"
)

// MaxRecords is how many scores are kept.
const MaxRecords = 5

const DateFormat = "2006-01-02 15:04"

type Record struct {
	Name       string  `yaml:"name"`
	Score      int     `yaml:"score"`
	Difficulty string  `yaml:"difficulty"`
	MaxCombo   int     `yaml:"max_combo"`
	Accuracy   float64 `yaml:"accuracy"`
	Date       string  `yaml:"date"`
}

// Store persists the high score table. Load and Save never fail: a store
// that cannot be read is empty, and a failed save keeps the previous table.
type Store interface {
	Load() []Record
	Save(r Record) []Record
	Close() error
}

func NewRecord(name, difficulty string, stats game.Stats, now time.Time) Record {
	return Record{
		Name:       name,
		Score:      stats.Score,
		Difficulty: difficulty,
		MaxCombo:   stats.MaxCombo,
		Accuracy:   stats.HitRate(),
		Date:       now.Format(DateFormat),
	}
}

// insert adds r to the table, keeping it sorted by score, highest first,
// and at most MaxRecords long. Earlier records win ties.
func insert(records []Record, r Record) []Record {
	out := make([]Record, 0, len(records)+1)
	out = append(out, records...)
	out = append(out, r)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxRecords {
		out = out[:MaxRecords]
	}
	return out
}

// Qualifies reports whether a score would enter the table.
func Qualifies(records []Record, score int) bool {
	if len(records) < MaxRecords {
		return true
	}
	return score > records[len(records)-1].Score
}
