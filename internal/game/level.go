package game

// LevelThresholds holds the score floor of each level, level 1 first.
var LevelThresholds = []int{0, 1000, 3000, 6000, 10000, 15000, 21000, 28000, 36000, 45000}

// LevelFor is 1 plus the highest index whose threshold the score has reached.
func LevelFor(score int, thresholds []int) int {
	level := 1
	for i, t := range thresholds {
		if score >= t {
			level = i + 1
		}
	}
	return level
}

// CheckLevel raises the level to match the score. Several thresholds crossed
// at once still produce a single level up.
func (s *Stats) CheckLevel(thresholds []int) (from, to int, up bool) {
	from = s.Level
	to = LevelFor(s.Score, thresholds)
	if to <= from {
		return from, from, false
	}
	s.Level = to
	return from, to, true
}

// LevelProgress is the fraction of the way from the current level's floor
// to the next one. The last level reports 1.
func LevelProgress(score, level int, thresholds []int) float64 {
	if level < 1 || level >= len(thresholds) {
		return 1
	}
	floor, next := thresholds[level-1], thresholds[level]
	p := float64(score-floor) / float64(next-floor)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ScoreMultiplier grows by 10% for every level above the first.
func ScoreMultiplier(level int) float64 {
	return 1 + 0.1*float64(level-1)
}
