package game

// Accuracy weighs perfect hits fully and good hits by half, over every
// note spawned. It returns false when nothing has spawned yet.
func Accuracy(perfectHits, goodHits, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(perfectHits*100+goodHits*50) / float64(total*100), true
}

// Grade maps accumulated hits to a letter grade.
func Grade(perfectHits, goodHits, total, maxCombo int) string {
	accuracy, ok := Accuracy(perfectHits, goodHits, total)
	if !ok {
		return "N/A"
	}
	switch {
	case accuracy >= 0.95 && float64(maxCombo) >= float64(total)*0.9:
		return "S"
	case accuracy >= 0.9:
		return "A"
	case accuracy >= 0.8:
		return "B"
	case accuracy >= 0.7:
		return "C"
	case accuracy >= 0.6:
		return "D"
	}
	return "F"
}
