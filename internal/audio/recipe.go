package audio

import "math"

// tone is one decaying sine burst. Period is in samples per radian, so a
// larger period is a lower pitch.
type tone struct {
	offset, length int
	amp            float64 // 0 to 1
	period         float64
	decay          float64 // samples per e-fold
	descend        bool    // phase runs backwards from length
	warble         int     // every warble samples the first half is scaled
	warbleGain     float64
}

type recipe struct {
	tones  []tone
	volume float64
}

var recipes = map[string]recipe{
	"perfect": {volume: 0.4, tones: []tone{
		{offset: 0, length: 5000, amp: 1, period: 10, decay: 4000},
		{offset: 5000, length: 5000, amp: 1, period: 8, decay: 4000},
		{offset: 10000, length: 5000, amp: 1, period: 6, decay: 4000},
	}},
	"good": {volume: 0.3, tones: []tone{
		{length: 8000, amp: 1, period: 12, decay: 4000},
	}},
	"miss": {volume: 0.3, tones: []tone{
		{length: 10000, amp: 1, period: 8, decay: 8000, descend: true},
	}},
	"level_up": {volume: 0.5, tones: []tone{
		{offset: 0, length: 5000, amp: 0.6, period: 4, decay: 10000},
		{offset: 5000, length: 5000, amp: 0.6, period: 3, decay: 10000},
		{offset: 10000, length: 10000, amp: 0.6, period: 2, decay: 10000},
	}},
	"combo": {volume: 0.4, tones: []tone{
		{offset: 0, length: 2000, amp: 0.6, period: 10, decay: 2000},
		{offset: 2000, length: 2000, amp: 0.6, period: 8, decay: 2000},
		{offset: 4000, length: 2000, amp: 0.6, period: 6, decay: 2000},
	}},
	"game_over": {volume: 0.5, tones: []tone{
		{length: 20000, amp: 0.6, period: 2, decay: 15000, descend: true, warble: 1000, warbleGain: 0.7},
	}},
	"bird": {volume: 0.4, tones: []tone{
		{offset: 0, length: 1000, amp: 0.6, period: 2, decay: 500},
		{offset: 1500, length: 1000, amp: 0.6, period: 1.5, decay: 500},
	}},
	"frog": {volume: 0.4, tones: []tone{
		{length: 3000, amp: 0.6, period: 20, decay: 2000, warble: 200, warbleGain: 0.7},
	}},
	"rabbit": {volume: 0.4, tones: []tone{
		{length: 1000, amp: 0.3, period: 8, decay: 500},
	}},
	"cat": {volume: 0.4, tones: []tone{
		{length: 5000, amp: 0.45, period: 15, decay: 4000, descend: true, warble: 500, warbleGain: 1.2},
	}},
}

// Names lists every sound a Synth can play.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	return names
}

// render produces mono samples in [-1, 1].
func (r recipe) render() []float64 {
	n := 0
	for _, t := range r.tones {
		if end := t.offset + t.length; end > n {
			n = end
		}
	}
	out := make([]float64, n)
	for _, t := range r.tones {
		for i := 0; i < t.length; i++ {
			phase := float64(i)
			if t.descend {
				phase = float64(t.length - i)
			}
			v := t.amp * math.Sin(phase/t.period) * math.Exp(-float64(i)/t.decay)
			if t.warble > 0 && i%t.warble < t.warble/2 {
				v *= t.warbleGain
			}
			out[t.offset+i] = clamp(v * r.volume)
		}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
