package fx

import "time"

// Registry owns every live effect.
type Registry struct {
	effects []Effect
}

func (r *Registry) Add(e Effect) {
	r.effects = append(r.effects, e)
}

// Update ages all effects and drops the expired ones.
func (r *Registry) Update(dt time.Duration) {
	live := r.effects[:0]
	for _, e := range r.effects {
		if e.Update(dt) {
			live = append(live, e)
		}
	}
	r.effects = live
}

// Effects returns a copy of the live effects in creation order.
func (r *Registry) Effects() []Effect {
	out := make([]Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Count returns how many live effects are of kind k.
func (r *Registry) Count(k Kind) int {
	n := 0
	for _, e := range r.effects {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	return len(r.effects)
}

func (r *Registry) Clear() {
	r.effects = nil
}
