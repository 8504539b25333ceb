package game

// Field holds the notes currently in play, in spawn order.
type Field struct {
	Notes []*Note
}

func (f *Field) Add(n Note) *Note {
	note := n
	f.Notes = append(f.Notes, &note)
	return &note
}

// Prune drops every note that has been hit or missed.
func (f *Field) Prune() {
	active := f.Notes[:0]
	for _, n := range f.Notes {
		if n.State == Falling {
			active = append(active, n)
		}
	}
	for i := len(active); i < len(f.Notes); i++ {
		f.Notes[i] = nil
	}
	f.Notes = active
}

// Snapshot copies the notes so they can be handed out of the session.
func (f *Field) Snapshot() []Note {
	notes := make([]Note, len(f.Notes))
	for i, n := range f.Notes {
		notes[i] = *n
	}
	return notes
}

func (f *Field) Len() int {
	return len(f.Notes)
}
