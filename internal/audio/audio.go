package audio

// Player plays named sound effects. Unknown names are ignored.
type Player interface {
	Play(name string)
	Close() error
}

// Silent is used when muted or when no audio device is available.
type Silent struct{}

func (Silent) Play(string) {}

func (Silent) Close() error { return nil }
