package render

import (
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	// Size is the drawable area in cells.
	Size() (cols, rows int)
	Draw(m *Model)
	RenderLoop(period time.Duration, render func(startTime time.Time, duration time.Duration) bool)
}
