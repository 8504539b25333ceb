package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/rhythm/internal/game"
	"golang.org/x/term"
)

const (
	fallbackCols = 80
	fallbackRows = 24
)

type DefaultRenderer struct {
	Out io.Writer // defaults to stdout

	buffer       strings.Builder
	restoreState *term.State
	canvas       *Canvas
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		state, err := term.MakeRaw(int(os.Stdout.Fd()))
		if nil != err {
			return fmt.Errorf("unable to make terminal raw: %w", err)
		}
		r.restoreState = state
	}

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// Draw paints the model onto a canvas matching the terminal and writes it.
func (r *DefaultRenderer) Draw(m *Model) {
	cols, rows := r.Size()
	if nil == r.canvas || r.canvas.vp.Width != cols || r.canvas.vp.Height != rows {
		r.canvas = NewCanvas(game.NewViewport(cols, rows))
	}
	r.canvas.Paint(m)
	r.canvas.Encode(&r.buffer)
	r.flush()
}

// RenderLoop calls render once per period until it returns false.
func (r *DefaultRenderer) RenderLoop(
	period time.Duration,
	render func(startTime time.Time, duration time.Duration) bool,
) {
	cont := true
	startTime := time.Now()
	for cont {
		now := time.Now()
		duration := now.Sub(startTime)
		deadline := now.Add(period)

		cont = render(startTime, duration)

		remainingTime := time.Until(deadline)
		time.Sleep(remainingTime)
	}
}

func (r *DefaultRenderer) flush() {
	r.out().Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}
