package audio

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/rhythm/internal/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Synth renders every effect once into memory and mixes them on the speaker.
type Synth struct {
	buffers map[string]*beep.Buffer
	mixer   *beep.Mixer
	log     *log.Logger
	open    bool
}

func NewSynth(l *log.Logger) *Synth {
	if nil == l {
		l = log.Discard()
	}
	s := &Synth{
		buffers: map[string]*beep.Buffer{},
		mixer:   &beep.Mixer{},
		log:     l,
	}
	for name, r := range recipes {
		s.buffers[name] = bufferOf(r.render())
	}
	return s
}

func bufferOf(samples []float64) *beep.Buffer {
	b := beep.NewBuffer(format)
	pos := 0
	b.Append(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(out, samples[pos:])
		pos += n
		return n, true
	}))
	return b
}

func copy2(out [][2]float64, in []float64) int {
	n := len(out)
	if len(in) < n {
		n = len(in)
	}
	for i := 0; i < n; i++ {
		out[i][0] = in[i]
		out[i][1] = in[i]
	}
	return n
}

// Init opens the audio device.
func (s *Synth) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open audio device: %w", err)
	}
	speaker.Play(s.mixer)
	s.open = true
	return nil
}

// Streamer returns a fresh streamer for a sound, or nil if unknown.
func (s *Synth) Streamer(name string) beep.StreamSeeker {
	b, ok := s.buffers[name]
	if !ok {
		return nil
	}
	return b.Streamer(0, b.Len())
}

func (s *Synth) Play(name string) {
	streamer := s.Streamer(name)
	if nil == streamer {
		s.log.Debugf("audio: unknown sound %v", name)
		return
	}
	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

func (s *Synth) Close() error {
	if !s.open {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.open = false
	return nil
}

// Open returns a working synth, or Silent when muted or when the device
// cannot be opened.
func Open(mute bool, l *log.Logger) Player {
	if nil == l {
		l = log.Discard()
	}
	if mute {
		l.Infof("audio: muted")
		return Silent{}
	}
	s := NewSynth(l)
	if err := s.Init(); nil != err {
		l.Warnf("audio: %v, continuing without sound", err)
		return Silent{}
	}
	return s
}
