package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Options tunes the speaker output. Gains are linear, 1.0 = unchanged.
type Options struct {
	Volume      float64
	MusicVolume float64
}

// Speaker plays cues on the system audio device through beep.
type Speaker struct {
	mu          sync.Mutex
	opts        Options
	music       *beep.Ctrl
	initialized bool
}

// Compile-time check that Speaker implements Signal.
var _ Signal = (*Speaker)(nil)

// NewSpeaker creates a speaker. Call Init before playing anything.
func NewSpeaker(opts Options) *Speaker {
	return &Speaker{opts: opts}
}

// Init opens the audio device. Calling it twice is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Play starts a one-shot cue and returns immediately.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if st := NewEffect(snd, sampleRate, s.opts.Volume); st != nil {
		speaker.Play(st)
	}
}

// StartMusic starts the background loop if it is not already playing.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.music != nil {
		return
	}
	s.music = &beep.Ctrl{Streamer: NewMusic(sampleRate, s.opts.MusicVolume)}
	speaker.Play(s.music)
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if s.music != nil {
		speaker.Lock()
		s.music.Paused = true
		speaker.Unlock()
		s.music = nil
	}
	speaker.Close()
	s.initialized = false
}
