// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"spelling-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

const ms = time.Millisecond

// Cues maps each event to its sound
var Cues = map[game.Event]Cue{
	game.Started: {
		{Freq: 440, Duration: 100 * ms, Volume: 0.3},
		{Freq: 550, Offset: 100 * ms, Duration: 100 * ms, Volume: 0.3},
		{Freq: 660, Offset: 200 * ms, Duration: 150 * ms, Volume: 0.3},
	},
	game.LetterAdvanced: {
		{Freq: 523.25, Duration: 150 * ms, Volume: 0.4},
		{Freq: 659.25, Offset: 100 * ms, Duration: 150 * ms, Volume: 0.4},
	},
	game.DecoyHit: {
		{Freq: 200, Duration: 200 * ms, Wave: WaveTriangle, Volume: 0.2},
	},
	game.WordComplete: {
		{Freq: 523.25, Duration: 250 * ms, Volume: 0.35},
		{Freq: 659.25, Offset: 120 * ms, Duration: 250 * ms, Volume: 0.35},
		{Freq: 783.99, Offset: 240 * ms, Duration: 250 * ms, Volume: 0.35},
		{Freq: 1046.50, Offset: 360 * ms, Duration: 250 * ms, Volume: 0.35},
	},
	game.LifeRestored: {
		{Freq: 659.25, Duration: 120 * ms, Volume: 0.3},
		{Freq: 880, Offset: 90 * ms, Duration: 180 * ms, Volume: 0.3},
	},
	game.GameOver: {
		{Freq: 300, Duration: 300 * ms, Wave: WaveSaw, Volume: 0.25},
		{Freq: 200, Offset: 200 * ms, Duration: 400 * ms, Wave: WaveSaw, Volume: 0.2},
		{Freq: 150, Offset: 400 * ms, Duration: 500 * ms, Wave: WaveSaw, Volume: 0.15},
	},
}

// SoundManager is a presentation sink that turns snapshot events into sound.
// Without a working output device it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	played      int
}

func NewSoundManager(enabled bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize opens the speaker. Failure is not fatal to the game.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops playback and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Toggle flips muting and returns whether sound is now on
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	log.Debug().Bool("sound", sm.enabled).Msg("sound toggled")
	return sm.enabled
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Played counts cues accepted while enabled, including those dropped for
// lack of a device
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Present implements game.Sink
func (sm *SoundManager) Present(snap game.Snapshot) {
	cue, ok := Cues[snap.Event]
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.enabled {
		return
	}
	sm.played++
	if !sm.initialized {
		return
	}

	stream := Render(cue, sampleRate)
	speaker.Lock()
	sm.mixer.Add(stream)
	speaker.Unlock()
}
