// Package audio plays the game's sound cues through the raylib audio device.
package audio

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type SoundID int

const (
	SoundPop SoundID = iota
	SoundCoin
)

var soundFiles = map[SoundID]string{
	SoundPop:  "pop.wav",
	SoundCoin: "coin.wav",
}

func (id SoundID) String() string {
	switch id {
	case SoundPop:
		return "pop"
	case SoundCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// File returns the file name the sound is loaded from.
func (id SoundID) File() string {
	return soundFiles[id]
}

// Player plays a cue. Failures are swallowed: a missing sound is silence.
type Player interface {
	Play(id SoundID, pitch, volume float32)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(SoundID, float32, float32) {}

// Bank owns the raylib audio device and the loaded sounds.
type Bank struct {
	mu     sync.Mutex
	sounds map[SoundID]rl.Sound
	logger *log.Logger
}

// OpenBank initialises the audio device and loads every known sound from
// dir. Sounds that cannot be loaded are logged and skipped.
func OpenBank(dir string, logger *log.Logger) *Bank {
	rl.InitAudioDevice()
	b := &Bank{
		sounds: make(map[SoundID]rl.Sound),
		logger: logger,
	}

	for id, name := range soundFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			logger.Warn("sound unavailable", "sound", id, "path", path, "err", err)
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			logger.Warn("sound failed to load", "sound", id, "path", path)
			continue
		}
		b.sounds[id] = sound
	}
	logger.Debug("audio ready", "loaded", len(b.sounds), "dir", dir)
	return b
}

func (b *Bank) Play(id SoundID, pitch, volume float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sound, ok := b.sounds[id]
	if !ok {
		return
	}
	rl.SetSoundPitch(sound, pitch)
	rl.SetSoundVolume(sound, volume)
	rl.PlaySound(sound)
}

// Loaded returns how many sounds are available.
func (b *Bank) Loaded() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sounds)
}

// Close unloads all sounds and shuts the audio device down.
func (b *Bank) Close() {
	b.mu.Lock()
	for _, sound := range b.sounds {
		rl.UnloadSound(sound)
	}
	b.sounds = nil
	b.mu.Unlock()
	rl.CloseAudioDevice()
}
