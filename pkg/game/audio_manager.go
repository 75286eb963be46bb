package game

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the sample rate of the shared audio context.
const SampleRate = 48000

// AudioManager plays the background music and the interaction effects.
// Audio is strictly optional: a missing file or a nil context turns
// every call into a no-op, so the game runs fine without assets or a
// sound device.
type AudioManager struct {
	audioContext *audio.Context
	assetDir     string
	players      map[string]*audio.Player
	music        *audio.Player
	muted        bool
}

// NewAudioManager creates a manager loading WAV files from assetDir.
// Pass muted=true to disable all playback.
func NewAudioManager(audioContext *audio.Context, assetDir string, muted bool) *AudioManager {
	return &AudioManager{
		audioContext: audioContext,
		assetDir:     assetDir,
		players:      make(map[string]*audio.Player),
		muted:        muted,
	}
}

// PlayMusic starts the named WAV as an infinite loop, stopping any
// music already playing.
func (am *AudioManager) PlayMusic(name string) {
	if am.muted || am.audioContext == nil {
		return
	}
	if am.music != nil {
		am.music.Pause()
		am.music = nil
	}

	f, err := os.Open(filepath.Join(am.assetDir, name))
	if err != nil {
		log.Printf("[Audio] Music %s unavailable: %v", name, err)
		return
	}
	stream, err := wav.DecodeWithoutResampling(f)
	if err != nil {
		log.Printf("[Audio] Failed to decode %s: %v", name, err)
		return
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := am.audioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[Audio] Failed to create music player for %s: %v", name, err)
		return
	}
	am.music = player
	player.Play()
}

// PlaySound plays the named WAV once, rewinding a cached player if the
// effect was played before.
func (am *AudioManager) PlaySound(name string) {
	if am.muted || am.audioContext == nil {
		return
	}

	if player, ok := am.players[name]; ok {
		if err := player.Rewind(); err != nil {
			log.Printf("[Audio] Warning: failed to rewind %s: %v", name, err)
		}
		player.Play()
		return
	}

	data, err := os.ReadFile(filepath.Join(am.assetDir, name))
	if err != nil {
		log.Printf("[Audio] Sound %s unavailable: %v", name, err)
		return
	}
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		log.Printf("[Audio] Failed to decode %s: %v", name, err)
		return
	}
	player, err := am.audioContext.NewPlayer(stream)
	if err != nil {
		log.Printf("[Audio] Failed to create player for %s: %v", name, err)
		return
	}
	am.players[name] = player
	player.Play()
}

// StopMusic pauses the background music.
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}
