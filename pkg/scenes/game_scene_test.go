package scenes

import (
	"testing"

	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/systems"
)

func TestHandlePause_AnyKeyResumes(t *testing.T) {
	scene := &GameScene{status: &game.StatusLine{}}

	// The pause key pauses and skips the rest of the tick.
	if !scene.handlePause(systems.InputState{Command: systems.CommandPause, AnyKey: true}) {
		t.Error("Expected the pausing tick to be skipped")
	}
	if !scene.paused {
		t.Fatal("Expected scene paused after the pause command")
	}
	if scene.status.Text() != "PAUSED" {
		t.Errorf("Expected PAUSED message, got %q", scene.status.Text())
	}

	// Ticks without input stay paused.
	if !scene.handlePause(systems.InputState{}) {
		t.Error("Expected paused ticks to be skipped")
	}
	if !scene.paused {
		t.Error("Expected scene still paused with no input")
	}

	// Held movement keys alone do not resume; only a fresh press does.
	if !scene.handlePause(systems.InputState{HasMove: true}) || !scene.paused {
		t.Error("Expected held keys without a press edge to keep the pause")
	}

	// Any pressed key resumes, and the resuming press is consumed.
	if !scene.handlePause(systems.InputState{AnyKey: true}) {
		t.Error("Expected the resuming tick to be consumed")
	}
	if scene.paused {
		t.Error("Expected scene resumed after a key press")
	}
	if scene.status.Text() != "" {
		t.Errorf("Expected pause message cleared, got %q", scene.status.Text())
	}

	// Back to normal: ordinary ticks run.
	if scene.handlePause(systems.InputState{}) {
		t.Error("Expected normal ticks to run after resuming")
	}
}
