package game

import (
	"testing"

	"github.com/feldgrau/timegarden/pkg/config"
)

// TestNewCounterState initializes the counters from the rule set.
func TestNewCounterState(t *testing.T) {
	rules := config.DefaultGameConfig()
	cs := NewCounterState(rules)

	if cs.Stock != 1000 {
		t.Errorf("Expected Stock = 1000, got %d", cs.Stock)
	}
	if cs.Donation != 0 {
		t.Errorf("Expected Donation = 0, got %d", cs.Donation)
	}
	if cs.Deadline != 99999*config.TicksPerSecond {
		t.Errorf("Expected Deadline = %d, got %d", 99999*config.TicksPerSecond, cs.Deadline)
	}
	if cs.IsTimeStopped {
		t.Errorf("Expected time not to be stopped at session start")
	}
	if cs.StopCountdown != 25*config.TicksPerSecond {
		t.Errorf("Expected StopCountdown = %d, got %d", 25*config.TicksPerSecond, cs.StopCountdown)
	}
}

// TestSpendStock_NeverNegative: spending more than carried is refused
// and changes nothing.
func TestSpendStock_NeverNegative(t *testing.T) {
	cs := NewCounterState(config.DefaultGameConfig())
	cs.Stock = 30

	if cs.SpendStock(31) {
		t.Errorf("Expected spending 31 of 30 to be refused")
	}
	if cs.Stock != 30 {
		t.Errorf("Expected Stock untouched at 30, got %d", cs.Stock)
	}

	if !cs.SpendStock(30) {
		t.Errorf("Expected spending the whole stock to succeed")
	}
	if cs.Stock != 0 {
		t.Errorf("Expected Stock = 0, got %d", cs.Stock)
	}
	if cs.SpendStock(1) {
		t.Errorf("Expected spending from an empty stock to be refused")
	}
}

// TestRestoreSaved overwrites exactly the three persisted counters.
func TestRestoreSaved(t *testing.T) {
	cs := NewCounterState(config.DefaultGameConfig())
	cs.IsTimeStopped = true
	cs.StopCountdown = 42

	cs.RestoreSaved(111, 222, 333)

	if cs.Stock != 111 || cs.Donation != 222 || cs.Deadline != 333 {
		t.Errorf("Expected counters (111,222,333), got (%d,%d,%d)",
			cs.Stock, cs.Donation, cs.Deadline)
	}
	if !cs.IsTimeStopped || cs.StopCountdown != 42 {
		t.Errorf("Expected time-stop state untouched by a load")
	}
}
