// Package game holds the session-level managers: counters, image and
// audio caches, save slots and the scene stack.
package game

import (
	"github.com/feldgrau/timegarden/pkg/config"
)

// CounterState is the mutable resource state of one game session.
// It is owned by the running game scene and mutated only from the tick
// loop; a new session gets a fresh instance.
type CounterState struct {
	Rules *config.GameConfig

	// Stock is the number of potatoes carried. Never negative.
	Stock int

	// Donation is the running total dropped into the crate; the
	// session is won when it reaches Rules.DonationGoal.
	Donation int

	// Deadline is the remaining time in ticks, floored at 0.
	Deadline int

	// IsTimeStopped freezes the deadline while true.
	IsTimeStopped bool

	// StopCountdown is the remaining stopped time in ticks.
	StopCountdown int

	// Overweight is derived every tick: carrying at least
	// Rules.WeightThreshold potatoes disables running.
	Overweight bool

	// GameOver and GoodEnding record the session outcome once the end
	// condition check trips.
	GameOver   bool
	GoodEnding bool
}

// NewCounterState starts a session with the configured rules.
func NewCounterState(rules *config.GameConfig) *CounterState {
	return &CounterState{
		Rules:         rules,
		Stock:         rules.StartingStock,
		Donation:      0,
		Deadline:      rules.DeadlineSeconds * config.TicksPerSecond,
		StopCountdown: rules.StopDurationSeconds * config.TicksPerSecond,
	}
}

// SpendStock deducts amount if the stock covers it. Returns false and
// leaves the stock untouched otherwise, so the stock can never go
// negative.
func (cs *CounterState) SpendStock(amount int) bool {
	if cs.Stock < amount {
		return false
	}
	cs.Stock -= amount
	return true
}

// AddStock adds harvested potatoes to the stock.
func (cs *CounterState) AddStock(amount int) {
	cs.Stock += amount
}

// DeadlineSecondsLeft is the remaining deadline in whole seconds, for
// the HUD.
func (cs *CounterState) DeadlineSecondsLeft() int {
	return cs.Deadline / config.TicksPerSecond
}

// StopSecondsLeft is the remaining stopped time in whole seconds.
func (cs *CounterState) StopSecondsLeft() int {
	return cs.StopCountdown / config.TicksPerSecond
}

// RestoreSaved overwrites the three persisted counters from a save
// record. All other state keeps its current values.
func (cs *CounterState) RestoreSaved(stock, donation, deadline int) {
	cs.Stock = stock
	cs.Donation = donation
	cs.Deadline = deadline
}
