package systems

import (
	"fmt"
	"log"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
	"github.com/feldgrau/timegarden/pkg/types"
)

// Effect sound files.
const (
	soundRewind   = "sounds/rewind.wav"
	soundStopTime = "sounds/stoptime.wav"
)

// InteractSystem applies the feature rules when the player works a
// trigger zone. Every zone is registered at level load; an interact
// press tests the player's cell against each zone's trigger cells in
// registration order.
type InteractSystem struct {
	entityManager *ecs.EntityManager
	counters      *game.CounterState
	status        *game.StatusLine
	audio         *game.AudioManager
}

// NewInteractSystem creates the interaction system for one session.
func NewInteractSystem(em *ecs.EntityManager, counters *game.CounterState, status *game.StatusLine, audio *game.AudioManager) *InteractSystem {
	return &InteractSystem{
		entityManager: em,
		counters:      counters,
		status:        status,
		audio:         audio,
	}
}

// ProcessInteract handles one interact press at the player's cell.
func (s *InteractSystem) ProcessInteract(pos tilemap.Coord) {
	for _, id := range ecs.GetEntitiesWith1[*components.InteractZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.InteractZoneComponent](s.entityManager, id)
		if !zone.Contains(pos) {
			continue
		}

		switch zone.Feature {
		case types.FeatureForward:
			s.useForward()
		case types.FeatureBackward:
			s.useBackward()
		case types.FeatureStop:
			s.useStop()
		case types.FeatureBush:
			if bush, ok := ecs.GetComponent[*components.BushComponent](s.entityManager, id); ok {
				s.useBush(bush)
			}
		case types.FeatureCrate:
			s.useCrate()
		}
	}
}

// useForward trades potatoes for a shorter deadline and fast-forwarded
// bush growth.
func (s *InteractSystem) useForward() {
	rules := s.counters.Rules
	if !s.counters.SpendStock(rules.ForwardCost) {
		s.status.Post("NOT ENOUGH POTATOES")
		return
	}
	s.audio.PlaySound(soundRewind)

	s.counters.Deadline -= rules.ForwardRewindSeconds * config.TicksPerSecond
	if s.counters.Deadline < 0 {
		s.counters.Deadline = 0
	}
	s.shiftGrowth(-rules.ForwardShiftSeconds * config.TicksPerSecond)
	log.Printf("[Interact] Forward: deadline now %d ticks", s.counters.Deadline)
}

// useBackward trades potatoes for a longer deadline and delayed bush
// growth.
func (s *InteractSystem) useBackward() {
	rules := s.counters.Rules
	if !s.counters.SpendStock(rules.BackwardCost) {
		s.status.Post("NOT ENOUGH POTATOES")
		return
	}
	s.audio.PlaySound(soundRewind)

	s.counters.Deadline += rules.BackwardDelaySeconds * config.TicksPerSecond
	s.shiftGrowth(rules.BackwardShiftSeconds * config.TicksPerSecond)
	log.Printf("[Interact] Backward: deadline now %d ticks", s.counters.Deadline)
}

// useStop freezes the deadline. Refused while already stopped.
func (s *InteractSystem) useStop() {
	if s.counters.IsTimeStopped {
		return
	}
	if !s.counters.SpendStock(s.counters.Rules.StopCost) {
		s.status.Post("NOT ENOUGH POTATOES")
		return
	}
	s.audio.PlaySound(soundStopTime)
	s.counters.IsTimeStopped = true
	log.Printf("[Interact] Time stopped for %d ticks", s.counters.StopCountdown)
}

// useBush is the three-way bush interaction: plant when idle, harvest
// when grown, otherwise report the time left.
//
// Working a bush is refused while carrying at or above the harvest
// capacity.
func (s *InteractSystem) useBush(bush *components.BushComponent) {
	rules := s.counters.Rules
	if s.counters.Stock >= rules.HarvestCapacity {
		s.status.Post("CARRYING TOO MUCH TO WORK THE BUSH")
		return
	}

	switch {
	case !bush.IsGrown && bush.GrowTimer < 0:
		bush.GrowTimer = rules.GrowSeconds * config.TicksPerSecond
		s.status.Post("POTATO PLANTED!")
	case bush.IsGrown && bush.GrowTimer == 0:
		s.counters.AddStock(rules.HarvestYield + s.stopBonus())
		bush.Reset()
		s.status.Post("POTATOES COLLECTED!")
	default:
		s.status.Post(fmt.Sprintf("TIME LEFT TO GROW: %d", bush.GrowTimer/config.TicksPerSecond))
	}
}

// useCrate donates the largest affordable step of the halving ladder.
func (s *InteractSystem) useCrate() {
	if s.counters.Stock <= 0 {
		return
	}
	amount := DonationAmount(s.counters.Stock, s.counters.Rules.DonationStep)
	if amount == 0 {
		return
	}
	s.counters.Stock -= amount
	s.counters.Donation += amount
	s.status.Post(fmt.Sprintf("DONATED %d POTATOES", amount))
	log.Printf("[Interact] Donated %d, total %d/%d",
		amount, s.counters.Donation, s.counters.Rules.DonationGoal)
}

// shiftGrowth moves every planted, not yet grown bush's timer by
// delta ticks. A timer pushed to zero or below harvests the bush on
// the spot; one pushed past the grow duration resets it to idle.
func (s *InteractSystem) shiftGrowth(delta int) {
	rules := s.counters.Rules
	capTicks := rules.GrowSeconds * config.TicksPerSecond
	for _, id := range ecs.GetEntitiesWith1[*components.BushComponent](s.entityManager) {
		bush, _ := ecs.GetComponent[*components.BushComponent](s.entityManager, id)
		if bush.GrowTimer <= 0 {
			continue
		}
		bush.GrowTimer += delta
		if bush.GrowTimer <= 0 {
			s.counters.AddStock(rules.HarvestYield + s.stopBonus())
			bush.Reset()
		} else if bush.GrowTimer > capTicks {
			bush.Reset()
		}
	}
}

// stopBonus is the extra yield granted while time is stopped.
func (s *InteractSystem) stopBonus() int {
	if s.counters.IsTimeStopped {
		return s.counters.Rules.StopBonus
	}
	return 0
}

// DonationAmount returns the largest ladder step at or below stock,
// halving down from start. Zero means even the smallest step is out of
// reach, which only happens for a non-positive stock.
func DonationAmount(stock, start int) int {
	for step := start; step > 0; step /= 2 {
		if stock >= step {
			return step
		}
	}
	return 0
}
