package systems

import (
	"log"

	"github.com/feldgrau/timegarden/pkg/components"
	"github.com/feldgrau/timegarden/pkg/config"
	"github.com/feldgrau/timegarden/pkg/ecs"
	"github.com/feldgrau/timegarden/pkg/game"
)

// ClockSystem advances the per-tick timers: the time-stop countdown,
// the deadline, the weight flag and bush growth, then checks the end
// conditions.
type ClockSystem struct {
	entityManager *ecs.EntityManager
	counters      *game.CounterState
}

// NewClockSystem creates the clock system for one session.
func NewClockSystem(em *ecs.EntityManager, counters *game.CounterState) *ClockSystem {
	return &ClockSystem{entityManager: em, counters: counters}
}

// Update runs one tick of the clock.
//
// While time is stopped only the stop countdown runs; the deadline and
// bush growth stand still. The tick the countdown reaches zero resumes
// time, reloads the countdown with the configured duration and already
// counts against the deadline.
func (s *ClockSystem) Update() {
	cs := s.counters

	if cs.IsTimeStopped {
		cs.StopCountdown--
		if cs.StopCountdown <= 0 {
			cs.IsTimeStopped = false
			cs.StopCountdown = cs.Rules.StopDurationSeconds * config.TicksPerSecond
			log.Printf("[Clock] Time resumed")
		}
	}
	if !cs.IsTimeStopped && cs.Deadline > 0 {
		cs.Deadline--
	}

	cs.Overweight = cs.Stock >= cs.Rules.WeightThreshold

	if !cs.IsTimeStopped {
		s.growBushes()
	}

	s.checkEnd()
}

// growBushes counts every planted bush down and marks it grown when
// its timer runs out.
func (s *ClockSystem) growBushes() {
	for _, id := range ecs.GetEntitiesWith1[*components.BushComponent](s.entityManager) {
		bush, _ := ecs.GetComponent[*components.BushComponent](s.entityManager, id)
		if !bush.IsGrown && bush.GrowTimer > 0 {
			bush.GrowTimer--
		}
		if bush.GrowTimer == 0 && !bush.IsGrown {
			bush.IsGrown = true
		}
	}
}

// checkEnd trips the session outcome: reaching the donation goal wins,
// running out the deadline loses. A zero goal disables the loss
// condition for sandbox levels.
func (s *ClockSystem) checkEnd() {
	cs := s.counters
	if cs.GameOver {
		return
	}
	if cs.Donation == cs.Rules.DonationGoal {
		cs.GameOver = true
		cs.GoodEnding = true
		log.Printf("[Clock] Donation goal reached, session won")
		return
	}
	if cs.Deadline == 0 && cs.Rules.DonationGoal != 0 {
		cs.GameOver = true
		cs.GoodEnding = false
		log.Printf("[Clock] Deadline expired, session lost")
	}
}
