package game

import "github.com/feldgrau/timegarden/pkg/config"

// StatusLine is the transient advisory message under the HUD counters:
// planting feedback, growth time left, refused actions. Messages fade
// after a couple of seconds unless replaced.
type StatusLine struct {
	text      string
	ticksLeft int
}

// statusTicks is how long a message stays up.
const statusTicks = 2 * config.TicksPerSecond

// Post replaces the current message.
func (sl *StatusLine) Post(text string) {
	sl.text = text
	sl.ticksLeft = statusTicks
}

// Tick ages the current message.
func (sl *StatusLine) Tick() {
	if sl.ticksLeft > 0 {
		sl.ticksLeft--
		if sl.ticksLeft == 0 {
			sl.text = ""
		}
	}
}

// Text returns the current message, empty when nothing is up.
func (sl *StatusLine) Text() string {
	return sl.text
}
