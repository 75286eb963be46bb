package components

// BushComponent is the growth state of one potato bush.
//
// GrowTimer is in ticks: BushIdleTimer (-1) means nothing is planted,
// a positive value counts down toward harvest, 0 with IsGrown set
// means ready to pick.
type BushComponent struct {
	IsGrown   bool
	GrowTimer int
}

// BushIdleTimer is the GrowTimer value of an unplanted bush.
const BushIdleTimer = -1

// NewBushComponent returns an idle bush.
func NewBushComponent() *BushComponent {
	return &BushComponent{IsGrown: false, GrowTimer: BushIdleTimer}
}

// Reset returns the bush to its unplanted state.
func (b *BushComponent) Reset() {
	b.IsGrown = false
	b.GrowTimer = BushIdleTimer
}
