package components

// PlayerComponent marks the player entity and tracks its facing
// direction (config.DirUp..DirLeft, also the sprite sheet row).
type PlayerComponent struct {
	Direction int
}

// WalkAnimationComponent is the player's walk step state machine.
//
// One grid step takes nine ticks: the first shows frame 0, then the
// sprite is nudged by (3*m, 2*m) pixels on each following tick, with
// the walk frame advancing on every second nudge. After the last tick
// the sprite has moved exactly Multiplier tiles and the player accepts
// input again.
type WalkAnimationComponent struct {
	Active     bool
	Direction  int
	Multiplier int
	Tick       int
}

// WalkAnimationTicks is the length of the step sequence.
const WalkAnimationTicks = 9
