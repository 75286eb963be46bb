// Package types defines shared base types.
// It depends on no other project package, so it can be imported from
// anywhere without creating cycles.
package types

// FeatureType identifies an interactive map feature.
type FeatureType int

const (
	// FeatureUnknown is any feature tag the game does not recognize.
	FeatureUnknown FeatureType = iota
	// FeatureBush is a potato bush: plant, wait, harvest.
	FeatureBush
	// FeatureForward winds time forward, trading deadline for growth.
	FeatureForward
	// FeatureBackward winds time backward, buying deadline at a cost.
	FeatureBackward
	// FeatureStop freezes the deadline for a while.
	FeatureStop
	// FeatureCrate is the donation drop-off point.
	FeatureCrate
)

// ParseFeatureType maps a level item's name tag to its feature type.
// Unrecognized tags, including the empty string, map to FeatureUnknown.
func ParseFeatureType(name string) FeatureType {
	switch name {
	case "bush":
		return FeatureBush
	case "forward":
		return FeatureForward
	case "backward":
		return FeatureBackward
	case "stop":
		return FeatureStop
	case "crate":
		return FeatureCrate
	default:
		return FeatureUnknown
	}
}

// String returns the feature's name tag.
func (f FeatureType) String() string {
	switch f {
	case FeatureBush:
		return "bush"
	case FeatureForward:
		return "forward"
	case FeatureBackward:
		return "backward"
	case FeatureStop:
		return "stop"
	case FeatureCrate:
		return "crate"
	default:
		return "unknown"
	}
}
