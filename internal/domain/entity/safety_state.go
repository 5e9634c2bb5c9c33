package entity

// SafetyState is the derived position of a device relative to its safe zone.
type SafetyState int

const (
	// SafetyStateUnknown is the state before the first comparison completes.
	SafetyStateUnknown SafetyState = iota
	// SafetyStateSafe means the device is within the configured radius.
	SafetyStateSafe
	// SafetyStateUnsafe means the device is outside the configured radius.
	SafetyStateUnsafe
)

// String returns the lower-case name of the state.
func (s SafetyState) String() string {
	switch s {
	case SafetyStateSafe:
		return "safe"
	case SafetyStateUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}
