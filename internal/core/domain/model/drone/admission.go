package drone

const (
	// MinLoadableBattery is the lowest battery percentage at which a drone may be loaded.
	MinLoadableBattery = 25
	// MaxWeightLimit caps both a drone's weight limit and a single medication's weight, in grams.
	MaxWeightLimit = 500
	// MaxBattery is a full charge.
	MaxBattery = 100
	// DefaultBattery is used when registration omits the battery level.
	DefaultBattery = MaxBattery
)

// BatteryAllowsLoading is the battery gate of the admission check.
func BatteryAllowsLoading(battery int) bool {
	return battery >= MinLoadableBattery
}

// FitsWeight reports whether incoming grams fit next to what is already on board.
func FitsWeight(onBoard, incoming, limit int) bool {
	return onBoard+incoming <= limit
}

// IsFull reports whether nothing more can be loaded.
func IsFull(onBoard, limit int) bool {
	return onBoard >= limit
}
