package pallet

// FillStatus is a derived label describing how full a pallet is.
// It is computed from the fill percentage and never stored.
type FillStatus int

const (
	// FillStatusEmpty indicates a pallet with nothing on it.
	FillStatusEmpty FillStatus = iota

	// FillStatusLowFill indicates a fill percentage below 50%.
	FillStatusLowFill

	// FillStatusPartiallyFilled indicates a fill percentage of at least 50%.
	FillStatusPartiallyFilled

	// FillStatusNearlyFull indicates a fill percentage of at least 80%.
	FillStatusNearlyFull

	// FillStatusFull indicates a fill percentage of 100%.
	FillStatusFull
)

// Fill percentage thresholds for the derived labels.
const (
	partiallyFilledThreshold = 50.0
	nearlyFullThreshold      = 80.0
	fullThreshold            = 100.0
)

// getFillStatusStrings returns a map of FillStatus values to their string representations.
func getFillStatusStrings() map[FillStatus]string {
	return map[FillStatus]string{
		FillStatusEmpty:           "Empty",
		FillStatusLowFill:         "LowFill",
		FillStatusPartiallyFilled: "PartiallyFilled",
		FillStatusNearlyFull:      "NearlyFull",
		FillStatusFull:            "Full",
	}
}

// String returns the human-readable name of the fill status.
// This method implements the fmt.Stringer interface.
func (s FillStatus) String() string {
	if str, ok := getFillStatusStrings()[s]; ok {
		return str
	}
	return "Empty"
}

// deriveFillStatus maps a fill percentage onto the label scale.
func deriveFillStatus(fillPercentage float64) FillStatus {
	switch {
	case fillPercentage <= 0:
		return FillStatusEmpty
	case fillPercentage >= fullThreshold:
		return FillStatusFull
	case fillPercentage >= nearlyFullThreshold:
		return FillStatusNearlyFull
	case fillPercentage >= partiallyFilledThreshold:
		return FillStatusPartiallyFilled
	default:
		return FillStatusLowFill
	}
}
