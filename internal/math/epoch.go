package math

// EpochLength is the fixed reward epoch (one week, in seconds). The fee
// forwarding threshold reuses the same constant.
const EpochLength uint64 = 7 * 24 * 60 * 60

// EpochStart returns the start of the epoch enclosing t.
func EpochStart(t uint64) uint64 {
	return t - t%EpochLength
}

// EpochEnd returns the exclusive end of the epoch enclosing t.
func EpochEnd(t uint64) uint64 {
	return EpochStart(t) + EpochLength
}

// TimeUntilEpochEnd is the emission duration available to a rate set at t.
// It is never zero since EpochEnd(t) > t for every t.
func TimeUntilEpochEnd(t uint64) uint64 {
	return EpochEnd(t) - t
}
