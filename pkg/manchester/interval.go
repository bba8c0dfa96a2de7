package manchester

// SamplesPerHalfBit is the fixed sampling ratio: three samples per half bit
// period. It gives one third of a half period tolerance on either side of an
// expected edge and still leaves a third where the signal is stable.
const SamplesPerHalfBit = 3

// tolerance is the accepted jitter around the nominal edge distances,
// in samples.
const tolerance = 1

//   ___---___------   e - first edge
//   xxx012345678901   t - tolerance range the next data edge is expected
//     e----tttt-xxx   x - exit criteria, no edge is coming anymore
const (
	minHalfBit = SamplesPerHalfBit - tolerance
	maxHalfBit = SamplesPerHalfBit + tolerance
	minFullBit = 2*SamplesPerHalfBit - tolerance
	maxFullBit = 2*SamplesPerHalfBit + tolerance
)

// Interval is the classification of the tick count between two edges.
type Interval int

const (
	// Invalid is a tick count outside every tolerance band. Ambiguous
	// counts are never best-guessed; they force a decode error.
	Invalid Interval = iota
	// HalfBit is a tick count within the half bit band around
	// SamplesPerHalfBit.
	HalfBit
	// FullBit is a tick count within the full bit band around
	// 2*SamplesPerHalfBit.
	FullBit
	// Timeout is a tick count beyond the full bit band; with no
	// intervening edge the line has gone quiet.
	Timeout
)

// Classify maps the number of ticks elapsed since the previous edge to an
// Interval. The half bit and full bit bands are adjacent but do not overlap.
func Classify(ticks int) Interval {
	switch {
	case ticks >= minHalfBit && ticks <= maxHalfBit:
		return HalfBit
	case ticks >= minFullBit && ticks <= maxFullBit:
		return FullBit
	case ticks > maxFullBit:
		return Timeout
	}
	return Invalid
}
