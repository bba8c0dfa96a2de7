package manchester

// Encoder turns a datagram into the manchester level sequence.
//
// Next must be driven at half bit cadence (twice per bit period), typically
// by a timer interrupt or ticker; every bit is emitted as two levels, the
// first half being the inverse of the second. The second half level equals
// the inactive level exactly for a 1 bit, so the mid-bit transition of a 1
// points toward the inactive level - the same convention the Decoder reads.
//
// Bits leave in reception order: index 0 of the datagram is sent first.
type Encoder struct {
	cfg      Config
	datagram Datagram
	cursor   int
	// secondHalf marks which half of the current bit is being driven.
	secondHalf bool
}

// NewEncoder returns an encoder emitting the given datagram.
func NewEncoder(cfg Config, d Datagram) (*Encoder, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, datagram: d}, nil
}

// Next emits the level for the current half bit and advances.
// Once the datagram is exhausted it keeps returning the inactive level, so
// a caller that ticks too long simply holds the line idle.
func (e *Encoder) Next() bool {
	if e.Done() {
		return e.cfg.InactiveLevel
	}

	secondLevel := !e.cfg.InactiveLevel
	if e.datagram.At(e.cursor) {
		secondLevel = e.cfg.InactiveLevel
	}

	level := secondLevel
	if !e.secondHalf {
		level = !secondLevel
	}

	if e.secondHalf {
		e.cursor++
	}
	e.secondHalf = !e.secondHalf

	return level
}

// Done reports whether the whole datagram has been emitted.
func (e *Encoder) Done() bool {
	return e.cursor >= e.datagram.Len()
}
