package manchester

// phase is the decoder's position within the current bit cycle.
type phase int

const (
	// phaseIdle means no datagram is in progress.
	phaseIdle phase = iota
	// phaseAwaitingMidBit means the last edge sat on a bit boundary; the
	// next edge, a half bit away, is the mid-bit transition.
	phaseAwaitingMidBit
	// phaseBitBoundary means the last edge was a mid-bit transition; the
	// next edge is either the following bit boundary (half bit away,
	// clock recovery only) or the next mid-bit transition (full bit away).
	phaseBitBoundary
)

// Decoder extracts datagrams from a manchester modulated signal that is
// sampled periodically, SamplesPerHalfBit times per half bit.
//
// Every bit has an edge at its middle; its direction carries the value
// (toward the inactive level means 1). Edges on bit boundaries only occur
// between equal bits and carry no data. The first bit of a datagram is fixed
// by Config.FirstBit, which pins down where the mid-bit edges are expected.
//
// A datagram ends once the line stays at the inactive level for longer than
// a full bit period. Decoder is not safe for concurrent use; one caller
// drives it, one sample per tick.
type Decoder struct {
	cfg Config

	// pending collects the bits of the datagram in progress. It is
	// non-empty exactly while a datagram is in progress and is cleared
	// with every transition back to idle.
	pending Datagram

	lastLevel      bool
	ticksSinceEdge int
	phase          phase
	// syncPending marks that the upcoming mid-bit edge belongs to the
	// assumed first bit and is consumed as clock recovery only.
	syncPending bool
}

// NewDecoder returns a decoder for the given line configuration.
func NewDecoder(cfg Config) (*Decoder, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}

	return &Decoder{
		cfg:       cfg,
		lastLevel: cfg.InactiveLevel,
	}, nil
}

// Next consumes one level sample. It must be called exactly once per sample
// tick, in order. It runs in constant time and never allocates.
//
// The returned datagram is empty while decoding is idle or in progress and
// complete once the trailing inactivity period has elapsed. A malformed
// signal yields ErrTiming or ErrDatagramFull; the accumulated bits are
// discarded and the decoder is ready for the next datagram.
func (d *Decoder) Next(sample bool) (Datagram, error) {
	if d.phase == phaseIdle {
		// the first sample departing from the inactive level starts
		// a new datagram
		if sample != d.cfg.InactiveLevel {
			d.start()
		}
		d.lastLevel = sample
		return Datagram{}, nil
	}

	d.ticksSinceEdge++

	if sample != d.lastLevel {
		err := d.edge(sample)
		d.lastLevel = sample
		return Datagram{}, err
	}
	d.lastLevel = sample

	if Classify(d.ticksSinceEdge) != Timeout {
		return Datagram{}, nil
	}

	if sample != d.cfg.InactiveLevel {
		// line stuck at the active level beyond a full bit period
		d.resetIdle()
		return Datagram{}, ErrTiming
	}

	dg := d.pending
	d.resetIdle()
	return dg, nil
}

// Reset abandons any datagram in progress and returns the decoder to idle.
func (d *Decoder) Reset() {
	d.resetIdle()
	d.lastLevel = d.cfg.InactiveLevel
}

// start begins a new datagram at the first edge out of inactivity.
// The first bit is recorded from the configuration, not from timing.
func (d *Decoder) start() {
	d.pending = Datagram{order: d.cfg.Order}
	_ = d.pending.AddBit(d.cfg.FirstBit)
	d.ticksSinceEdge = 0

	if d.cfg.FirstBit {
		// a 1 starts with the active level, so this edge sits on the
		// bit boundary and the mid-bit edge is still to come
		d.phase = phaseAwaitingMidBit
		d.syncPending = true
	} else {
		// a 0 starts with the inactive level; the first visible edge
		// is already the mid-bit transition
		d.phase = phaseBitBoundary
	}
}

// edge classifies an observed level transition and advances the bit cycle.
func (d *Decoder) edge(sample bool) error {
	interval := Classify(d.ticksSinceEdge)
	d.ticksSinceEdge = 0

	switch d.phase {
	case phaseAwaitingMidBit:
		// only the mid-bit transition may follow a boundary edge
		if interval != HalfBit {
			return d.abort()
		}
		d.phase = phaseBitBoundary
		if d.syncPending {
			d.syncPending = false
			return nil
		}
		return d.record(sample)

	case phaseBitBoundary:
		switch interval {
		case HalfBit:
			// boundary edge between two equal bits, clock only
			d.phase = phaseAwaitingMidBit
			return nil
		case FullBit:
			// mid-bit transition of the next bit
			return d.record(sample)
		}
		return d.abort()
	}

	return nil
}

// record appends the bit a mid-bit transition encodes.
func (d *Decoder) record(sample bool) error {
	if err := d.pending.AddBit(d.cfg.bit(sample)); err != nil {
		d.resetIdle()
		return err
	}
	return nil
}

// abort discards the datagram in progress after a timing violation.
func (d *Decoder) abort() error {
	d.resetIdle()
	return ErrTiming
}

func (d *Decoder) resetIdle() {
	d.pending = Datagram{}
	d.phase = phaseIdle
	d.syncPending = false
	d.ticksSinceEdge = 0
}
