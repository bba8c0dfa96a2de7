// Package manchester is a software codec for manchester code
// https://en.wikipedia.org/wiki/Manchester_code
//
// The decoder consumes a monotonic stream of boolean level samples taken at
// three times the half bit rate (e.g. an infrared receiver sampled by a
// periodic timer; for an RC5 half bit of 889 µs the timer runs every 297 µs)
// and reconstructs datagrams, detecting start and end autonomously.
// The encoder is the inverse: driven at half bit cadence it emits the two
// level phases of each bit.
//
// https://techdocs.altium.com/display/FPGA/Philips+RC5+Infrared+Transmission+Protocol
package manchester

import "errors"

var (
	// ErrInvalidBitOrder is returned when a Config carries an unknown bit order.
	ErrInvalidBitOrder = errors.New("invalid bit order")
	// ErrTiming is returned when an edge violates the manchester timing windows.
	ErrTiming = errors.New("manchester timing violation")
	// ErrDatagramFull is returned when a datagram exceeds MaxDatagramBits.
	ErrDatagramFull = errors.New("datagram full")
)

// BitOrder determines how a datagram is interpreted as an integer value.
type BitOrder int

const (
	// BigEndian means the first bit received is the most significant bit.
	BigEndian BitOrder = iota
	// LittleEndian means the first bit received is the least significant bit.
	LittleEndian
)

// Config holds the immutable line parameters of a Decoder or Encoder.
// A Config may be shared read-only between several instances.
type Config struct {
	// InactiveLevel is the sampled level representing the idle line.
	// An infrared receiver with a pull-up idles high.
	InactiveLevel bool
	// FirstBit is the value of the first bit of every datagram.
	// By protocol it immediately follows the transition out of inactivity
	// and is assumed, not measured.
	FirstBit bool
	// Order is the bit order used when a datagram is read as a value.
	Order BitOrder
}

// check validates the Config at construction time.
func (c Config) check() error {
	switch c.Order {
	case BigEndian, LittleEndian:
		return nil
	}
	return ErrInvalidBitOrder
}

// bit returns the value a data edge encodes: a transition toward the
// inactive level is a 1, away from it a 0. sample is the level right
// after the edge.
func (c Config) bit(sample bool) bool {
	return sample == c.InactiveLevel
}
