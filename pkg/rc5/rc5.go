// Package rc5 interprets decoded manchester datagrams as Philips RC5 frames.
//
// An RC5 frame is 14 bits long: a start bit (always 1), a field bit (1 for
// the original command range, 0 extends the command by a seventh, inverted
// bit), a toggle bit that flips on every new key press, five address bits
// and six command bits, most significant bit first.
//
// https://techdocs.altium.com/display/FPGA/Philips+RC5+Infrared+Transmission+Protocol
package rc5

import (
	"errors"
	"time"

	"irdl/pkg/manchester"
)

var (
	ErrInvalidLength = errors.New("invalid frame length")
	ErrInvalidStart  = errors.New("invalid start bit")
	ErrInvalidField  = errors.New("address or command out of range")
)

// FrameBits is the fixed length of an RC5 frame.
const FrameBits = 14

const (
	maxAddress = 1<<5 - 1
	maxCommand = 1<<7 - 1

	// extendBit is the command bit carried inverted in the field bit.
	extendBit = 1 << 6
)

// Frame is one decoded RC5 transmission.
type Frame struct {
	TimeStamp time.Time `json:"timestamp"`
	// Address selects the device (0..31).
	Address uint8 `json:"address"`
	// Command is the key code (0..127; 64 and up use the extended range).
	Command uint8 `json:"command"`
	// Toggle flips with every new key press and stays constant while a
	// key repeats.
	Toggle bool `json:"toggle"`
}

// Parse converts a decoded datagram into a frame.
func Parse(d manchester.Datagram) (Frame, error) {
	if d.Len() != FrameBits {
		return Frame{}, ErrInvalidLength
	}
	if !d.At(0) {
		return Frame{}, ErrInvalidStart
	}

	f := Frame{
		TimeStamp: time.Now(),
		Toggle:    d.At(2),
	}

	for i := 3; i < 8; i++ {
		f.Address <<= 1
		if d.At(i) {
			f.Address |= 1
		}
	}

	for i := 8; i < FrameBits; i++ {
		f.Command <<= 1
		if d.At(i) {
			f.Command |= 1
		}
	}
	if !d.At(1) {
		f.Command |= extendBit
	}

	return f, nil
}

// Datagram builds the 14 bit frame for transmission.
func (f Frame) Datagram(order manchester.BitOrder) (manchester.Datagram, error) {
	if f.Address > maxAddress || f.Command > maxCommand {
		return manchester.Datagram{}, ErrInvalidField
	}

	d := manchester.NewDatagram(order)

	bits := []bool{
		true,
		f.Command&extendBit == 0,
		f.Toggle,
	}
	for i := 4; i >= 0; i-- {
		bits = append(bits, f.Address&(1<<i) != 0)
	}
	for i := 5; i >= 0; i-- {
		bits = append(bits, f.Command&(1<<i) != 0)
	}

	for _, bit := range bits {
		if err := d.AddBit(bit); err != nil {
			return manchester.Datagram{}, err
		}
	}

	return d, nil
}
