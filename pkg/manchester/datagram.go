package manchester

import "strings"

// MaxDatagramBits is the fixed capacity of a Datagram.
const MaxDatagramBits = 64

// Datagram is a bounded, ordered sequence of decoded bits.
//
// Bits are stored in reception order: index 0 is the bit received first.
// The bit order of the Config only determines how the sequence reads as an
// integer value, see Value. A Datagram is a plain value type and never
// allocates; the zero Datagram is empty.
type Datagram struct {
	order  BitOrder
	length int
	buffer uint64
}

// NewDatagram returns an empty datagram assembled in the given bit order.
func NewDatagram(order BitOrder) Datagram {
	return Datagram{order: order}
}

// AddBit appends a bit to the datagram.
// It returns ErrDatagramFull once MaxDatagramBits is reached.
func (d *Datagram) AddBit(bit bool) error {
	if d.length >= MaxDatagramBits {
		return ErrDatagramFull
	}

	if bit {
		d.buffer |= 1 << d.length
	}
	d.length++
	return nil
}

// Len returns the number of bits in the datagram.
func (d Datagram) Len() int {
	return d.length
}

// IsEmpty reports whether the datagram contains no bits.
func (d Datagram) IsEmpty() bool {
	return d.length == 0
}

// Order returns the bit order the datagram was assembled with.
func (d Datagram) Order() BitOrder {
	return d.order
}

// At returns the bit at the given index in reception order.
// It panics if the index is out of range.
func (d Datagram) At(index int) bool {
	if index < 0 || index >= d.length {
		panic("manchester: datagram index out of range")
	}
	return d.buffer&(1<<index) != 0
}

// Value interprets the bit sequence as an integer per the datagram's bit
// order: BigEndian reads the first received bit as the most significant one,
// LittleEndian as the least significant one.
func (d Datagram) Value() uint64 {
	if d.order == LittleEndian {
		return d.buffer
	}

	var v uint64
	for i := 0; i < d.length; i++ {
		v <<= 1
		if d.At(i) {
			v |= 1
		}
	}
	return v
}

// String renders the bits in reception order, grouped by four.
func (d Datagram) String() string {
	var b strings.Builder
	for i := 0; i < d.length; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		if d.At(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseDatagram builds a datagram from a string of zeros and ones.
// Any other character is ignored, so delimiters like "0101-0110" are fine.
func ParseDatagram(order BitOrder, repr string) (Datagram, error) {
	d := Datagram{order: order}
	for _, c := range repr {
		switch c {
		case '0', '1':
			if err := d.AddBit(c == '1'); err != nil {
				return Datagram{}, err
			}
		}
	}
	return d, nil
}
