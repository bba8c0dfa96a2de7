// Package raspberry is the access layer to the raspberry pi gpio lines.
package raspberry

import "fmt"

var ErrInvalidParam = fmt.Errorf("invalid parameters")

// GPIO gives access to the gpio lines of the host.
// The linux implementation talks to the real hardware; on windows an
// emulator is returned so the application can be exercised on a
// development machine.
type GPIO interface {
	// InputPin requests a single input line.
	// The terminator is one of "pullup", "pulldown" or "none".
	InputPin(gpio int, terminator string) (InputPin, error)
	// OutputLine requests a single output line driven to the given
	// initial level.
	OutputLine(gpio int, level bool) (OutputLine, error)
	// Close releases the gpio resources. Requested pins and lines must
	// be closed independently beforehand.
	Close() error
}

// InputPin is a requested input line. Level reads are cheap enough to be
// polled at the manchester sample rate.
type InputPin interface {
	Level() (bool, error)
	Close() error
}

// OutputLine is a requested output line.
type OutputLine interface {
	SetLevel(level bool) error
	Close() error
}
