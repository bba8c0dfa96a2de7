// Package port holds the definition of a physical line.
//
// The codec core never touches hardware; it sees boolean levels only. These
// interfaces are the seam between the state machines and whatever peripheral
// actually owns the line (a gpio pin, a pwm channel, an emulator in tests).
package port

// Sampler reports the instantaneous digital level of an input line.
// It is polled once per sample tick and must return quickly.
type Sampler interface {
	// Level reads the current line level, true meaning high.
	Level() (bool, error)
}

// Driver sets the digital level of an output line.
type Driver interface {
	// SetLevel drives the line to the given level, true meaning high.
	SetLevel(level bool) error
}
