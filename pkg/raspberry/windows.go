//go:build windows

package raspberry

import "sync"

// EmuGPIO emulates the gpio header on systems without one, only for
// testing the application in windows mode. Input pins and output lines
// share one level table, so a transmitted signal can be looped back.
type EmuGPIO struct {
	mu     sync.Mutex
	levels map[int]bool
}

// Open initializes the gpio emulator.
func Open() (GPIO, error) {
	return &EmuGPIO{levels: map[int]bool{}}, nil
}

// InputPin creates a new emulated input pin object.
func (c *EmuGPIO) InputPin(p int, terminator string) (InputPin, error) {
	switch terminator {
	case "pullup":
		c.set(p, true)
	case "pulldown":
		c.set(p, false)
	case "none":
	default:
		return nil, ErrInvalidParam
	}

	return &EmuPin{gpio: c, pin: p}, nil
}

// OutputLine creates a new emulated output line object.
func (c *EmuGPIO) OutputLine(p int, level bool) (OutputLine, error) {
	c.set(p, level)
	return &EmuLine{gpio: c, pin: p}, nil
}

func (c *EmuGPIO) Close() error {
	return nil
}

func (c *EmuGPIO) set(p int, level bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels[p] = level
}

func (c *EmuGPIO) get(p int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.levels[p]
}

// EmuPin represents a single emulated input pin.
type EmuPin struct {
	gpio *EmuGPIO
	pin  int
}

// Level reads the emulated pin state.
func (p *EmuPin) Level() (bool, error) {
	return p.gpio.get(p.pin), nil
}

// EmuLevel forces the emulated pin state, e.g. from a test signal source.
func (p *EmuPin) EmuLevel(level bool) {
	p.gpio.set(p.pin, level)
}

func (p *EmuPin) Close() error {
	return nil
}

// EmuLine represents a single emulated output line.
type EmuLine struct {
	gpio *EmuGPIO
	pin  int
}

// SetLevel drives the emulated line to the given level.
func (l *EmuLine) SetLevel(level bool) error {
	l.gpio.set(l.pin, level)
	return nil
}

func (l *EmuLine) Close() error {
	return nil
}
