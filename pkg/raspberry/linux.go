//go:build !windows

package raspberry

import (
	"github.com/warthog618/gpio"
	"github.com/warthog618/gpiod"
)

// RpiGPIO drives the raspberry pi gpio header.
//
// Input pins are read through the memory mapped /dev/gpiomem interface,
// which is fast enough for polling at three samples per half bit. Output
// lines go through the gpiochip character device.
type RpiGPIO struct {
	gpiodChip *gpiod.Chip
}

// Open maps the GPIO memory range and opens the gpio character device.
func Open() (GPIO, error) {
	if err := gpio.Open(); err != nil {
		return nil, err
	}

	chip, err := gpiod.NewChip("gpiochip0")
	if err != nil {
		_ = gpio.Close()
		return nil, err
	}

	return &RpiGPIO{gpiodChip: chip}, nil
}

// InputPin creates a new input pin object.
// The pin number provided is the BCM GPIO number.
func (c *RpiGPIO) InputPin(p int, terminator string) (InputPin, error) {
	pin := gpio.NewPin(p)
	pin.Input()

	switch terminator {
	case "pullup":
		pin.PullUp()
	case "pulldown":
		pin.PullDown()
	case "none":
	default:
		return nil, ErrInvalidParam
	}

	return &RpiPin{gpioPin: pin}, nil
}

// OutputLine requests control of a single output line on the chip.
// If granted, control is maintained until the line is closed.
func (c *RpiGPIO) OutputLine(p int, level bool) (OutputLine, error) {
	v := 0
	if level {
		v = 1
	}

	line, err := c.gpiodChip.RequestLine(p, gpiod.AsOutput(v))
	if err != nil {
		return nil, err
	}

	return &RpiLine{gpiodLine: line}, nil
}

// Close releases the chip and unmaps the GPIO memory.
func (c *RpiGPIO) Close() error {
	err := c.gpiodChip.Close()
	if e := gpio.Close(); err == nil {
		err = e
	}
	return err
}

// RpiPin represents a single memory mapped input pin.
type RpiPin struct {
	gpioPin *gpio.Pin
}

// Level reads the pin state (high/low).
func (p *RpiPin) Level() (bool, error) {
	return bool(p.gpioPin.Read()), nil
}

func (p *RpiPin) Close() error {
	return nil
}

// RpiLine represents a single requested output line.
type RpiLine struct {
	gpiodLine *gpiod.Line
}

// SetLevel drives the line to the given level.
func (l *RpiLine) SetLevel(level bool) error {
	v := 0
	if level {
		v = 1
	}
	return l.gpiodLine.SetValue(v)
}

// Close releases all resources held by the requested line.
func (l *RpiLine) Close() error {
	return l.gpiodLine.Close()
}
