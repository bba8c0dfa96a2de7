package irbus

import (
	"sync"
	"time"

	"github.com/womat/debug"

	"irdl/pkg/manchester"
	"irdl/pkg/port"
)

// Transmitter sends datagrams over a manchester modulated line.
// One transmission runs at a time; Send blocks for the duration of the
// datagram (two half bit periods per bit).
type Transmitter struct {
	driver  port.Driver
	cfg     manchester.Config
	halfBit time.Duration

	// tl serializes transmissions on the line.
	tl sync.Mutex
}

// NewTransmitter returns a transmitter driving the given line.
func NewTransmitter(d port.Driver, cfg manchester.Config, halfBit time.Duration) (*Transmitter, error) {
	if halfBit <= 0 {
		return nil, ErrInvalidPeriod
	}

	return &Transmitter{
		driver:  d,
		cfg:     cfg,
		halfBit: halfBit,
	}, nil
}

// Send emits the datagram and returns the line to the inactive level.
func (t *Transmitter) Send(d manchester.Datagram) error {
	t.tl.Lock()
	defer t.tl.Unlock()

	encoder, err := manchester.NewEncoder(t.cfg, d)
	if err != nil {
		return err
	}

	debug.DebugLog.Printf("sending datagram %v", d)

	ticker := time.NewTicker(t.halfBit)
	defer ticker.Stop()

	for !encoder.Done() {
		<-ticker.C
		if err := t.driver.SetLevel(encoder.Next()); err != nil {
			return err
		}
	}

	// hold the final half bit for its full period before idling the line
	<-ticker.C
	return t.driver.SetLevel(t.cfg.InactiveLevel)
}
