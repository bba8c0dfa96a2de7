// Package irbus connects a sampled infrared line to the manchester codec.
//
// The receive Handler owns the periodic sample timer: it polls the line at
// one third of the half bit period, feeds every sample to the decoder and
// publishes completed datagrams on channel C. The Transmitter drives the
// encoder onto an output line at half bit cadence.
package irbus

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/womat/debug"

	"irdl/pkg/manchester"
	"irdl/pkg/port"
)

// ErrInvalidPeriod is returned when the half bit period is too short to be
// sampled three times.
var ErrInvalidPeriod = errors.New("invalid half bit period")

// Handler reads datagrams from a manchester modulated line.
type Handler struct {
	// decoder is the sample driven decoding state machine.
	decoder *manchester.Decoder
	// sampler reports the line level once per tick.
	sampler port.Sampler
	// interval is the sample period (a third of the half bit period).
	interval time.Duration

	// decodeErrors counts rejected signals since start, read via health.
	decodeErrors uint64

	// C is the channel to receive the decoded datagrams.
	C chan manchester.Datagram

	// quit stops the handler, done signals that run() has terminated.
	quit chan struct{}
	done chan struct{}
}

// Open starts sampling the line and decoding datagrams.
func Open(s port.Sampler, cfg manchester.Config, halfBit time.Duration) (*Handler, error) {
	interval := halfBit / manchester.SamplesPerHalfBit
	if interval <= 0 {
		return nil, ErrInvalidPeriod
	}

	decoder, err := manchester.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		decoder:  decoder,
		sampler:  s,
		interval: interval,
		C:        make(chan manchester.Datagram, 4),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	debug.InfoLog.Printf("sampling manchester line every %v", h.interval)

	go h.run()
	return h, nil
}

// Close stops sampling and decoding.
func (h *Handler) Close() error {
	close(h.quit)

	// wait until run() is terminated
	<-h.done

	close(h.C)
	return nil
}

// DecodeErrors returns the number of malformed signals seen since Open.
func (h *Handler) DecodeErrors() uint64 {
	return atomic.LoadUint64(&h.decodeErrors)
}

// run polls the sampler on every tick and feeds the decoder.
// Decode errors only mean a corrupted transmission; the decoder has already
// reset itself, so the loop simply keeps sampling.
func (h *Handler) run() {
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.quit:
			return
		case <-ticker.C:
			level, err := h.sampler.Level()
			if err != nil {
				debug.ErrorLog.Printf("reading line level: %v", err)
				continue
			}

			dg, err := h.decoder.Next(level)
			if err != nil {
				atomic.AddUint64(&h.decodeErrors, 1)
				debug.DebugLog.Printf("decode error, waiting for inactivity: %v", err)
				continue
			}
			if dg.IsEmpty() {
				continue
			}

			debug.TraceLog.Printf("datagram: %v", dg)

			select {
			case h.C <- dg:
			default:
				debug.ErrorLog.Printf("receiver not ready, datagram %v dropped", dg)
			}
		}
	}
}
