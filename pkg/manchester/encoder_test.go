package manchester_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irdl/pkg/manchester"
)

// drain runs the encoder to completion and collects the emitted levels.
func drain(t *testing.T, e *manchester.Encoder) []bool {
	t.Helper()

	var levels []bool
	for !e.Done() {
		levels = append(levels, e.Next())
		require.LessOrEqual(t, len(levels), 2*manchester.MaxDatagramBits)
	}
	return levels
}

func TestEncodeHighInactivity(t *testing.T) {
	// idle high: a 1 bit is sent low/high, a 0 bit high/low
	tests := []struct {
		bits string
		want []bool
	}{
		{"0", []bool{true, false}},
		{"1", []bool{false, true}},
		{"00", []bool{true, false, true, false}},
		{"01", []bool{true, false, false, true}},
		{"10", []bool{false, true, true, false}},
	}

	cfg := manchester.Config{InactiveLevel: true, Order: manchester.BigEndian}

	for _, tt := range tests {
		t.Run(tt.bits, func(t *testing.T) {
			e, err := manchester.NewEncoder(cfg, mustDatagram(t, cfg.Order, tt.bits))
			require.NoError(t, err)
			assert.Equal(t, tt.want, drain(t, e))
		})
	}
}

func TestEncodeLowInactivity(t *testing.T) {
	// inverted line sense inverts every emitted level
	cfg := manchester.Config{InactiveLevel: false, Order: manchester.BigEndian}

	e, err := manchester.NewEncoder(cfg, mustDatagram(t, cfg.Order, "01"))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, drain(t, e))
}

func TestEncodeEmptyDatagram(t *testing.T) {
	cfg := manchester.Config{InactiveLevel: true, Order: manchester.BigEndian}

	e, err := manchester.NewEncoder(cfg, manchester.NewDatagram(cfg.Order))
	require.NoError(t, err)
	assert.True(t, e.Done())
}

func TestEncodeDoneHoldsLineIdle(t *testing.T) {
	cfg := manchester.Config{InactiveLevel: true, Order: manchester.BigEndian}

	e, err := manchester.NewEncoder(cfg, mustDatagram(t, cfg.Order, "1"))
	require.NoError(t, err)
	drain(t, e)

	// ticking past completion keeps the line at the inactive level
	for i := 0; i < 5; i++ {
		assert.True(t, e.Next())
		assert.True(t, e.Done())
	}
}

func TestNewEncoderRejectsInvalidConfig(t *testing.T) {
	_, err := manchester.NewEncoder(manchester.Config{Order: manchester.BitOrder(-1)}, manchester.Datagram{})
	require.ErrorIs(t, err, manchester.ErrInvalidBitOrder)
}
