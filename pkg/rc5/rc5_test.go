package rc5_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irdl/pkg/manchester"
	"irdl/pkg/rc5"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		bits string
		want rc5.Frame
	}{
		{
			// start 1, field 1, toggle 0, address 00101, command 110101
			name: "standard command",
			bits: "11-0-00101-110101",
			want: rc5.Frame{Address: 5, Command: 53},
		},
		{
			// field 0 extends the command by bit six
			name: "extended command",
			bits: "10-1-00000-000011",
			want: rc5.Frame{Address: 0, Command: 64 + 3, Toggle: true},
		},
		{
			name: "broadcast-ish all ones",
			bits: "11-1-11111-111111",
			want: rc5.Frame{Address: 31, Command: 63, Toggle: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := manchester.ParseDatagram(manchester.BigEndian, tt.bits)
			require.NoError(t, err)

			f, err := rc5.Parse(d)
			require.NoError(t, err)

			assert.False(t, f.TimeStamp.IsZero())
			f.TimeStamp = tt.want.TimeStamp
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestParseErrors(t *testing.T) {
	short, err := manchester.ParseDatagram(manchester.BigEndian, "1101")
	require.NoError(t, err)
	_, err = rc5.Parse(short)
	assert.ErrorIs(t, err, rc5.ErrInvalidLength)

	badStart, err := manchester.ParseDatagram(manchester.BigEndian, "01-0-00101-110101")
	require.NoError(t, err)
	_, err = rc5.Parse(badStart)
	assert.ErrorIs(t, err, rc5.ErrInvalidStart)
}

func TestFrameDatagramRoundTrip(t *testing.T) {
	frames := []rc5.Frame{
		{Address: 5, Command: 53},
		{Address: 0, Command: 0, Toggle: true},
		{Address: 31, Command: 127},
		{Address: 16, Command: 64},
	}

	for _, want := range frames {
		d, err := want.Datagram(manchester.BigEndian)
		require.NoError(t, err)
		require.Equal(t, rc5.FrameBits, d.Len())

		got, err := rc5.Parse(d)
		require.NoError(t, err)

		got.TimeStamp = want.TimeStamp
		assert.Equal(t, want, got)
	}
}

func TestFrameDatagramRange(t *testing.T) {
	_, err := rc5.Frame{Address: 32}.Datagram(manchester.BigEndian)
	assert.ErrorIs(t, err, rc5.ErrInvalidField)

	_, err = rc5.Frame{Command: 128}.Datagram(manchester.BigEndian)
	assert.ErrorIs(t, err, rc5.ErrInvalidField)
}
