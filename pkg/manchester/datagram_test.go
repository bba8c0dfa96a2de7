package manchester_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irdl/pkg/manchester"
)

func TestDatagramAddBit(t *testing.T) {
	d := manchester.NewDatagram(manchester.BigEndian)
	require.True(t, d.IsEmpty())

	for _, bit := range []bool{true, false, true, false} {
		require.NoError(t, d.AddBit(bit))
	}

	assert.Equal(t, 4, d.Len())
	assert.True(t, d.At(0))
	assert.False(t, d.At(1))
	assert.True(t, d.At(2))
	assert.False(t, d.At(3))
}

func TestDatagramFull(t *testing.T) {
	d := manchester.NewDatagram(manchester.BigEndian)

	for i := 0; i < manchester.MaxDatagramBits; i++ {
		require.NoError(t, d.AddBit(true))
	}

	require.ErrorIs(t, d.AddBit(true), manchester.ErrDatagramFull)
	assert.Equal(t, manchester.MaxDatagramBits, d.Len())
}

func TestDatagramValue(t *testing.T) {
	// the same bit sequence reads differently per bit order
	be := mustDatagram(t, manchester.BigEndian, "1011")
	le := mustDatagram(t, manchester.LittleEndian, "1011")

	// BigEndian: first received bit is the MSB
	assert.Equal(t, uint64(0b1011), be.Value())
	// LittleEndian: first received bit is the LSB
	assert.Equal(t, uint64(0b1101), le.Value())
}

func TestParseDatagram(t *testing.T) {
	d, err := manchester.ParseDatagram(manchester.BigEndian, "01-0111")
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, uint64(0b010111), d.Value())

	// delimiters of any kind are ignored
	same, err := manchester.ParseDatagram(manchester.BigEndian, "0101_11")
	require.NoError(t, err)
	assert.Equal(t, d, same)
}

func TestDatagramString(t *testing.T) {
	assert.Equal(t, "0101-1010", mustDatagram(t, manchester.BigEndian, "01011010").String())
	assert.Equal(t, "101", mustDatagram(t, manchester.BigEndian, "101").String())
	assert.Equal(t, "", manchester.Datagram{}.String())
}

func TestDatagramAtPanics(t *testing.T) {
	d := mustDatagram(t, manchester.BigEndian, "01")
	assert.Panics(t, func() { d.At(2) })
	assert.Panics(t, func() { d.At(-1) })
}
