package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ExplicitByteMatch(t *testing.T) {
	buf := []byte{
		0xEE,       // unrelated leading byte
		0x2A,       // uint8(42) at struct offset 0
		0x01,       // bool(true) at struct offset 1
		0x00, 0xFF, // second struct: bool(false), then non-canonical 0xFF
	}

	s := Struct{Bytes: buf, Pos: 1}
	u, err := s.GetUint8(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), u)

	b, err := s.GetBool(1)
	require.NoError(t, err)
	assert.True(t, b)

	s2 := Struct{Bytes: buf, Pos: 3}
	b, err = s2.GetBool(0)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = s2.GetBool(1)
	require.NoError(t, err)
	assert.True(t, b, "any non-zero byte reads as true")
}

func TestStruct_HighByteHasNoSignExtension(t *testing.T) {
	s := Struct{Bytes: []byte{0xFF, 0x80}}

	v, err := s.GetUint8(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	v, err = s.GetUint8(1)
	require.NoError(t, err)
	assert.Equal(t, 128, int(v))
}

func TestStruct_OutOfBounds(t *testing.T) {
	buf := []byte{0x07}

	// binding never fails, the read does
	s := Struct{Bytes: buf, Pos: 0}
	_, err := s.GetBool(1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Struct{Bytes: buf, Pos: 5}.GetUint8(0)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Struct{Bytes: buf, Pos: -1}.GetUint8(0)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Struct{}.GetUint8(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDirectWritePrimitives(t *testing.T) {
	buf := make([]byte, 3)

	pos := WriteUint8(buf, 0, 0x2C)
	pos = WriteBool(buf, pos, true)
	pos = WriteBool(buf, pos, false)
	assert.Equal(t, 3, pos)
	assert.Equal(t, []byte{0x2C, 0x01, 0x00}, buf)

	v, err := ReadUint8(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2C), v)

	ok, err := ReadBool(buf, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = ReadBool(buf, 3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
