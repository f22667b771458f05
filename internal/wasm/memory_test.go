package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryPageConsts(t *testing.T) {
	require.Equal(t, MemoryPageSize, uint32(1)<<MemoryPageSizeInBits)
	require.Equal(t, MemoryPageSize, MemoryMaxPages)
}

func TestMemoryInstance_Grow_PageSize(t *testing.T) {
	max := uint32(10)
	m := NewMemoryInstance(0, &max)
	require.Equal(t, uint32(0), m.Grow(5))
	require.Equal(t, uint32(5), m.PageSize())
	require.Equal(t, uint32(5), m.Grow(4))
	require.Equal(t, uint32(9), m.PageSize())
	// Growing two more pages would exceed max.
	require.Equal(t, int32(-1), int32(m.Grow(2)))
	require.Equal(t, uint32(9), m.PageSize())
	require.Equal(t, uint32(9), m.Grow(1))
	require.Equal(t, max, m.PageSize())
}

func TestMemoryInstance_Grow_NoMax(t *testing.T) {
	m := NewMemoryInstance(1, nil)
	require.Equal(t, uint32(1), m.PageSize())
	require.Equal(t, uint32(1), m.Grow(2))
	require.Equal(t, uint32(3), m.PageSize())
}

func TestMemoryInstance_ReadWrite(t *testing.T) {
	m := NewMemoryInstance(1, nil)

	require.True(t, m.WriteUint32Le(0, 0xdeadbeef))
	v, ok := m.ReadUint32Le(0)
	require.True(t, ok)
	require.Equal(t, uint32(0xdeadbeef), v)

	require.True(t, m.WriteByte(4, 0x42))
	b, ok := m.ReadByte(4)
	require.True(t, ok)
	require.Equal(t, byte(0x42), b)

	require.True(t, m.WriteUint64Le(8, 0x0102030405060708))
	v64, ok := m.ReadUint64Le(8)
	require.True(t, ok)
	require.Equal(t, uint64(0x0102030405060708), v64)
}

func TestMemoryInstance_OutOfBounds(t *testing.T) {
	m := NewMemoryInstance(1, nil)
	size := m.Size()

	_, ok := m.ReadByte(size)
	require.False(t, ok)
	require.False(t, m.WriteByte(size, 1))

	_, ok = m.ReadUint32Le(size - 3)
	require.False(t, ok)
}
