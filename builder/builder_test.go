package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
)

func TestMemoryBuilder(t *testing.T) {
	max := uint32(4)
	mem := NewMemory().WithMin(1).WithMax(&max).Build()
	require.Equal(t, uint32(1), mem.PageSize())
	require.Equal(t, &max, mem.Max)
}

func TestTableBuilder(t *testing.T) {
	table := NewTable().WithMin(3).Build()
	require.Len(t, table.Elements, 3)
	fn, ok := table.Get(0)
	require.True(t, ok) // in range, but the slot itself is null
	require.Nil(t, fn)
	_, ok = table.Get(3)
	require.False(t, ok) // out of range
}

func TestGlobalBuilder(t *testing.T) {
	g := NewGlobal(api.I32(9)).WithMutable(true).Build()
	require.True(t, g.Type.Mutable)
	require.Equal(t, int32(9), g.Get().ToI32())
}
