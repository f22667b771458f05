package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

func TestGlobalInstance_GetSet(t *testing.T) {
	g := NewGlobalInstance(api.I32(42), true)
	require.Equal(t, api.ValueTypeI32, g.Type.ValType)
	require.True(t, g.Type.Mutable)
	require.Equal(t, int32(42), g.Get().ToI32())

	g.Set(api.I32(7))
	require.Equal(t, int32(7), g.Get().ToI32())
}

func TestGlobalInstance_Immutable(t *testing.T) {
	g := NewGlobalInstance(api.F64(3.5), false)
	require.False(t, g.Type.Mutable)
	require.Equal(t, 3.5, g.Get().ToF64())
}

func TestGlobalInstance_SetTrapsOnImmutable(t *testing.T) {
	g := NewGlobalInstance(api.I32(1), false)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		require.ErrorIs(t, err, wasmruntime.ErrTrapImmutableGlobal)
	}()
	g.Set(api.I32(2))
}
