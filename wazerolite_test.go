package wazerolite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

func TestRunFunction_ConstReturn(t *testing.T) {
	i32 := api.ValueTypeI32
	f := &wasm.FunctionInstance{
		Name: "answer",
		Type: &api.FunctionType{Result: &i32},
		Body: []wasm.Instruction{{Opcode: wasm.OpI32Const, I32Imm: 42}},
	}

	result, err := RunFunction(f, nil)
	require.NoError(t, err)
	require.Equal(t, int32(42), result.ToI32())
}

func TestRegistry_AddAndLookup(t *testing.T) {
	r := NewRegistry()
	mod := wasm.NewModuleInstance("m")
	require.NoError(t, r.AddModule("m", mod))

	got, ok := r.Module("m")
	require.True(t, ok)
	require.Same(t, mod, got)
}
