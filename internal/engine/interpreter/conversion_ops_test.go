package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

func runConstBody(resultType *api.ValueType, body []wasm.Instruction) (*api.RuntimeValue, error) {
	f := &wasm.FunctionInstance{
		Type: &api.FunctionType{Result: resultType},
		Body: body,
	}
	return RunFunction(f, nil)
}

// TestConversionOps_WrapExtendRoundTrip covers spec.md §8 invariant 6:
// "wrap i64->i32 (extend_u i32->i64 x) == x" and "extend_s; wrap is the
// identity on i32", driven through RunFunction/runOne rather than
// calling the bare helper functions directly.
func TestConversionOps_WrapExtendRoundTrip(t *testing.T) {
	result, err := runConstBody(i32Ptr(), []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: -7},
		{Opcode: wasm.OpI64ExtendUI32},
		{Opcode: wasm.OpI32WrapI64},
	})
	require.NoError(t, err)
	require.Equal(t, int32(-7), result.ToI32())

	result, err = runConstBody(i32Ptr(), []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: -7},
		{Opcode: wasm.OpI64ExtendSI32},
		{Opcode: wasm.OpI32WrapI64},
	})
	require.NoError(t, err)
	require.Equal(t, int32(-7), result.ToI32())
}

// TestConversionOps_ReinterpretRoundTrip covers spec.md §8 invariant 5:
// "reinterpret(reinterpret(x)) == x for all value tag pairs", including
// a NaN payload (spec.md §4.1: NaNs preserve bit pattern across
// reinterpret).
func TestConversionOps_ReinterpretRoundTrip(t *testing.T) {
	result, err := runConstBody(i32Ptr(), []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: -559038737}, // 0xdeadbeef
		{Opcode: wasm.OpF32ReinterpretI32},
		{Opcode: wasm.OpI32ReinterpretF32},
	})
	require.NoError(t, err)
	require.Equal(t, int32(-559038737), result.ToI32())

	i64 := api.ValueTypeI64
	result2, err := runConstBody(&i64, []wasm.Instruction{
		{Opcode: wasm.OpI64Const, I64Imm: int64(0x7ff8000000000001)}, // a NaN payload
		{Opcode: wasm.OpF64ReinterpretI64},
		{Opcode: wasm.OpI64ReinterpretF64},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x7ff8000000000001), result2.ToU64())
}

func TestConversionOps_TruncConvertRoundTripThroughDispatcher(t *testing.T) {
	i32 := api.ValueTypeI32
	result, err := runConstBody(&i32, []wasm.Instruction{
		{Opcode: wasm.OpF64Const, F64Bits: math.Float64bits(42.0)},
		{Opcode: wasm.OpI32TruncSF64},
	})
	require.NoError(t, err)
	require.Equal(t, int32(42), result.ToI32())

	f64 := api.ValueTypeF64
	result2, err := runConstBody(&f64, []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: 42},
		{Opcode: wasm.OpF64ConvertSI32},
	})
	require.NoError(t, err)
	require.Equal(t, float64(42), result2.ToF64())
}

func TestConversionOps_DemotePromoteRoundTrip(t *testing.T) {
	f32 := api.ValueTypeF32
	result, err := runConstBody(&f32, []wasm.Instruction{
		{Opcode: wasm.OpF64Const, F64Bits: math.Float64bits(1.5)},
		{Opcode: wasm.OpF32DemoteF64},
	})
	require.NoError(t, err)
	require.Equal(t, float32(1.5), result.ToF32())

	f64 := api.ValueTypeF64
	result2, err := runConstBody(&f64, []wasm.Instruction{
		{Opcode: wasm.OpF32Const, F32Bits: math.Float32bits(1.5)},
		{Opcode: wasm.OpF64PromoteF32},
	})
	require.NoError(t, err)
	require.Equal(t, float64(1.5), result2.ToF64())
}
