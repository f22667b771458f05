package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

func requireTraps(t *testing.T, want error, f func()) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		require.ErrorIs(t, err, want)
	}()
	f()
}

func TestDivS32_TrapsOnOverflowAndZero(t *testing.T) {
	requireTraps(t, wasmruntime.ErrTrapIntegerOverflow, func() { divS32(math.MinInt32, -1) })
	requireTraps(t, wasmruntime.ErrTrapIntegerDivideByZero, func() { divS32(1, 0) })
	require.Equal(t, int32(-2), divS32(4, -2))
}

func TestDivU32_TrapsOnZero(t *testing.T) {
	requireTraps(t, wasmruntime.ErrTrapIntegerDivideByZero, func() { divU32(1, 0) })
	require.Equal(t, uint32(2), divU32(4, 2))
}

func TestRemS32_OverflowCaseReturnsZero(t *testing.T) {
	require.Equal(t, int32(0), remS32(math.MinInt32, -1))
	requireTraps(t, wasmruntime.ErrTrapIntegerDivideByZero, func() { remS32(1, 0) })
}

func TestShiftsAndRotates_AmountModuloWidth(t *testing.T) {
	require.Equal(t, uint32(2), shl32(1, 33)) // 33 % 32 == 1
	require.Equal(t, uint64(2), shl64(1, 65)) // 65 % 64 == 1
	require.Equal(t, uint32(1), rotr32(2, 1))
}

func TestBitCounting(t *testing.T) {
	require.Equal(t, int32(31), clz32(1))
	require.Equal(t, int32(0), ctz32(1))
	require.Equal(t, int32(4), popcnt32(0xF))
}

func TestTruncS32to32_BoundaryCases(t *testing.T) {
	// Literal trap boundary cases from the spec.
	requireTraps(t, wasmruntime.ErrTrapInvalidConversionToInt, func() { truncS32to32(float32(math.NaN())) })
	requireTraps(t, wasmruntime.ErrTrapInvalidConversionToInt, func() { truncS32to32(2147483648.0) })
	require.Equal(t, int32(2147483520), truncS32to32(2147483520.0))
}

func TestDivU32_ZeroBoundary(t *testing.T) {
	requireTraps(t, wasmruntime.ErrTrapIntegerDivideByZero, func() { divU32(1, 0) })
}

func TestFMinFMax_SignedZeroAndNaN(t *testing.T) {
	require.True(t, math.Signbit(float64(fmin32(0, float32(math.Copysign(0, -1))))))
	require.True(t, math.IsNaN(float64(fmin32(float32(math.NaN()), 1))))
}

func TestCopysign(t *testing.T) {
	require.Equal(t, float32(-1), copysign32(1, -2))
	require.Equal(t, float64(1), copysign64(-1, 2))
}
