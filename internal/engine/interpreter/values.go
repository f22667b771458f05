// Component 1 of spec.md §2: runtime values and numeric traits. Every
// function here backs exactly one Wasm numeric opcode family. Opcodes
// already select the operand type (I32Add vs I64Add vs F32Add, ...),
// so these are monomorphized per-tag routines rather than a single
// generic dispatched on a runtime Kind — option (b) of spec.md §9's
// "Polymorphic numeric opcodes" note, chosen because it matches
// tetratelabs-wazero's own interpreter, which predates Go generics and
// switches per concrete width/signedness instead.
package interpreter

import (
	"math"
	"math/bits"

	"github.com/gowasm/wazerolite/internal/moremath"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// --- integer arithmetic (wrapping, per spec.md §4.1) ---

func divS32(a, b int32) int32 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	if a == math.MinInt32 && b == -1 {
		panic(wasmruntime.ErrTrapIntegerOverflow)
	}
	return a / b
}

func divU32(a, b uint32) uint32 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	return a / b
}

func remS32(a, b int32) int32 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	if a == math.MinInt32 && b == -1 {
		return 0
	}
	return a % b
}

func remU32(a, b uint32) uint32 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	return a % b
}

func divS64(a, b int64) int64 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	if a == math.MinInt64 && b == -1 {
		panic(wasmruntime.ErrTrapIntegerOverflow)
	}
	return a / b
}

func divU64(a, b uint64) uint64 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	return a / b
}

func remS64(a, b int64) int64 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	if a == math.MinInt64 && b == -1 {
		return 0
	}
	return a % b
}

func remU64(a, b uint64) uint64 {
	if b == 0 {
		panic(wasmruntime.ErrTrapIntegerDivideByZero)
	}
	return a % b
}

// Shift amount is taken modulo the bit width, per spec.md §4.1.
func shl32(a uint32, n uint32) uint32   { return a << (n & 31) }
func shrS32(a int32, n uint32) int32    { return a >> (uint32(n) & 31) }
func shrU32(a uint32, n uint32) uint32  { return a >> (n & 31) }
func rotl32(a uint32, n uint32) uint32  { return bits.RotateLeft32(a, int(n&31)) }
func rotr32(a uint32, n uint32) uint32  { return bits.RotateLeft32(a, -int(n&31)) }

func shl64(a uint64, n uint64) uint64  { return a << (n & 63) }
func shrS64(a int64, n uint64) int64   { return a >> (uint64(n) & 63) }
func shrU64(a uint64, n uint64) uint64 { return a >> (n & 63) }
func rotl64(a uint64, n uint64) uint64 { return bits.RotateLeft64(a, int(n&63)) }
func rotr64(a uint64, n uint64) uint64 { return bits.RotateLeft64(a, -int(n&63)) }

// --- integer bit-counting, defined on all bits (spec.md §4.1) ---

func clz32(v uint32) int32    { return int32(bits.LeadingZeros32(v)) }
func ctz32(v uint32) int32    { return int32(bits.TrailingZeros32(v)) }
func popcnt32(v uint32) int32 { return int32(bits.OnesCount32(v)) }

func clz64(v uint64) int64    { return int64(bits.LeadingZeros64(v)) }
func ctz64(v uint64) int64    { return int64(bits.TrailingZeros64(v)) }
func popcnt64(v uint64) int64 { return int64(bits.OnesCount64(v)) }

// --- float arithmetic (spec.md §4.1) ---

func fmin32(a, b float32) float32 {
	return float32(moremath.WasmCompatMin(float64(a), float64(b)))
}
func fmax32(a, b float32) float32 {
	return float32(moremath.WasmCompatMax(float64(a), float64(b)))
}
func fmin64(a, b float64) float64 { return moremath.WasmCompatMin(a, b) }
func fmax64(a, b float64) float64 { return moremath.WasmCompatMax(a, b) }

// copysign copies the sign of b onto the magnitude of a. Implemented
// per spec.md §9 (the original source leaves this Err::NotImplemented).
func copysign32(a, b float32) float32 { return float32(math.Copysign(float64(a), float64(b))) }
func copysign64(a, b float64) float64 { return math.Copysign(a, b) }

func nearest32(v float32) float32 { return moremath.WasmCompatNearestF32(v) }
func nearest64(v float64) float64 { return moremath.WasmCompatNearestF64(v) }

// --- float-to-int truncation (traps on NaN/out-of-range, §4.1) ---

func truncS32to32(v float32) int32 {
	if math.IsNaN(float64(v)) || v < -2147483648.0 || v >= 2147483648.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return int32(v)
}

func truncU32to32(v float32) uint32 {
	if math.IsNaN(float64(v)) || v <= -1.0 || v >= 4294967296.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return uint32(v)
}

func truncS64to32(v float64) int32 {
	if math.IsNaN(v) || v < -2147483648.0 || v >= 2147483648.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return int32(v)
}

func truncU64to32(v float64) uint32 {
	if math.IsNaN(v) || v <= -1.0 || v >= 4294967296.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return uint32(v)
}

func truncS32to64(v float32) int64 {
	if math.IsNaN(float64(v)) || v < -9223372036854775808.0 || v >= 9223372036854775808.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return int64(v)
}

func truncU32to64(v float32) uint64 {
	if math.IsNaN(float64(v)) || v <= -1.0 || v >= 18446744073709551616.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return uint64(v)
}

func truncS64to64(v float64) int64 {
	if math.IsNaN(v) || v < -9223372036854775808.0 || v >= 9223372036854775808.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return int64(v)
}

func truncU64to64(v float64) uint64 {
	if math.IsNaN(v) || v <= -1.0 || v >= 18446744073709551616.0 {
		panic(wasmruntime.ErrTrapInvalidConversionToInt)
	}
	return uint64(v)
}
