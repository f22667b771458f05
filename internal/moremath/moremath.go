// Package moremath collects the floating point edge cases where the
// Wasm specification diverges from Go's math package, so the
// interpreter can call a single helper instead of re-deriving the
// IEEE-754 corner cases at every opcode site.
package moremath

import "math"

// WasmCompatMin mirrors math.Min, except a NaN in either operand always
// yields NaN (Go's math.Min has quirks around -Inf), and of two signed
// zeros the result carries a negative sign if either operand does.
//
// https://github.com/golang/go/blob/1d20a362d0ca4898d77865e314ef6f73582daef0/src/math/dim.go#L74-L91
func WasmCompatMin(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case math.IsInf(x, -1) || math.IsInf(y, -1):
		return math.Inf(-1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// WasmCompatMax mirrors math.Max with the same NaN/signed-zero fixes
// as WasmCompatMin, but for the maximum.
//
// https://github.com/golang/go/blob/1d20a362d0ca4898d77865e314ef6f73582daef0/src/math/dim.go#L42-L59
func WasmCompatMax(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case math.IsInf(x, 1) || math.IsInf(y, 1):
		return math.Inf(1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return y
		}
		return x
	}
	if x > y {
		return x
	}
	return y
}

// WasmCompatNearestF64 implements Wasm's "nearest" rounding: round to
// the nearest integer, ties to even. math.RoundToEven already does
// this, but NaN/Inf/zero must pass through untouched rather than be
// coerced, which RoundToEven already guarantees - this wrapper exists
// so call sites read the Wasm opcode name instead of the Go one.
func WasmCompatNearestF64(x float64) float64 {
	return math.RoundToEven(x)
}

// WasmCompatNearestF32 is the float32 form of WasmCompatNearestF64.
func WasmCompatNearestF32(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}
