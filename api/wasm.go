// Package api defines the value and signature types shared by every
// layer of wazerolite: the tagged runtime value, value-type constants,
// and function signatures.
package api

import (
	"fmt"
	"math"
)

// ValueType identifies which of the four Wasm numeric types a
// RuntimeValue or a function parameter/result holds.
//
// The numeric encoding follows the Wasm binary format's valtype byte
// so that a decoder (out of scope here) can hand these constants
// straight through.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-valtype
type ValueType byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
)

// String returns the Wasm text-format name of t, or "unknown".
func (t ValueType) String() string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	default:
		return "unknown"
	}
}

// RuntimeValue is a tagged Wasm value. The bit pattern is always stored
// in bits, regardless of Type: for I32/F32 only the low 32 bits are
// significant. This makes Reinterpret a pure re-tagging operation and
// keeps NaN payloads intact across it, per spec invariant 5.
type RuntimeValue struct {
	Type ValueType
	bits uint64
}

// I32 returns a RuntimeValue holding a 32-bit signed integer.
func I32(v int32) RuntimeValue { return RuntimeValue{Type: ValueTypeI32, bits: uint64(uint32(v))} }

// I64 returns a RuntimeValue holding a 64-bit signed integer.
func I64(v int64) RuntimeValue { return RuntimeValue{Type: ValueTypeI64, bits: uint64(v)} }

// F32 returns a RuntimeValue holding a 32-bit IEEE-754 float.
func F32(v float32) RuntimeValue {
	return RuntimeValue{Type: ValueTypeF32, bits: uint64(math.Float32bits(v))}
}

// F64 returns a RuntimeValue holding a 64-bit IEEE-754 float.
func F64(v float64) RuntimeValue {
	return RuntimeValue{Type: ValueTypeF64, bits: math.Float64bits(v)}
}

// I32FromBits constructs an I32 value directly from its raw bit pattern.
func I32FromBits(bits uint32) RuntimeValue { return RuntimeValue{Type: ValueTypeI32, bits: uint64(bits)} }

// I64FromBits constructs an I64 value directly from its raw bit pattern.
func I64FromBits(bits uint64) RuntimeValue { return RuntimeValue{Type: ValueTypeI64, bits: bits} }

// F32FromBits constructs an F32 value from an IEEE-754 binary32 bit pattern.
func F32FromBits(bits uint32) RuntimeValue { return RuntimeValue{Type: ValueTypeF32, bits: uint64(bits)} }

// F64FromBits constructs an F64 value from an IEEE-754 binary64 bit pattern.
func F64FromBits(bits uint64) RuntimeValue { return RuntimeValue{Type: ValueTypeF64, bits: bits} }

// Bits returns the raw 64-bit storage, with the upper 32 bits zeroed
// for I32/F32 values.
func (v RuntimeValue) Bits() uint64 { return v.bits }

// ToI32 interprets the value as a signed 32-bit integer. The caller must
// know Type == ValueTypeI32; this mirrors the validated-bytecode
// assumption the whole interpreter runs under.
func (v RuntimeValue) ToI32() int32 { return int32(uint32(v.bits)) }

// ToU32 interprets the value as an unsigned 32-bit integer.
func (v RuntimeValue) ToU32() uint32 { return uint32(v.bits) }

// ToI64 interprets the value as a signed 64-bit integer.
func (v RuntimeValue) ToI64() int64 { return int64(v.bits) }

// ToU64 interprets the value as an unsigned 64-bit integer.
func (v RuntimeValue) ToU64() uint64 { return v.bits }

// ToF32 interprets the value as an IEEE-754 binary32 float.
func (v RuntimeValue) ToF32() float32 { return math.Float32frombits(uint32(v.bits)) }

// ToF64 interprets the value as an IEEE-754 binary64 float.
func (v RuntimeValue) ToF64() float64 { return math.Float64frombits(v.bits) }

// IsZero reports whether an I32 or I64 value is zero. It always returns
// false for F32 and F64 values.
func (v RuntimeValue) IsZero() bool {
	switch v.Type {
	case ValueTypeI32:
		return uint32(v.bits) == 0
	case ValueTypeI64:
		return v.bits == 0
	default:
		return false
	}
}

// String renders the value for debugging/trap messages.
func (v RuntimeValue) String() string {
	switch v.Type {
	case ValueTypeI32:
		return fmt.Sprintf("i32:%d", v.ToI32())
	case ValueTypeI64:
		return fmt.Sprintf("i64:%d", v.ToI64())
	case ValueTypeF32:
		return fmt.Sprintf("f32:%v", v.ToF32())
	case ValueTypeF64:
		return fmt.Sprintf("f64:%v", v.ToF64())
	default:
		return "invalid"
	}
}

// FunctionType is a Wasm function signature: a list of parameter types
// and at most one result type (the Wasm MVP never has more than one).
type FunctionType struct {
	Params []ValueType
	Result *ValueType // nil means no result (BlockType NoResult)
}

// ParamCount returns the number of parameters.
func (f *FunctionType) ParamCount() int { return len(f.Params) }

// HasResult reports whether the function has a return value.
func (f *FunctionType) HasResult() bool { return f.Result != nil }
