package wasm

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// GlobalType describes a global variable's declared value type and
// mutability, independent of any particular instance's current value.
type GlobalType struct {
	ValType api.ValueType
	Mutable bool
}

// GlobalInstance is a single mutable-or-immutable global cell. Val
// stores the raw bit pattern, interpreted per Type.ValType, mirroring
// RuntimeValue's own bits-plus-tag representation so Get/Set are
// trivial re-tagging operations.
type GlobalInstance struct {
	Type *GlobalType
	Val  uint64
}

// NewGlobalInstance creates a global initialized to v, whose Type.ValType
// is taken from v.
func NewGlobalInstance(v api.RuntimeValue, mutable bool) *GlobalInstance {
	return &GlobalInstance{
		Type: &GlobalType{ValType: v.Type, Mutable: mutable},
		Val:  v.Bits(),
	}
}

// Get returns the global's current value as a tagged RuntimeValue.
func (g *GlobalInstance) Get() api.RuntimeValue {
	switch g.Type.ValType {
	case api.ValueTypeI32:
		return api.I32FromBits(uint32(g.Val))
	case api.ValueTypeI64:
		return api.I64FromBits(g.Val)
	case api.ValueTypeF32:
		return api.F32FromBits(uint32(g.Val))
	default:
		return api.F64FromBits(g.Val)
	}
}

// Set overwrites the global's value, trapping if the global is
// immutable — spec.md §3/§4.2: "Immutable globals reject set".
func (g *GlobalInstance) Set(v api.RuntimeValue) {
	if !g.Type.Mutable {
		panic(wasmruntime.ErrTrapImmutableGlobal)
	}
	g.Val = v.Bits()
}
