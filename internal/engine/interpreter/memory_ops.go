package interpreter

import (
	"math"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// effectiveAddress computes base+offset, trapping on overflow rather
// than wrapping mod 2**32. Per spec.md §9's REDESIGN note, alignment
// (in.Align) is never consulted: it only ever hints at a fast path in
// a real engine and has no bearing on correctness here.
func effectiveAddress(base uint32, offset uint32) uint32 {
	sum := uint64(base) + uint64(offset)
	if sum > math.MaxUint32 {
		panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
	}
	return uint32(sum)
}

func runMemoryOp(ctx *functionContext, in *wasm.Instruction) (ctrlResult, bool) {
	var mem *wasm.MemoryInstance
	if ctx.module != nil {
		mem = ctx.module.Memory
	}

	switch in.Opcode {
	case wasm.OpI32Load:
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		v, ok := mem.ReadUint32Le(addr)
		if !ok {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
		ctx.pushValue(api.I32FromBits(v))
	case wasm.OpI64Load:
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		v, ok := mem.ReadUint64Le(addr)
		if !ok {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
		ctx.pushValue(api.I64FromBits(v))
	case wasm.OpF32Load:
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		v, ok := mem.ReadUint32Le(addr)
		if !ok {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
		ctx.pushValue(api.F32FromBits(v))
	case wasm.OpF64Load:
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		v, ok := mem.ReadUint64Le(addr)
		if !ok {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
		ctx.pushValue(api.F64FromBits(v))

	case wasm.OpI32Load8S:
		b := readByte(mem, ctx, in)
		ctx.pushValue(api.I32(int32(int8(b))))
	case wasm.OpI32Load8U:
		b := readByte(mem, ctx, in)
		ctx.pushValue(api.I32(int32(b)))
	case wasm.OpI32Load16S:
		v := readUint16(mem, ctx, in)
		ctx.pushValue(api.I32(int32(int16(v))))
	case wasm.OpI32Load16U:
		v := readUint16(mem, ctx, in)
		ctx.pushValue(api.I32(int32(v)))
	case wasm.OpI64Load8S:
		b := readByte(mem, ctx, in)
		ctx.pushValue(api.I64(int64(int8(b))))
	case wasm.OpI64Load8U:
		b := readByte(mem, ctx, in)
		ctx.pushValue(api.I64(int64(b)))
	case wasm.OpI64Load16S:
		v := readUint16(mem, ctx, in)
		ctx.pushValue(api.I64(int64(int16(v))))
	case wasm.OpI64Load16U:
		v := readUint16(mem, ctx, in)
		ctx.pushValue(api.I64(int64(v)))
	case wasm.OpI64Load32S:
		v := readUint32(mem, ctx, in)
		ctx.pushValue(api.I64(int64(int32(v))))
	case wasm.OpI64Load32U:
		v := readUint32(mem, ctx, in)
		ctx.pushValue(api.I64(int64(v)))

	case wasm.OpI32Store:
		v := ctx.popValueAs(api.ValueTypeI32)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint32Le(addr, v.ToU32()) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI64Store:
		v := ctx.popValueAs(api.ValueTypeI64)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint64Le(addr, v.ToU64()) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpF32Store:
		v := ctx.popValueAs(api.ValueTypeF32)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint32Le(addr, uint32(v.Bits())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpF64Store:
		v := ctx.popValueAs(api.ValueTypeF64)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint64Le(addr, v.Bits()) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI32Store8:
		v := ctx.popValueAs(api.ValueTypeI32)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteByte(addr, byte(v.ToU32())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI32Store16:
		v := ctx.popValueAs(api.ValueTypeI32)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint16Le(addr, uint16(v.ToU32())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI64Store8:
		v := ctx.popValueAs(api.ValueTypeI64)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteByte(addr, byte(v.ToU64())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI64Store16:
		v := ctx.popValueAs(api.ValueTypeI64)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint16Le(addr, uint16(v.ToU64())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}
	case wasm.OpI64Store32:
		v := ctx.popValueAs(api.ValueTypeI64)
		addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
		if !mem.WriteUint32Le(addr, uint32(v.ToU64())) {
			panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
		}

	default:
		return ctrlResult{}, false
	}
	return resNormal, true
}

func readByte(mem *wasm.MemoryInstance, ctx *functionContext, in *wasm.Instruction) byte {
	addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
	b, ok := mem.ReadByte(addr)
	if !ok {
		panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
	}
	return b
}

func readUint16(mem *wasm.MemoryInstance, ctx *functionContext, in *wasm.Instruction) uint16 {
	addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
	v, ok := mem.ReadUint16Le(addr)
	if !ok {
		panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
	}
	return v
}

func readUint32(mem *wasm.MemoryInstance, ctx *functionContext, in *wasm.Instruction) uint32 {
	addr := effectiveAddress(ctx.popValueAs(api.ValueTypeI32).ToU32(), in.Offset)
	v, ok := mem.ReadUint32Le(addr)
	if !ok {
		panic(wasmruntime.ErrTrapOutOfBoundsMemoryAccess)
	}
	return v
}
