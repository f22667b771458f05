package interpreter

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

func boolValue(b bool) api.RuntimeValue {
	if b {
		return api.I32(1)
	}
	return api.I32(0)
}

func runCompareOp(ctx *functionContext, in *wasm.Instruction) (ctrlResult, bool) {
	switch in.Opcode {
	case wasm.OpI32Eqz:
		ctx.pushValue(boolValue(ctx.popValueAs(api.ValueTypeI32).ToI32() == 0))
	case wasm.OpI32Eq:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a == b))
	case wasm.OpI32Ne:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a != b))
	case wasm.OpI32LtS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpI32LtU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpI32GtS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpI32GtU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpI32LeS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpI32LeU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpI32GeS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(boolValue(a >= b))
	case wasm.OpI32GeU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(boolValue(a >= b))

	case wasm.OpI64Eqz:
		ctx.pushValue(boolValue(ctx.popValueAs(api.ValueTypeI64).ToI64() == 0))
	case wasm.OpI64Eq:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a == b))
	case wasm.OpI64Ne:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a != b))
	case wasm.OpI64LtS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpI64LtU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpI64GtS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpI64GtU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpI64LeS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpI64LeU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpI64GeS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(boolValue(a >= b))
	case wasm.OpI64GeU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(boolValue(a >= b))

	case wasm.OpF32Eq:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a == b))
	case wasm.OpF32Ne:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a != b))
	case wasm.OpF32Lt:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpF32Gt:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpF32Le:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpF32Ge:
		a, b := popF32Pair(ctx)
		ctx.pushValue(boolValue(a >= b))

	case wasm.OpF64Eq:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a == b))
	case wasm.OpF64Ne:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a != b))
	case wasm.OpF64Lt:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a < b))
	case wasm.OpF64Gt:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a > b))
	case wasm.OpF64Le:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a <= b))
	case wasm.OpF64Ge:
		a, b := popF64Pair(ctx)
		ctx.pushValue(boolValue(a >= b))

	default:
		return ctrlResult{}, false
	}
	return resNormal, true
}

func popI32Pair(ctx *functionContext) (int32, int32) {
	l, r := ctx.popPair()
	return l.ToI32(), r.ToI32()
}
func popU32Pair(ctx *functionContext) (uint32, uint32) {
	l, r := ctx.popPair()
	return l.ToU32(), r.ToU32()
}
func popI64Pair(ctx *functionContext) (int64, int64) {
	l, r := ctx.popPair()
	return l.ToI64(), r.ToI64()
}
func popU64Pair(ctx *functionContext) (uint64, uint64) {
	l, r := ctx.popPair()
	return l.ToU64(), r.ToU64()
}
func popF32Pair(ctx *functionContext) (float32, float32) {
	l, r := ctx.popPair()
	return l.ToF32(), r.ToF32()
}
func popF64Pair(ctx *functionContext) (float64, float64) {
	l, r := ctx.popPair()
	return l.ToF64(), r.ToF64()
}
