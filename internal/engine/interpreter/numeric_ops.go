package interpreter

import (
	"math"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

func runNumericOp(ctx *functionContext, in *wasm.Instruction) (ctrlResult, bool) {
	switch in.Opcode {

	// --- i32 ---
	case wasm.OpI32Clz:
		ctx.pushValue(api.I32(clz32(ctx.popValueAs(api.ValueTypeI32).ToU32())))
	case wasm.OpI32Ctz:
		ctx.pushValue(api.I32(ctz32(ctx.popValueAs(api.ValueTypeI32).ToU32())))
	case wasm.OpI32Popcnt:
		ctx.pushValue(api.I32(popcnt32(ctx.popValueAs(api.ValueTypeI32).ToU32())))
	case wasm.OpI32Add:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(a + b))
	case wasm.OpI32Sub:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(a - b))
	case wasm.OpI32Mul:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(a * b))
	case wasm.OpI32DivS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(divS32(a, b)))
	case wasm.OpI32DivU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32(int32(divU32(a, b))))
	case wasm.OpI32RemS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(remS32(a, b)))
	case wasm.OpI32RemU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32(int32(remU32(a, b))))
	case wasm.OpI32And:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(a & b))
	case wasm.OpI32Or:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(a | b))
	case wasm.OpI32Xor:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(a ^ b))
	case wasm.OpI32Shl:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(shl32(a, b)))
	case wasm.OpI32ShrS:
		a, b := popI32Pair(ctx)
		ctx.pushValue(api.I32(shrS32(a, uint32(b))))
	case wasm.OpI32ShrU:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(shrU32(a, b)))
	case wasm.OpI32Rotl:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(rotl32(a, b)))
	case wasm.OpI32Rotr:
		a, b := popU32Pair(ctx)
		ctx.pushValue(api.I32FromBits(rotr32(a, b)))

	// --- i64 ---
	case wasm.OpI64Clz:
		ctx.pushValue(api.I64(clz64(ctx.popValueAs(api.ValueTypeI64).ToU64())))
	case wasm.OpI64Ctz:
		ctx.pushValue(api.I64(ctz64(ctx.popValueAs(api.ValueTypeI64).ToU64())))
	case wasm.OpI64Popcnt:
		ctx.pushValue(api.I64(popcnt64(ctx.popValueAs(api.ValueTypeI64).ToU64())))
	case wasm.OpI64Add:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(a + b))
	case wasm.OpI64Sub:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(a - b))
	case wasm.OpI64Mul:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(a * b))
	case wasm.OpI64DivS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(divS64(a, b)))
	case wasm.OpI64DivU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64(int64(divU64(a, b))))
	case wasm.OpI64RemS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(remS64(a, b)))
	case wasm.OpI64RemU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64(int64(remU64(a, b))))
	case wasm.OpI64And:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(a & b))
	case wasm.OpI64Or:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(a | b))
	case wasm.OpI64Xor:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(a ^ b))
	case wasm.OpI64Shl:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(shl64(a, b)))
	case wasm.OpI64ShrS:
		a, b := popI64Pair(ctx)
		ctx.pushValue(api.I64(shrS64(a, uint64(b))))
	case wasm.OpI64ShrU:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(shrU64(a, b)))
	case wasm.OpI64Rotl:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(rotl64(a, b)))
	case wasm.OpI64Rotr:
		a, b := popU64Pair(ctx)
		ctx.pushValue(api.I64FromBits(rotr64(a, b)))

	// --- f32 ---
	case wasm.OpF32Abs:
		ctx.pushValue(api.F32(float32(math.Abs(float64(ctx.popValueAs(api.ValueTypeF32).ToF32())))))
	case wasm.OpF32Neg:
		ctx.pushValue(api.F32(-ctx.popValueAs(api.ValueTypeF32).ToF32()))
	case wasm.OpF32Ceil:
		ctx.pushValue(api.F32(float32(math.Ceil(float64(ctx.popValueAs(api.ValueTypeF32).ToF32())))))
	case wasm.OpF32Floor:
		ctx.pushValue(api.F32(float32(math.Floor(float64(ctx.popValueAs(api.ValueTypeF32).ToF32())))))
	case wasm.OpF32Trunc:
		ctx.pushValue(api.F32(float32(math.Trunc(float64(ctx.popValueAs(api.ValueTypeF32).ToF32())))))
	case wasm.OpF32Nearest:
		ctx.pushValue(api.F32(nearest32(ctx.popValueAs(api.ValueTypeF32).ToF32())))
	case wasm.OpF32Sqrt:
		ctx.pushValue(api.F32(float32(math.Sqrt(float64(ctx.popValueAs(api.ValueTypeF32).ToF32())))))
	case wasm.OpF32Add:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(a + b))
	case wasm.OpF32Sub:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(a - b))
	case wasm.OpF32Mul:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(a * b))
	case wasm.OpF32Div:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(a / b))
	case wasm.OpF32Min:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(fmin32(a, b)))
	case wasm.OpF32Max:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(fmax32(a, b)))
	case wasm.OpF32Copysign:
		a, b := popF32Pair(ctx)
		ctx.pushValue(api.F32(copysign32(a, b)))

	// --- f64 ---
	case wasm.OpF64Abs:
		ctx.pushValue(api.F64(math.Abs(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Neg:
		ctx.pushValue(api.F64(-ctx.popValueAs(api.ValueTypeF64).ToF64()))
	case wasm.OpF64Ceil:
		ctx.pushValue(api.F64(math.Ceil(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Floor:
		ctx.pushValue(api.F64(math.Floor(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Trunc:
		ctx.pushValue(api.F64(math.Trunc(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Nearest:
		ctx.pushValue(api.F64(nearest64(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Sqrt:
		ctx.pushValue(api.F64(math.Sqrt(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpF64Add:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(a + b))
	case wasm.OpF64Sub:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(a - b))
	case wasm.OpF64Mul:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(a * b))
	case wasm.OpF64Div:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(a / b))
	case wasm.OpF64Min:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(fmin64(a, b)))
	case wasm.OpF64Max:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(fmax64(a, b)))
	case wasm.OpF64Copysign:
		a, b := popF64Pair(ctx)
		ctx.pushValue(api.F64(copysign64(a, b)))

	default:
		return ctrlResult{}, false
	}
	return resNormal, true
}
