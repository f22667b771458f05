package interpreter

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

func runConversionOp(ctx *functionContext, in *wasm.Instruction) (ctrlResult, bool) {
	switch in.Opcode {
	case wasm.OpI32WrapI64:
		v := ctx.popValueAs(api.ValueTypeI64).ToI64()
		ctx.pushValue(api.I32(int32(v)))
	case wasm.OpI32TruncSF32:
		ctx.pushValue(api.I32(truncS32to32(ctx.popValueAs(api.ValueTypeF32).ToF32())))
	case wasm.OpI32TruncUF32:
		ctx.pushValue(api.I32(int32(truncU32to32(ctx.popValueAs(api.ValueTypeF32).ToF32()))))
	case wasm.OpI32TruncSF64:
		ctx.pushValue(api.I32(truncS64to32(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpI32TruncUF64:
		ctx.pushValue(api.I32(int32(truncU64to32(ctx.popValueAs(api.ValueTypeF64).ToF64()))))

	case wasm.OpI64ExtendSI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToI32()
		ctx.pushValue(api.I64(int64(v)))
	case wasm.OpI64ExtendUI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToU32()
		ctx.pushValue(api.I64(int64(v)))
	case wasm.OpI64TruncSF32:
		ctx.pushValue(api.I64(truncS32to64(ctx.popValueAs(api.ValueTypeF32).ToF32())))
	case wasm.OpI64TruncUF32:
		ctx.pushValue(api.I64(int64(truncU32to64(ctx.popValueAs(api.ValueTypeF32).ToF32()))))
	case wasm.OpI64TruncSF64:
		ctx.pushValue(api.I64(truncS64to64(ctx.popValueAs(api.ValueTypeF64).ToF64())))
	case wasm.OpI64TruncUF64:
		ctx.pushValue(api.I64(int64(truncU64to64(ctx.popValueAs(api.ValueTypeF64).ToF64()))))

	case wasm.OpF32ConvertSI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToI32()
		ctx.pushValue(api.F32(float32(v)))
	case wasm.OpF32ConvertUI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToU32()
		ctx.pushValue(api.F32(float32(v)))
	case wasm.OpF32ConvertSI64:
		v := ctx.popValueAs(api.ValueTypeI64).ToI64()
		ctx.pushValue(api.F32(float32(v)))
	case wasm.OpF32ConvertUI64:
		v := ctx.popValueAs(api.ValueTypeI64).ToU64()
		ctx.pushValue(api.F32(float32(v)))
	case wasm.OpF32DemoteF64:
		v := ctx.popValueAs(api.ValueTypeF64).ToF64()
		ctx.pushValue(api.F32(float32(v)))

	case wasm.OpF64ConvertSI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToI32()
		ctx.pushValue(api.F64(float64(v)))
	case wasm.OpF64ConvertUI32:
		v := ctx.popValueAs(api.ValueTypeI32).ToU32()
		ctx.pushValue(api.F64(float64(v)))
	case wasm.OpF64ConvertSI64:
		v := ctx.popValueAs(api.ValueTypeI64).ToI64()
		ctx.pushValue(api.F64(float64(v)))
	case wasm.OpF64ConvertUI64:
		v := ctx.popValueAs(api.ValueTypeI64).ToU64()
		ctx.pushValue(api.F64(float64(v)))
	case wasm.OpF64PromoteF32:
		v := ctx.popValueAs(api.ValueTypeF32).ToF32()
		ctx.pushValue(api.F64(float64(v)))

	case wasm.OpI32ReinterpretF32:
		v := ctx.popValueAs(api.ValueTypeF32)
		ctx.pushValue(api.I32FromBits(uint32(v.Bits())))
	case wasm.OpI64ReinterpretF64:
		v := ctx.popValueAs(api.ValueTypeF64)
		ctx.pushValue(api.I64FromBits(v.Bits()))
	case wasm.OpF32ReinterpretI32:
		v := ctx.popValueAs(api.ValueTypeI32)
		ctx.pushValue(api.F32FromBits(uint32(v.Bits())))
	case wasm.OpF64ReinterpretI64:
		v := ctx.popValueAs(api.ValueTypeI64)
		ctx.pushValue(api.F64FromBits(v.Bits()))

	default:
		return ctrlResult{}, false
	}
	return resNormal, true
}
