// Component 4 of spec.md §2: the instruction evaluator. run_instruction
// in the original source works over a flat bytecode array with a
// BlockFrame.position used to jump back into it; here a function body
// is a tree of Instruction nodes (Block/Loop/If carry their nested
// Then/Else sequences directly, per internal/wasm/instruction.go), so
// structured control flow is driven by Go call-stack recursion instead
// of position bookkeeping. branchTo in context.go still implements the
// depth-relative unwinding spec.md §4.4 describes; `return` is
// implemented as a branch to the outermost frame.
package interpreter

import (
	"fmt"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
	"github.com/gowasm/wazerolite/internal/wasmdebug"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// RunFunction executes fn's body against args and returns its result,
// matching spec.md §6's run_function(signature, body, args) contract.
// Every trap raised anywhere in the call tree is recovered here,
// exactly once per invocation, and converted to a returned error —
// mirroring tetratelabs-wazero's moduleEngine.Call defer/recover at its
// own single call boundary. Nested calls (OpCall/OpCallIndirect) go
// through this same function recursively, so each level of the Wasm
// call stack gets its own recover point.
func RunFunction(fn *wasm.FunctionInstance, args []api.RuntimeValue) (result *api.RuntimeValue, err error) {
	name := fn.Name
	if fn.Module != nil {
		name = wasmdebug.FuncName(fn.Module.Name, fn.Name, 0)
	}

	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case error:
				err = fmt.Errorf("%s: %w", name, e)
			default:
				err = fmt.Errorf("%s: %v", name, e)
			}
		}
	}()

	ctx, ferr := newFunctionContext(fn, args, fn.NumLocals)
	if ferr != nil {
		return nil, fmt.Errorf("%s: %w", name, ferr)
	}

	ctx.pushFrame(fn.Type.Result)
	res := runSeq(ctx, fn.Body)
	if res.kind == ctrlNormal {
		exitBlock(ctx, 0, fn.Type.Result)
	}
	// A ctrlBranch here can only be depth 0 (return, or a br targeting
	// the outermost frame): branchTo already unwound the stack and
	// popped every frame down through the function's own, so there is
	// nothing left to do.

	if fn.Type.HasResult() {
		v := ctx.popValue()
		return &v, nil
	}
	return nil, nil
}

// runSeq runs instrs in order, stopping as soon as one yields a
// non-normal outcome (a branch unwinding past this sequence).
func runSeq(ctx *functionContext, instrs []wasm.Instruction) ctrlResult {
	for i := range instrs {
		res := runOne(ctx, &instrs[i])
		if res.kind != ctrlNormal {
			return res
		}
	}
	return resNormal
}

// exitBlock applies a construct's normal (non-branching) exit. A
// value is preserved across the truncation back to valueLimit only
// when the body actually left one on top (len > valueLimit) and
// blockType calls for it: an If whose condition was false and which
// has no Else arm runs an empty Then, leaving the stack exactly at
// valueLimit, and must not consume whatever value the enclosing
// sequence already had sitting below.
func exitBlock(ctx *functionContext, valueLimit int, blockType *api.ValueType) {
	if blockType != nil && len(ctx.valueStack) > valueLimit {
		v := ctx.popValue()
		ctx.valueStack = ctx.valueStack[:valueLimit]
		ctx.pushValue(v)
		return
	}
	ctx.valueStack = ctx.valueStack[:valueLimit]
}

func runOne(ctx *functionContext, in *wasm.Instruction) ctrlResult {
	switch in.Opcode {

	case wasm.OpUnreachable:
		panic(wasmruntime.ErrTrapUnreachable)
	case wasm.OpNop:
		return resNormal

	case wasm.OpBlock:
		return runBlockArm(ctx, in.Then, in.BlockType)
	case wasm.OpLoop:
		return runLoopArm(ctx, in.Then, in.BlockType)
	case wasm.OpIf:
		cond := ctx.popValueAs(api.ValueTypeI32)
		body := in.Else
		if cond.ToI32() != 0 {
			body = in.Then
		}
		return runBlockArm(ctx, body, in.BlockType)

	case wasm.OpBr:
		return ctx.branchTo(int(in.Index))
	case wasm.OpBrIf:
		cond := ctx.popValueAs(api.ValueTypeI32)
		if cond.ToI32() == 0 {
			return resNormal
		}
		return ctx.branchTo(int(in.Index))
	case wasm.OpBrTable:
		idx := ctx.popValueAs(api.ValueTypeI32).ToU32()
		depth := in.BrDefault
		if int(idx) < len(in.BrTable) {
			depth = in.BrTable[idx]
		}
		return ctx.branchTo(int(depth))
	case wasm.OpReturn:
		return ctx.branchTo(len(ctx.frameStack) - 1)

	case wasm.OpCall:
		return runCall(ctx, in.Index)
	case wasm.OpCallIndirect:
		return runCallIndirect(ctx, in.Index)

	case wasm.OpDrop:
		ctx.popValue()
		return resNormal
	case wasm.OpSelect:
		cond := ctx.popValueAs(api.ValueTypeI32)
		val2 := ctx.popValue()
		val1 := ctx.popValue()
		if cond.ToI32() != 0 {
			ctx.pushValue(val1)
		} else {
			ctx.pushValue(val2)
		}
		return resNormal

	case wasm.OpGetLocal:
		ctx.pushValue(ctx.getLocal(in.Index))
		return resNormal
	case wasm.OpSetLocal:
		ctx.setLocal(in.Index, ctx.popValue())
		return resNormal
	case wasm.OpTeeLocal:
		ctx.setLocal(in.Index, ctx.topValue())
		return resNormal
	case wasm.OpGetGlobal:
		g, err := ctx.module.Global(in.Index)
		if err != nil {
			panic(err)
		}
		ctx.pushValue(g.Get())
		return resNormal
	case wasm.OpSetGlobal:
		g, err := ctx.module.Global(in.Index)
		if err != nil {
			panic(err)
		}
		g.Set(ctx.popValue())
		return resNormal

	case wasm.OpCurrentMemory:
		ctx.pushValue(api.I32(int32(ctx.module.Memory.PageSize())))
		return resNormal
	case wasm.OpGrowMemory:
		delta := ctx.popValueAs(api.ValueTypeI32).ToU32()
		ctx.pushValue(api.I32(int32(ctx.module.Memory.Grow(delta))))
		return resNormal

	case wasm.OpI32Const:
		ctx.pushValue(api.I32(in.I32Imm))
		return resNormal
	case wasm.OpI64Const:
		ctx.pushValue(api.I64(in.I64Imm))
		return resNormal
	case wasm.OpF32Const:
		ctx.pushValue(api.F32FromBits(in.F32Bits))
		return resNormal
	case wasm.OpF64Const:
		ctx.pushValue(api.F64FromBits(in.F64Bits))
		return resNormal
	}

	if out, ok := runMemoryOp(ctx, in); ok {
		return out
	}
	if out, ok := runCompareOp(ctx, in); ok {
		return out
	}
	if out, ok := runNumericOp(ctx, in); ok {
		return out
	}
	if out, ok := runConversionOp(ctx, in); ok {
		return out
	}
	panic(fmt.Errorf("unhandled opcode %d", in.Opcode))
}

func runBlockArm(ctx *functionContext, body []wasm.Instruction, blockType *api.ValueType) ctrlResult {
	valueLimit := len(ctx.valueStack)
	ctx.pushFrame(blockType)
	res := runSeq(ctx, body)
	switch res.kind {
	case ctrlNormal:
		ctx.popFrameRaw()
		exitBlock(ctx, valueLimit, blockType)
		return resNormal
	default: // ctrlBranch
		if res.depth == 0 {
			return resNormal
		}
		return resBranch(res.depth - 1)
	}
}

func runLoopArm(ctx *functionContext, body []wasm.Instruction, blockType *api.ValueType) ctrlResult {
	valueLimit := len(ctx.valueStack)
	for {
		// A loop's label (the `br` target) always has arity zero: a
		// branch to the loop restarts it rather than flowing a value
		// into the next iteration, unlike Block/If whose label arity
		// equals blockType.
		ctx.pushFrame(nil)
		res := runSeq(ctx, body)
		switch res.kind {
		case ctrlNormal:
			ctx.popFrameRaw()
			exitBlock(ctx, valueLimit, blockType)
			return resNormal
		default:
			if res.depth == 0 {
				continue
			}
			return resBranch(res.depth - 1)
		}
	}
}

func runCall(ctx *functionContext, fnIdx uint32) ctrlResult {
	callee, err := ctx.module.Function(fnIdx)
	if err != nil {
		panic(err)
	}
	invoke(ctx, callee)
	return resNormal
}

func runCallIndirect(ctx *functionContext, typeIdx uint32) ctrlResult {
	tableIdx := ctx.popValueAs(api.ValueTypeI32).ToU32()
	table := ctx.module.Table
	if table == nil {
		panic(wasmruntime.ErrTrapInvalidTableAccess)
	}
	callee, ok := table.Get(tableIdx)
	if !ok || callee == nil {
		panic(wasmruntime.ErrTrapInvalidTableAccess)
	}
	if int(typeIdx) >= len(ctx.module.Types) || !signatureMatches(ctx.module.Types[typeIdx], callee.Type) {
		panic(wasmruntime.ErrTrapIndirectCallTypeMismatch)
	}
	invoke(ctx, callee)
	return resNormal
}

func signatureMatches(a, b *api.FunctionType) bool {
	if a.HasResult() != b.HasResult() {
		return false
	}
	if a.HasResult() && *a.Result != *b.Result {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

// invoke pops callee's arguments off ctx's value stack (in signature
// order), runs it via RunFunction — its own call boundary recovers any
// trap it raises — and re-panics the error so the caller's own RunFunction
// invocation unwinds the same way a directly-raised trap would.
func invoke(ctx *functionContext, callee *wasm.FunctionInstance) {
	n := callee.Type.ParamCount()
	args := make([]api.RuntimeValue, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = ctx.popValue()
	}
	result, err := RunFunction(callee, args)
	if err != nil {
		panic(err)
	}
	if result != nil {
		ctx.pushValue(*result)
	}
}
