package interpreter

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// blockFrame is one entry of the control-frame stack (spec.md §3):
// the value-stack height at entry (valueLimit) and the block's result
// type, if any. Function bodies here are nested instruction trees
// rather than a flat opcode array with jump offsets, so a frame does
// not need to remember a resume position the way original_source's
// BlockFrame does — falling off the end of a Then/Else slice, or a
// loop restarting, is handled by ordinary Go call-stack recursion in
// interpreter.go. valueLimit/result are exactly what branchTo needs to
// unwind a `br`/`br_if`/`br_table` to an arbitrary enclosing frame.
type blockFrame struct {
	valueLimit int
	result     *api.ValueType
}

// ctrlKind is the tag of a ctrlResult, the structured-control-flow
// analogue of spec.md §4.4's InstructionOutcome, adapted to the
// tree-recursive evaluator: running a Then/Else slice either falls off
// the end normally or is unwound by a branch targeting some enclosing
// depth. `return` is implemented as a branch to the outermost frame
// (spec.md's own equivalence), so it needs no separate kind.
type ctrlKind int8

const (
	ctrlNormal ctrlKind = iota
	ctrlBranch
)

type ctrlResult struct {
	kind  ctrlKind
	depth int // valid only when kind == ctrlBranch; relative block depth remaining to unwind
}

var resNormal = ctrlResult{kind: ctrlNormal}

func resBranch(depth int) ctrlResult { return ctrlResult{kind: ctrlBranch, depth: depth} }

// functionContext is the per-invocation state of spec.md §4.3: a
// borrowed module, a value stack, a frame stack, and locals.
type functionContext struct {
	module *wasm.ModuleInstance

	valueStack []api.RuntimeValue
	frameStack []blockFrame
	locals     []api.RuntimeValue
}

// newFunctionContext constructs a call's execution state: locals are
// args followed by zero-valued I32 entries for the function's
// remaining declared locals.
func newFunctionContext(fn *wasm.FunctionInstance, args []api.RuntimeValue, numLocals int) (*functionContext, error) {
	if len(args) != fn.Type.ParamCount() {
		return nil, &wasmruntime.ValueStackError{Msg: "argument count does not match signature"}
	}
	if numLocals < len(args) {
		numLocals = len(args)
	}
	locals := make([]api.RuntimeValue, numLocals)
	copy(locals, args)
	for i := len(args); i < numLocals; i++ {
		locals[i] = api.I32(0)
	}

	return &functionContext{
		module: fn.Module,
		locals: locals,
	}, nil
}

func (c *functionContext) pushValue(v api.RuntimeValue) {
	c.valueStack = append(c.valueStack, v)
}

func (c *functionContext) topValue() api.RuntimeValue {
	if len(c.valueStack) == 0 {
		panic(&wasmruntime.ValueStackError{Msg: "non-empty value stack expected"})
	}
	return c.valueStack[len(c.valueStack)-1]
}

func (c *functionContext) popValue() api.RuntimeValue {
	if len(c.valueStack) == 0 {
		panic(&wasmruntime.ValueStackError{Msg: "non-empty value stack expected"})
	}
	v := c.valueStack[len(c.valueStack)-1]
	c.valueStack = c.valueStack[:len(c.valueStack)-1]
	return v
}

// popValueAs pops and checks the tag matches t; a mismatch means the
// bytecode was not validated, an internal invariant violation.
func (c *functionContext) popValueAs(t api.ValueType) api.RuntimeValue {
	v := c.popValue()
	if v.Type != t {
		panic(&wasmruntime.ValueStackError{Msg: "operand type mismatch"})
	}
	return v
}

func (c *functionContext) popPair() (api.RuntimeValue, api.RuntimeValue) {
	right := c.popValue()
	left := c.popValue()
	return left, right
}

func (c *functionContext) popTriple() (api.RuntimeValue, api.RuntimeValue, api.RuntimeValue) {
	right := c.popValue()
	mid := c.popValue()
	left := c.popValue()
	return left, mid, right
}

func (c *functionContext) getLocal(idx uint32) api.RuntimeValue {
	if int(idx) >= len(c.locals) {
		panic(&wasmruntime.LocalError{Msg: "local index out of range"})
	}
	return c.locals[idx]
}

func (c *functionContext) setLocal(idx uint32, v api.RuntimeValue) {
	if int(idx) >= len(c.locals) {
		panic(&wasmruntime.LocalError{Msg: "local index out of range"})
	}
	c.locals[idx] = v
}

// pushFrame enters a new block/loop/if arm, recording the value stack
// height at entry.
func (c *functionContext) pushFrame(result *api.ValueType) {
	c.frameStack = append(c.frameStack, blockFrame{
		valueLimit: len(c.valueStack),
		result:     result,
	})
}

// popFrameRaw removes the innermost frame's bookkeeping entry only. The
// caller (runBlockArm/runLoopArm) has its own record of the
// construct's value-stack height and result type — exitBlock — because
// Block/If and Loop disagree on what a frame's result type means for
// branch-arity purposes, so the stack truncation itself is not done
// here; see branchTo for the one case where a frame's recorded
// result does drive the truncation.
func (c *functionContext) popFrameRaw() {
	if len(c.frameStack) == 0 {
		panic(&wasmruntime.FrameStackError{Msg: "non-empty frame stack expected"})
	}
	c.frameStack = c.frameStack[:len(c.frameStack)-1]
}

func (c *functionContext) unwindTo(frame blockFrame) {
	if frame.valueLimit > len(c.valueStack) {
		panic(&wasmruntime.FrameStackError{Msg: "value_limit invariant violated"})
	}
	var result *api.RuntimeValue
	if frame.result != nil {
		v := c.popValue()
		result = &v
	}
	c.valueStack = c.valueStack[:frame.valueLimit]
	if result != nil {
		c.pushValue(*result)
	}
}

// branchTo implements `br`/`br_if`/`br_table`'s depth semantics: depth
// 0 targets the innermost frame, depth 1 the next one out, and so on.
// The target frame's stack-height/result invariant is applied
// immediately and every frame from the innermost up to (and including)
// the target is popped, since the tree-recursive evaluator skips
// straight past any intervening block bodies. It returns the relative
// depth for the caller to keep propagating up the Go call stack until
// the owning runBlock call recognizes depth 0 as its own frame.
func (c *functionContext) branchTo(depth int) ctrlResult {
	targetIdx := len(c.frameStack) - 1 - depth
	if targetIdx < 0 {
		panic(&wasmruntime.FrameStackError{Msg: "branch depth exceeds frame stack"})
	}
	target := c.frameStack[targetIdx]
	c.unwindTo(target)
	c.frameStack = c.frameStack[:targetIdx]
	return resBranch(depth)
}
