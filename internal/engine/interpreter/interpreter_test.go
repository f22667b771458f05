package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/builder"
	"github.com/gowasm/wazerolite/internal/wasm"
	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

func i32Ptr() *api.ValueType {
	t := api.ValueTypeI32
	return &t
}

func i32i32Fn(body []wasm.Instruction) *wasm.FunctionInstance {
	return &wasm.FunctionInstance{
		Name:      "f",
		Type:      &api.FunctionType{Params: []api.ValueType{api.ValueTypeI32}, Result: i32Ptr()},
		Body:      body,
		NumLocals: 1,
	}
}

func TestScenario1_Trap(t *testing.T) {
	fn := i32Ptr()
	_ = fn
	f := &wasm.FunctionInstance{
		Name:      "trap",
		Type:      &api.FunctionType{Params: []api.ValueType{api.ValueTypeI32}},
		Body:      []wasm.Instruction{{Opcode: wasm.OpUnreachable}},
		NumLocals: 1,
	}
	_, err := RunFunction(f, []api.RuntimeValue{api.I32(0)})
	require.Error(t, err)
	require.ErrorIs(t, err, wasmruntime.ErrTrapUnreachable)
}

func TestScenario2_NopAndConst(t *testing.T) {
	f := i32i32Fn([]wasm.Instruction{
		{Opcode: wasm.OpNop},
		{Opcode: wasm.OpI32Const, I32Imm: 20},
		{Opcode: wasm.OpNop},
	})
	result, err := RunFunction(f, []api.RuntimeValue{api.I32(0)})
	require.NoError(t, err)
	require.Equal(t, int32(20), result.ToI32())
}

func TestScenario3_IfThen(t *testing.T) {
	body := []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: 20},
		{Opcode: wasm.OpGetLocal, Index: 0},
		{Opcode: wasm.OpIf, BlockType: i32Ptr(), Then: []wasm.Instruction{
			{Opcode: wasm.OpI32Const, I32Imm: 10},
		}},
	}
	f := i32i32Fn(body)

	result, err := RunFunction(f, []api.RuntimeValue{api.I32(0)})
	require.NoError(t, err)
	require.Equal(t, int32(20), result.ToI32())

	result, err = RunFunction(f, []api.RuntimeValue{api.I32(1)})
	require.NoError(t, err)
	require.Equal(t, int32(10), result.ToI32())
}

func TestScenario4_IfThenElse(t *testing.T) {
	body := []wasm.Instruction{
		{Opcode: wasm.OpGetLocal, Index: 0},
		{Opcode: wasm.OpIf, BlockType: i32Ptr(),
			Then: []wasm.Instruction{{Opcode: wasm.OpI32Const, I32Imm: 10}},
			Else: []wasm.Instruction{{Opcode: wasm.OpI32Const, I32Imm: 20}},
		},
	}
	f := i32i32Fn(body)

	result, err := RunFunction(f, []api.RuntimeValue{api.I32(0)})
	require.NoError(t, err)
	require.Equal(t, int32(20), result.ToI32())

	result, err = RunFunction(f, []api.RuntimeValue{api.I32(1)})
	require.NoError(t, err)
	require.Equal(t, int32(10), result.ToI32())
}

func TestScenario5_ReturnFromIf(t *testing.T) {
	body := []wasm.Instruction{
		{Opcode: wasm.OpGetLocal, Index: 0},
		{Opcode: wasm.OpIf, BlockType: i32Ptr(), Then: []wasm.Instruction{
			{Opcode: wasm.OpI32Const, I32Imm: 20},
			{Opcode: wasm.OpReturn},
		}},
		{Opcode: wasm.OpI32Const, I32Imm: 10},
	}
	f := i32i32Fn(body)

	result, err := RunFunction(f, []api.RuntimeValue{api.I32(0)})
	require.NoError(t, err)
	require.Equal(t, int32(10), result.ToI32())

	result, err = RunFunction(f, []api.RuntimeValue{api.I32(1)})
	require.NoError(t, err)
	require.Equal(t, int32(20), result.ToI32())
}

// Scenario 6: a loop that counts the local down to zero via `br_if`,
// doubling an accumulator local each iteration, matching spec.md's
// "doubling accumulator...verify the loop iterates until local reaches
// 0" scenario. Locals: 0 = countdown (arg), 1 = accumulator (starts 1).
func TestScenario6_LoopViaBr(t *testing.T) {
	body := []wasm.Instruction{
		{Opcode: wasm.OpI32Const, I32Imm: 1},
		{Opcode: wasm.OpSetLocal, Index: 1},
		{Opcode: wasm.OpLoop, BlockType: nil, Then: []wasm.Instruction{
			{Opcode: wasm.OpGetLocal, Index: 1},
			{Opcode: wasm.OpI32Const, I32Imm: 2},
			{Opcode: wasm.OpI32Mul},
			{Opcode: wasm.OpSetLocal, Index: 1},
			{Opcode: wasm.OpGetLocal, Index: 0},
			{Opcode: wasm.OpI32Const, I32Imm: 1},
			{Opcode: wasm.OpI32Sub},
			{Opcode: wasm.OpTeeLocal, Index: 0},
			{Opcode: wasm.OpBrIf, Index: 0},
		}},
		{Opcode: wasm.OpGetLocal, Index: 1},
	}
	f := &wasm.FunctionInstance{
		Name:      "loop",
		Type:      &api.FunctionType{Params: []api.ValueType{api.ValueTypeI32}, Result: i32Ptr()},
		Body:      body,
		NumLocals: 2,
	}

	result, err := RunFunction(f, []api.RuntimeValue{api.I32(3)})
	require.NoError(t, err)
	// Three iterations double the accumulator three times: 1*2*2*2 == 8.
	require.Equal(t, int32(8), result.ToI32())
}

func TestScenario7_CrossModuleCall(t *testing.T) {
	registry := wasm.NewRegistry()

	moduleA := wasm.NewModuleInstance("a")
	double := &wasm.FunctionInstance{
		Name: "double",
		Type: &api.FunctionType{Params: []api.ValueType{api.ValueTypeI32}, Result: i32Ptr()},
		Body: []wasm.Instruction{
			{Opcode: wasm.OpGetLocal, Index: 0},
			{Opcode: wasm.OpGetLocal, Index: 0},
			{Opcode: wasm.OpI32Add},
		},
		NumLocals: 1,
		Module:    moduleA,
	}
	moduleA.Functions = []*wasm.FunctionInstance{double}
	moduleA.Exports["double"] = 0
	require.NoError(t, registry.AddModule("a", moduleA))

	moduleB := wasm.NewModuleInstance("b")
	callTwice := &wasm.FunctionInstance{
		Name: "call_twice",
		Type: &api.FunctionType{Params: []api.ValueType{api.ValueTypeI32}, Result: i32Ptr()},
		Body: []wasm.Instruction{
			{Opcode: wasm.OpGetLocal, Index: 0},
			{Opcode: wasm.OpCall, Index: 0}, // call moduleB.Functions[0] == double, imported below
			{Opcode: wasm.OpCall, Index: 0},
		},
		NumLocals: 1,
		Module:    moduleB,
	}
	// moduleB's function index space: imported "double" at index 0.
	moduleB.Functions = []*wasm.FunctionInstance{double, callTwice}
	callTwice.Body[1].Index = 0
	callTwice.Body[2].Index = 0
	require.NoError(t, registry.AddModule("b", moduleB))

	result, err := RunFunction(callTwice, []api.RuntimeValue{api.I32(3)})
	require.NoError(t, err)
	// double(double(3)) == 12.
	require.Equal(t, int32(12), result.ToI32())
}

func TestScenario8_CallIndirectTypeMismatchTraps(t *testing.T) {
	module := wasm.NewModuleInstance("m")
	i32 := api.ValueTypeI32
	f64 := api.ValueTypeF64
	intType := &api.FunctionType{Params: []api.ValueType{i32}, Result: &i32}
	floatType := &api.FunctionType{Params: []api.ValueType{f64}, Result: &f64}
	module.Types = []*api.FunctionType{intType, floatType}

	callee := &wasm.FunctionInstance{Name: "callee", Type: intType, Module: module}
	module.Table = wasm.NewTableInstance(1, nil)
	module.Table.Elements[0] = callee

	caller := &wasm.FunctionInstance{
		Name: "caller",
		Type: &api.FunctionType{},
		Body: []wasm.Instruction{
			{Opcode: wasm.OpI32Const, I32Imm: 0},
			{Opcode: wasm.OpCallIndirect, Index: 1}, // expects floatType, table holds intType
		},
		Module: module,
	}

	_, err := RunFunction(caller, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, wasmruntime.ErrTrapIndirectCallTypeMismatch)
}

func TestTrapBoundary_DivZero(t *testing.T) {
	f := &wasm.FunctionInstance{
		Type: &api.FunctionType{Result: i32Ptr()},
		Body: []wasm.Instruction{
			{Opcode: wasm.OpI32Const, I32Imm: 1},
			{Opcode: wasm.OpI32Const, I32Imm: 0},
			{Opcode: wasm.OpI32DivU},
		},
	}
	_, err := RunFunction(f, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, wasmruntime.ErrTrapIntegerDivideByZero)
}

func TestSetGlobal_TrapsOnImmutable(t *testing.T) {
	module := wasm.NewModuleInstance("m")
	module.Globals = []*wasm.GlobalInstance{builder.NewGlobal(api.I32(5)).Build()} // immutable by default

	f := &wasm.FunctionInstance{
		Type: &api.FunctionType{},
		Body: []wasm.Instruction{
			{Opcode: wasm.OpI32Const, I32Imm: 9},
			{Opcode: wasm.OpSetGlobal, Index: 0},
		},
		Module: module,
	}

	_, err := RunFunction(f, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, wasmruntime.ErrTrapImmutableGlobal)
	require.Equal(t, int32(5), module.Globals[0].Get().ToI32()) // write never took effect
}
