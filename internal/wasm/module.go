package wasm

import (
	"fmt"

	"github.com/gowasm/wazerolite/api"
)

// FunctionInstance is one entry in a module's function index space —
// imported functions first, then locally defined ones, per spec.md §3
// "Index space". Module is the instance whose memory/globals/table
// this function body executes against, letting an imported function
// call back into its defining module's state when invoked through the
// importing module's index space.
type FunctionInstance struct {
	Name string
	Type *api.FunctionType
	Body []Instruction
	// NumLocals is the total addressable local count: parameters plus
	// this function's own declared locals. Local indices
	// [0, Type.ParamCount()) read/write the arguments; the remainder
	// are zero-initialized I32 cells, since a decoder supplying each
	// declared local's type is out of scope here.
	NumLocals int
	Module    *ModuleInstance
}

// ModuleInstance bundles a module's types, its function/table/memory/
// global index spaces, and its exports. It holds a non-owning
// back-reference to the Registry it was added to, exposed through
// Registry() (spec.md §9's weak-reference design note — see DESIGN.md
// for why a plain pointer suffices in Go). Nothing in this package
// resolves imports through it: imported functions are placed into
// Functions directly by the caller.
type ModuleInstance struct {
	Name      string
	Types     []*api.FunctionType
	Functions []*FunctionInstance
	Memory    *MemoryInstance
	Globals   []*GlobalInstance
	Table     *TableInstance
	Exports   map[string]uint32 // export name -> function index

	registry *Registry
}

// NewModuleInstance creates an empty instance named name. Callers
// populate Types/Functions/Memory/Globals/Table/Exports directly; the
// builder-helper constructors in package builder produce the
// MemoryInstance/TableInstance/GlobalInstance values to assign.
func NewModuleInstance(name string) *ModuleInstance {
	return &ModuleInstance{Name: name, Exports: map[string]uint32{}}
}

// Function returns the function at idx in the function index space, or
// an error if idx is out of range — an internal-invariant violation
// since validation should have rejected the call site.
func (m *ModuleInstance) Function(idx uint32) (*FunctionInstance, error) {
	if idx >= uint32(len(m.Functions)) {
		return nil, fmt.Errorf("function index %d out of range (%d functions)", idx, len(m.Functions))
	}
	return m.Functions[idx], nil
}

// ExportedFunction resolves a function by its export name, for
// cross-module calls initiated from outside the module (e.g. by a
// caller holding only a Registry and a name).
func (m *ModuleInstance) ExportedFunction(name string) (*FunctionInstance, bool) {
	idx, ok := m.Exports[name]
	if !ok {
		return nil, false
	}
	fn, err := m.Function(idx)
	if err != nil {
		return nil, false
	}
	return fn, true
}

// Global returns the global at idx in the global index space.
func (m *ModuleInstance) Global(idx uint32) (*GlobalInstance, error) {
	if idx >= uint32(len(m.Globals)) {
		return nil, fmt.Errorf("global index %d out of range (%d globals)", idx, len(m.Globals))
	}
	return m.Globals[idx], nil
}

// Registry returns the registry this instance was registered into, or
// nil if it was never registered (e.g. a standalone instance built for
// a single run_function call, as spec.md §4.3's run_function does when
// no cross-module state is needed).
func (m *ModuleInstance) Registry() *Registry { return m.registry }
