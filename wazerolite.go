// Package wazerolite evaluates validated WebAssembly function bodies
// over a value stack and a control-frame stack. It does not decode
// .wasm binaries or validate bytecode: callers assemble a
// wasm.ModuleInstance (directly, or via package builder for its
// memory/table/global pieces) and hand function bodies already
// expressed as internal/wasm.Instruction trees to RunFunction.
package wazerolite

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/engine/interpreter"
	"github.com/gowasm/wazerolite/internal/wasm"
)

// RunFunction runs fn against args and returns its result, or the
// error of the first trap encountered. It is a thin re-export of
// internal/engine/interpreter.RunFunction so that callers outside this
// module never need to import an internal package.
func RunFunction(fn *wasm.FunctionInstance, args []api.RuntimeValue) (*api.RuntimeValue, error) {
	return interpreter.RunFunction(fn, args)
}

// NewRegistry creates an empty module registry.
func NewRegistry() *wasm.Registry { return wasm.NewRegistry() }
