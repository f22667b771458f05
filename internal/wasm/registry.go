package wasm

import (
	"sync"

	"github.com/gowasm/wazerolite/internal/wasmruntime"
)

// Registry is the "Program" of spec.md §4.5/§9: a name -> shared
// module instance map. It admits any number of concurrent readers and
// one exclusive writer at a time, the same sync.RWMutex discipline
// tetratelabs-wazero's own interpreter engine uses to guard its
// compiled-code cache (internal/engine/interpreter.engine.mux).
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*ModuleInstance
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: map[string]*ModuleInstance{}}
}

// AddModule registers inst under name. Registration is exclusive: if
// name is already taken, AddModule returns a ProgramError and inst is
// not registered.
func (r *Registry) AddModule(name string, inst *ModuleInstance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return &wasmruntime.ProgramError{Msg: "module " + name + " already instantiated"}
	}
	inst.registry = r
	r.modules[name] = inst
	return nil
}

// Module looks up a registered instance by name.
func (r *Registry) Module(name string) (*ModuleInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.modules[name]
	return inst, ok
}
