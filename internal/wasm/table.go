package wasm

// TableInstance is table 0 — the only table in scope here (Non-goal:
// reference types / multi-table). Each element is either a function
// reference or a null slot (nil).
type TableInstance struct {
	Elements []*FunctionInstance
	Max      *uint32
}

// NewTableInstance allocates a table of min null slots.
func NewTableInstance(min uint32, max *uint32) *TableInstance {
	return &TableInstance{Elements: make([]*FunctionInstance, min), Max: max}
}

// Get returns the function at idx, or (nil, false) if idx is
// out-of-bounds — the caller (call_indirect) traps on both an
// out-of-bounds index and a null slot.
func (t *TableInstance) Get(idx uint32) (*FunctionInstance, bool) {
	if idx >= uint32(len(t.Elements)) {
		return nil, false
	}
	return t.Elements[idx], true
}
