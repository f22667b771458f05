package builder

import "github.com/gowasm/wazerolite/internal/wasm"

// TableBuilder builds a *wasm.TableInstance, following the same
// with_min/with_max/build shape as MemoryBuilder.
type TableBuilder struct {
	min uint32
	max *uint32
}

// NewTable starts a table builder defaulted to min=0.
func NewTable() *TableBuilder {
	return &TableBuilder{}
}

// WithMin sets the initial element count.
func (b *TableBuilder) WithMin(min uint32) *TableBuilder {
	b.min = min
	return b
}

// WithMax sets the element count cap.
func (b *TableBuilder) WithMax(max *uint32) *TableBuilder {
	b.max = max
	return b
}

// Build constructs the table instance, all slots initially null.
func (b *TableBuilder) Build() *wasm.TableInstance {
	return wasm.NewTableInstance(b.min, b.max)
}
