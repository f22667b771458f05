package builder

import (
	"github.com/gowasm/wazerolite/api"
	"github.com/gowasm/wazerolite/internal/wasm"
)

// GlobalBuilder builds a *wasm.GlobalInstance.
type GlobalBuilder struct {
	val     api.RuntimeValue
	mutable bool
}

// NewGlobal starts a global builder initialized to val, immutable by
// default.
func NewGlobal(val api.RuntimeValue) *GlobalBuilder {
	return &GlobalBuilder{val: val}
}

// WithMutable marks the global mutable.
func (b *GlobalBuilder) WithMutable(mutable bool) *GlobalBuilder {
	b.mutable = mutable
	return b
}

// Build constructs the global instance.
func (b *GlobalBuilder) Build() *wasm.GlobalInstance {
	return wasm.NewGlobalInstance(b.val, b.mutable)
}
