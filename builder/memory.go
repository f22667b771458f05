// Package builder provides fluent constructors for the memory, table,
// and global definitions a module instance is assembled from, mirroring
// original_source's src/builder/memory.rs (MemoryBuilder::with_min/
// with_max/build) in idiomatic Go: since Go has no equivalent of Rust's
// Invoke<T> callback-continuation trait, Build returns the constructed
// value directly instead of threading it through a generic callback.
package builder

import "github.com/gowasm/wazerolite/internal/wasm"

// MemoryBuilder builds a *wasm.MemoryInstance.
type MemoryBuilder struct {
	min uint32
	max *uint32
}

// NewMemory starts a memory builder defaulted to min=1, no max — the
// same default memory.rs's MemoryDefinition uses.
func NewMemory() *MemoryBuilder {
	return &MemoryBuilder{min: 1}
}

// WithMin sets the initial page count.
func (b *MemoryBuilder) WithMin(min uint32) *MemoryBuilder {
	b.min = min
	return b
}

// WithMax sets the page cap. Passing nil leaves the memory uncapped
// (bounded only by wasm.MemoryMaxPages).
func (b *MemoryBuilder) WithMax(max *uint32) *MemoryBuilder {
	b.max = max
	return b
}

// Build constructs the memory instance.
func (b *MemoryBuilder) Build() *wasm.MemoryInstance {
	return wasm.NewMemoryInstance(b.min, b.max)
}
