package wasm

import "encoding/binary"

const (
	// MemoryPageSizeInBits is the number of bits needed to represent
	// one Wasm page (64 KiB).
	MemoryPageSizeInBits = 16
	// MemoryPageSize is the byte size of one Wasm linear memory page.
	MemoryPageSize = uint32(1) << MemoryPageSizeInBits
	// MemoryMaxPages is the largest page count a 32-bit address space
	// can index: 2**32 bytes / 64 KiB per page == 65536 pages, which is
	// numerically the same as MemoryPageSize itself.
	MemoryMaxPages = MemoryPageSize
)

// MemoryPagesToBytesNum converts a page count to a byte count.
func MemoryPagesToBytesNum(pages uint32) uint64 {
	return uint64(pages) << MemoryPageSizeInBits
}

func memoryBytesNumToPages(bytesNum uint64) uint32 {
	return uint32(bytesNum >> MemoryPageSizeInBits)
}

// MemoryInstance is a module's linear memory: a byte buffer whose
// length is always a multiple of MemoryPageSize, an initial page count
// Min, and an optional page cap Max.
type MemoryInstance struct {
	Buffer []byte
	Min    uint32
	Max    *uint32
}

// NewMemoryInstance allocates a zeroed memory of min pages, capped at
// max pages if max is non-nil.
func NewMemoryInstance(min uint32, max *uint32) *MemoryInstance {
	return &MemoryInstance{
		Buffer: make([]byte, MemoryPagesToBytesNum(min)),
		Min:    min,
		Max:    max,
	}
}

// PageSize returns the current size of the memory in pages.
func (m *MemoryInstance) PageSize() uint32 {
	return memoryBytesNumToPages(uint64(len(m.Buffer)))
}

// Size returns the current size of the memory in bytes. The Wasm
// current_memory opcode reports pages instead; see PageSize.
func (m *MemoryInstance) Size() uint32 {
	return uint32(len(m.Buffer))
}

// Grow attempts to grow the memory by delta pages, returning the
// previous page count on success. If growth would exceed Max (or
// MemoryMaxPages when Max is nil), or would overflow, the memory is
// left unchanged and Grow returns an out-of-range page count whose
// low 32 bits, read as int32, equal -1 — matching the Wasm memory.grow
// "-1 on failure" contract, without a second return value so call
// sites can mirror the opcode's single-stack-value result.
func (m *MemoryInstance) Grow(delta uint32) uint32 {
	prev := m.PageSize()
	max := MemoryMaxPages
	if m.Max != nil {
		max = *m.Max
	}
	next := uint64(prev) + uint64(delta)
	if next > uint64(max) {
		return uint32(0xffffffff)
	}
	m.Buffer = append(m.Buffer, make([]byte, MemoryPagesToBytesNum(delta))...)
	return prev
}

func (m *MemoryInstance) inBounds(offset uint32, length uint32) bool {
	end := uint64(offset) + uint64(length)
	return end <= uint64(len(m.Buffer))
}

// ReadByte reads a single byte at offset.
func (m *MemoryInstance) ReadByte(offset uint32) (byte, bool) {
	if !m.inBounds(offset, 1) {
		return 0, false
	}
	return m.Buffer[offset], true
}

// WriteByte writes a single byte at offset.
func (m *MemoryInstance) WriteByte(offset uint32, v byte) bool {
	if !m.inBounds(offset, 1) {
		return false
	}
	m.Buffer[offset] = v
	return true
}

// ReadUint16Le reads a little-endian uint16 at offset.
func (m *MemoryInstance) ReadUint16Le(offset uint32) (uint16, bool) {
	if !m.inBounds(offset, 2) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(m.Buffer[offset:]), true
}

// WriteUint16Le writes a little-endian uint16 at offset.
func (m *MemoryInstance) WriteUint16Le(offset uint32, v uint16) bool {
	if !m.inBounds(offset, 2) {
		return false
	}
	binary.LittleEndian.PutUint16(m.Buffer[offset:], v)
	return true
}

// ReadUint32Le reads a little-endian uint32 at offset.
func (m *MemoryInstance) ReadUint32Le(offset uint32) (uint32, bool) {
	if !m.inBounds(offset, 4) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(m.Buffer[offset:]), true
}

// WriteUint32Le writes a little-endian uint32 at offset.
func (m *MemoryInstance) WriteUint32Le(offset uint32, v uint32) bool {
	if !m.inBounds(offset, 4) {
		return false
	}
	binary.LittleEndian.PutUint32(m.Buffer[offset:], v)
	return true
}

// ReadUint64Le reads a little-endian uint64 at offset.
func (m *MemoryInstance) ReadUint64Le(offset uint32) (uint64, bool) {
	if !m.inBounds(offset, 8) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(m.Buffer[offset:]), true
}

// WriteUint64Le writes a little-endian uint64 at offset.
func (m *MemoryInstance) WriteUint64Le(offset uint32, v uint64) bool {
	if !m.inBounds(offset, 8) {
		return false
	}
	binary.LittleEndian.PutUint64(m.Buffer[offset:], v)
	return true
}

// Read returns a copy of length bytes starting at offset.
func (m *MemoryInstance) Read(offset, length uint32) ([]byte, bool) {
	if !m.inBounds(offset, length) {
		return nil, false
	}
	out := make([]byte, length)
	copy(out, m.Buffer[offset:offset+length])
	return out, true
}

// Write copies data into the memory starting at offset.
func (m *MemoryInstance) Write(offset uint32, data []byte) bool {
	if !m.inBounds(offset, uint32(len(data))) {
		return false
	}
	copy(m.Buffer[offset:], data)
	return true
}
