package wasm

import "github.com/gowasm/wazerolite/api"

// Opcode identifies a single Wasm instruction. Binary decoding (out of
// scope for this repo) is what would normally produce a stream of
// these; here they are the boundary the instruction evaluator
// operates over.
type Opcode byte

const (
	OpUnreachable Opcode = iota
	OpNop
	OpBlock
	OpLoop
	OpIf
	OpElse
	OpEnd
	OpBr
	OpBrIf
	OpBrTable
	OpReturn
	OpCall
	OpCallIndirect
	OpDrop
	OpSelect

	OpGetLocal
	OpSetLocal
	OpTeeLocal
	OpGetGlobal
	OpSetGlobal

	OpI32Load
	OpI64Load
	OpF32Load
	OpF64Load
	OpI32Load8S
	OpI32Load8U
	OpI32Load16S
	OpI32Load16U
	OpI64Load8S
	OpI64Load8U
	OpI64Load16S
	OpI64Load16U
	OpI64Load32S
	OpI64Load32U
	OpI32Store
	OpI64Store
	OpF32Store
	OpF64Store
	OpI32Store8
	OpI32Store16
	OpI64Store8
	OpI64Store16
	OpI64Store32
	OpCurrentMemory
	OpGrowMemory

	OpI32Const
	OpI64Const
	OpF32Const
	OpF64Const

	OpI32Eqz
	OpI32Eq
	OpI32Ne
	OpI32LtS
	OpI32LtU
	OpI32GtS
	OpI32GtU
	OpI32LeS
	OpI32LeU
	OpI32GeS
	OpI32GeU

	OpI64Eqz
	OpI64Eq
	OpI64Ne
	OpI64LtS
	OpI64LtU
	OpI64GtS
	OpI64GtU
	OpI64LeS
	OpI64LeU
	OpI64GeS
	OpI64GeU

	OpF32Eq
	OpF32Ne
	OpF32Lt
	OpF32Gt
	OpF32Le
	OpF32Ge

	OpF64Eq
	OpF64Ne
	OpF64Lt
	OpF64Gt
	OpF64Le
	OpF64Ge

	OpI32Clz
	OpI32Ctz
	OpI32Popcnt
	OpI32Add
	OpI32Sub
	OpI32Mul
	OpI32DivS
	OpI32DivU
	OpI32RemS
	OpI32RemU
	OpI32And
	OpI32Or
	OpI32Xor
	OpI32Shl
	OpI32ShrS
	OpI32ShrU
	OpI32Rotl
	OpI32Rotr

	OpI64Clz
	OpI64Ctz
	OpI64Popcnt
	OpI64Add
	OpI64Sub
	OpI64Mul
	OpI64DivS
	OpI64DivU
	OpI64RemS
	OpI64RemU
	OpI64And
	OpI64Or
	OpI64Xor
	OpI64Shl
	OpI64ShrS
	OpI64ShrU
	OpI64Rotl
	OpI64Rotr

	OpF32Abs
	OpF32Neg
	OpF32Ceil
	OpF32Floor
	OpF32Trunc
	OpF32Nearest
	OpF32Sqrt
	OpF32Add
	OpF32Sub
	OpF32Mul
	OpF32Div
	OpF32Min
	OpF32Max
	OpF32Copysign

	OpF64Abs
	OpF64Neg
	OpF64Ceil
	OpF64Floor
	OpF64Trunc
	OpF64Nearest
	OpF64Sqrt
	OpF64Add
	OpF64Sub
	OpF64Mul
	OpF64Div
	OpF64Min
	OpF64Max
	OpF64Copysign

	OpI32WrapI64
	OpI32TruncSF32
	OpI32TruncUF32
	OpI32TruncSF64
	OpI32TruncUF64
	OpI64ExtendSI32
	OpI64ExtendUI32
	OpI64TruncSF32
	OpI64TruncUF32
	OpI64TruncSF64
	OpI64TruncUF64
	OpF32ConvertSI32
	OpF32ConvertUI32
	OpF32ConvertSI64
	OpF32ConvertUI64
	OpF32DemoteF64
	OpF64ConvertSI32
	OpF64ConvertUI32
	OpF64ConvertSI64
	OpF64ConvertUI64
	OpF64PromoteF32

	OpI32ReinterpretF32
	OpI64ReinterpretF64
	OpF32ReinterpretI32
	OpF64ReinterpretI64
)

// Instruction is one node of a function body's opcode tree. Block,
// Loop and If carry a nested instruction sequence (Then, and Else for
// If) instead of a flat jump-target encoding, matching the structured
// control flow the Wasm binary format itself uses and that
// spec.md §4.4 describes execute_block as iterating directly.
type Instruction struct {
	Opcode Opcode

	// Const immediates.
	I32Imm     int32
	I64Imm     int64
	F32Bits    uint32
	F64Bits    uint64

	// Local/global/function/type/table index immediates.
	Index uint32

	// Memory access immediates. Align is retained only for signature
	// fidelity with the opcode stream; per spec.md §9 it is never
	// consulted when computing the effective address.
	Offset uint32
	Align  uint32

	// Block/Loop/If.
	BlockType *api.ValueType // nil means NoResult
	Then      []Instruction
	Else      []Instruction // If only; nil means no else arm

	// BrTable.
	BrTable   []uint32
	BrDefault uint32
}
