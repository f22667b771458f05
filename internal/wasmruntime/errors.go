// Package wasmruntime declares the sentinel errors the interpreter
// raises for each Wasm trap condition, plus the internal-invariant
// error kinds for bytecode that should have been rejected by
// validation. Traps are raised with panic and recovered exactly once,
// at the call boundary in engine/interpreter, mirroring how
// tetratelabs-wazero's moduleEngine.Call recovers from
// panic(wasmruntime.ErrRuntime...) inside its own interpreter loop.
package wasmruntime

import "errors"

// Trap errors, one per condition in the normative trap list (spec.md
// §6), plus ErrTrapImmutableGlobal for the set_global/immutable-global
// condition spec.md §3/§4.2 describe outside that list.
var (
	ErrTrapUnreachable              = errors.New("unreachable executed")
	ErrTrapIntegerDivideByZero      = errors.New("integer divide by zero")
	ErrTrapIntegerOverflow          = errors.New("integer overflow")
	ErrTrapInvalidConversionToInt   = errors.New("invalid conversion to integer")
	ErrTrapOutOfBoundsMemoryAccess  = errors.New("out of bounds memory access")
	ErrTrapInvalidTableAccess       = errors.New("invalid table access")
	ErrTrapIndirectCallTypeMismatch = errors.New("indirect call type mismatch")
	ErrTrapImmutableGlobal          = errors.New("write to immutable global")
)

// ValueStackError indicates the value stack was empty, or held a value
// of the wrong tag, when an opcode expected an operand. This can only
// happen if the bytecode was not validated as the interpreter assumes.
type ValueStackError struct{ Msg string }

func (e *ValueStackError) Error() string { return "value stack: " + e.Msg }

// FrameStackError indicates the control-frame stack was empty on pop,
// or a frame's value_limit invariant was violated.
type FrameStackError struct{ Msg string }

func (e *FrameStackError) Error() string { return "frame stack: " + e.Msg }

// LocalError indicates a local variable index was out of range.
type LocalError struct{ Msg string }

func (e *LocalError) Error() string { return "local: " + e.Msg }

// ProgramError indicates a module registry operation failed, e.g. a
// name collision on registration.
type ProgramError struct{ Msg string }

func (e *ProgramError) Error() string { return "program: " + e.Msg }

// ErrNotImplemented is reserved for opcodes intentionally outside an
// embedding's contract. Every opcode spec.md names is implemented in
// this interpreter, so no code path raises this today. An opcode the
// dispatcher in internal/engine/interpreter does not recognize is
// reported with its own "unhandled opcode" error, not with this one.
var ErrNotImplemented = errors.New("not implemented")
