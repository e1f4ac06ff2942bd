package asm

import (
	"fmt"
)

// Kind is an instruction mnemonic.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LDR = Kind(0)  // ldr
	KIND_STR = Kind(1)  // str
	KIND_ADD = Kind(2)  // add
	KIND_SUB = Kind(3)  // sub
	KIND_JMP = Kind(4)  // jmp
	KIND_JGT = Kind(5)  // jgt
	KIND_JEQ = Kind(6)  // jeq
	KIND_JGE = Kind(7)  // jge
	KIND_JLT = Kind(8)  // jlt
	KIND_JNE = Kind(9)  // jne
	KIND_JLE = Kind(10) // jle
)

// IsJump returns true for the jump family of mnemonics.
func (kind Kind) IsJump() bool {
	return kind >= KIND_JMP && kind <= KIND_JLE
}

// Operand is a register or memory operand.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_A = Operand(0) // A
	OPERAND_D = Operand(1) // D
	OPERAND_M = Operand(2) // (A)
)

// CodeComp is the 6-bit ALU operation of a C-type instruction.
type CodeComp uint16

const (
	COMP_ZERO    = CodeComp(0b101010) // 0
	COMP_D       = CodeComp(0b001100) // D
	COMP_A       = CodeComp(0b110000) // A or (A)
	COMP_D_PLUS  = CodeComp(0b000010) // D+A or D+(A)
	COMP_D_MINUS = CodeComp(0b010011) // D-A or D-(A)
)

// CodeDest is the 3-bit destination of a C-type instruction.
type CodeDest uint16

const (
	DEST_NONE = CodeDest(0b000)
	DEST_M    = CodeDest(0b001)
	DEST_D    = CodeDest(0b010)
	DEST_A    = CodeDest(0b100)
)

// CodeJump is the 3-bit jump condition of a C-type instruction.
type CodeJump uint16

//go:generate go tool stringer -linecomment -type=CodeJump
const (
	JUMP_NONE = CodeJump(0) // none
	JUMP_JGT  = CodeJump(1) // jgt
	JUMP_JEQ  = CodeJump(2) // jeq
	JUMP_JGE  = CodeJump(3) // jge
	JUMP_JLT  = CodeJump(4) // jlt
	JUMP_JNE  = CodeJump(5) // jne
	JUMP_JLE  = CodeJump(6) // jle
	JUMP_JMP  = CodeJump(7) // jmp
)

const (
	IMMEDIATE_MAX = 0x7fff // Largest A-type immediate.

	codeCompute = uint16(0b111 << 13)
	codeMemory  = uint16(1 << 12)
)

// Code is a single encoded 16-bit instruction word.
type Code uint16

// MakeCodeImmediate creates an A-type instruction loading value into A.
func MakeCodeImmediate(value uint16) Code {
	return Code(value & IMMEDIATE_MAX)
}

// MakeCodeCompute creates a C-type instruction. If memory is set, the ALU
// reads (A) instead of A.
func MakeCodeCompute(memory bool, comp CodeComp, dest CodeDest, jump CodeJump) Code {
	word := codeCompute
	if memory {
		word |= codeMemory
	}
	word |= (uint16(comp) & 0x3f) << 6
	word |= (uint16(dest) & 0x7) << 3
	word |= (uint16(jump) & 0x7) << 0
	return Code(word)
}

// IsCompute returns true for a C-type instruction.
func (code Code) IsCompute() bool {
	return uint16(code)&codeCompute == codeCompute
}

// Immediate returns the value loaded by an A-type instruction.
func (code Code) Immediate() uint16 {
	return uint16(code) & IMMEDIATE_MAX
}

// Memory returns the a-bit of a C-type instruction.
func (code Code) Memory() bool {
	return uint16(code)&codeMemory != 0
}

// Comp returns the ALU operation of a C-type instruction.
func (code Code) Comp() CodeComp {
	return CodeComp((uint16(code) >> 6) & 0x3f)
}

// Dest returns the destination of a C-type instruction.
func (code Code) Dest() CodeDest {
	return CodeDest((uint16(code) >> 3) & 0x7)
}

// Jump returns the jump condition of a C-type instruction.
func (code Code) Jump() CodeJump {
	return CodeJump((uint16(code) >> 0) & 0x7)
}

// String returns the 16 character binary listing form of the word.
func (code Code) String() string {
	return fmt.Sprintf("%016b", uint16(code))
}

// Text returns a human readable description of the instruction.
func (code Code) Text() (out string) {
	if !code.IsCompute() {
		out = fmt.Sprintf("A=%d", code.Immediate())
		return
	}

	src := "A"
	if code.Memory() {
		src = "(A)"
	}

	var comp string
	switch code.Comp() {
	case COMP_ZERO:
		comp = "0"
	case COMP_D:
		comp = "D"
	case COMP_A:
		comp = src
	case COMP_D_PLUS:
		comp = "D+" + src
	case COMP_D_MINUS:
		comp = "D-" + src
	default:
		comp = fmt.Sprintf("comp:%06b", uint16(code.Comp()))
	}

	var dest string
	if code.Dest()&DEST_A != 0 {
		dest += "A"
	}
	if code.Dest()&DEST_D != 0 {
		dest += "D"
	}
	if code.Dest()&DEST_M != 0 {
		dest += "(A)"
	}

	out = comp
	if len(dest) != 0 {
		out = dest + "=" + out
	}
	if code.Jump() != JUMP_NONE {
		out += ";" + code.Jump().String()
	}

	return
}
