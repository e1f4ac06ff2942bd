package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	code := MakeCodeCompute(true, COMP_D_MINUS, DEST_D, JUMP_JLE)
	assert.True(code.IsCompute())
	assert.True(code.Memory())
	assert.Equal(COMP_D_MINUS, code.Comp())
	assert.Equal(DEST_D, code.Dest())
	assert.Equal(JUMP_JLE, code.Jump())
	assert.Equal("1111010011010110", code.String())

	code = MakeCodeImmediate(0x7fff)
	assert.False(code.IsCompute())
	assert.Equal(uint16(0x7fff), code.Immediate())
	assert.Equal("0111111111111111", code.String())

	// Immediates are truncated to 15 bits.
	code = MakeCodeImmediate(0x8001)
	assert.False(code.IsCompute())
	assert.Equal(uint16(1), code.Immediate())
}

func TestCodeText(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{MakeCodeImmediate(21), "A=21"},
		{MakeCodeCompute(false, COMP_ZERO, DEST_NONE, JUMP_JMP), "0;jmp"},
		{MakeCodeCompute(true, COMP_A, DEST_D, JUMP_NONE), "D=(A)"},
		{MakeCodeCompute(false, COMP_A, DEST_A, JUMP_NONE), "A=A"},
		{MakeCodeCompute(false, COMP_D, DEST_M, JUMP_NONE), "(A)=D"},
		{MakeCodeCompute(true, COMP_D_PLUS, DEST_A, JUMP_NONE), "A=D+(A)"},
		{MakeCodeCompute(false, COMP_D_MINUS, DEST_D, JUMP_NONE), "D=D-A"},
		{MakeCodeCompute(false, COMP_D, DEST_NONE, JUMP_JGT), "D;jgt"},
		{MakeCodeCompute(false, CodeComp(0b111111), DEST_A|DEST_D, JUMP_NONE), "AD=comp:111111"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.Text(), entry.code.String())
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ldr", KIND_LDR.String())
	assert.Equal("jle", KIND_JLE.String())
	assert.Equal("Kind(42)", Kind(42).String())
	assert.Equal("Kind(-1)", Kind(-1).String())

	assert.Equal("A", OPERAND_A.String())
	assert.Equal("D", OPERAND_D.String())
	assert.Equal("(A)", OPERAND_M.String())

	assert.Equal("none", JUMP_NONE.String())
	assert.Equal("jmp", JUMP_JMP.String())
	assert.Equal("CodeJump(8)", CodeJump(8).String())

	for name, kind := range kindMap {
		assert.Equal(name, kind.String())
	}
	for name, op := range operandMap {
		assert.Equal(name, op.String())
	}
	for kind, jump := range jumpMap {
		assert.Equal(kind.String(), jump.String())
		assert.True(kind.IsJump())
	}

	assert.True(KIND_JMP.IsJump())
	assert.False(KIND_SUB.IsJump())
}
