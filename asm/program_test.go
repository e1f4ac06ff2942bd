package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Words: []string{"ldr", "A", "$21"}, Code: MakeCodeImmediate(21)},
			{LineNo: 3, Words: []string{"jmp"}, Code: MakeCodeCompute(false, COMP_ZERO, DEST_NONE, JUMP_JMP)},
		},
	}

	assert.Equal([]uint16{21, 0xea87}, prog.Binary())

	var ips []int
	for ip := range prog.Codes() {
		ips = append(ips, ip)
	}
	assert.Equal([]int{0, 1}, ips)

	assert.Nil((&Program{}).Binary())
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Code: MakeCodeImmediate(21)},
			{LineNo: 2, Code: MakeCodeCompute(false, COMP_D, DEST_M, JUMP_NONE)},
		},
	}

	var out strings.Builder
	n, err := prog.WriteTo(&out)
	assert.NoError(err)
	assert.Equal(int64(34), n)
	assert.Equal("0000000000010101\n1110001100001000\n", out.String())
}

type shortWriter struct {
	room int
}

var errShort = errors.New("short")

func (sw *shortWriter) Write(data []byte) (n int, err error) {
	if len(data) > sw.room {
		n = sw.room
		sw.room = 0
		err = errShort
		return
	}
	sw.room -= len(data)
	n = len(data)
	return
}

func TestProgram_WriteTo_Error(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Code: MakeCodeImmediate(1)},
			{LineNo: 2, Code: MakeCodeImmediate(2)},
			{LineNo: 3, Code: MakeCodeImmediate(3)},
		},
	}

	n, err := prog.WriteTo(&shortWriter{room: 20})
	assert.Equal(errShort, err)
	assert.Equal(int64(20), n)
}
