package asm

import (
	"io"
	"iter"
)

// Opcode is a successfully encoded source line.
type Opcode struct {
	LineNo int      // Source line number, starting at 1.
	Words  []string // Source tokens.
	Code   Code     // Encoded instruction.
}

// Program is the ordered listing of an assembly run.
type Program struct {
	Opcodes []Opcode
}

// Binary returns the raw instruction words.
func (prog *Program) Binary() (bins []uint16) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint16(code))
	}

	return
}

// Codes iterates over the instruction address and code of each opcode.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op.Code) {
				return
			}
		}
	}
}

// WriteTo writes the binary listing, one 16 character line per instruction.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, code := range prog.Codes() {
		var count int
		count, err = io.WriteString(w, code.String()+"\n")
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}
