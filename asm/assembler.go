// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/nhasm/internal"
)

// Sink receives encoded instructions in source order.
type Sink interface {
	Send(code Code) error
}

// Assembler is a single pass, line independent assembler.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Lines returns an iterator over the encoded lines of input. Blank lines are
// skipped. The first line that fails to encode is yielded as an ErrSyntax
// wrapping ErrInstructionInvalid, and iteration stops there.
func (asm *Assembler) Lines(input io.Reader) iter.Seq2[Opcode, error] {
	return func(yield func(op Opcode, err error) bool) {
		scanner := internal.NewLineScanner(input)

		var lineno int
		for scanner.Scan() {
			text := scanner.Text()
			lineno += 1

			if asm.Verbose {
				log.Printf("%v: %v\n", lineno, text)
			}

			words := Tokenize(text)
			if len(words) == 0 {
				continue
			}

			code, ok := Encode(words)
			if !ok {
				yield(Opcode{}, &ErrSyntax{
					LineNo: lineno,
					Line:   strings.TrimSpace(text),
					Err:    ErrInstructionInvalid,
				})
				return
			}

			if asm.Verbose {
				log.Printf("%v: %v %v\n", lineno, code, code.Text())
			}

			if !yield(Opcode{LineNo: lineno, Words: words, Code: code}, nil) {
				return
			}
		}

		err := scanner.Err()
		if err != nil {
			yield(Opcode{}, &ErrSyntax{LineNo: lineno + 1, Err: err})
		}
	}
}

// Parse assembles an input stream into a Program. On error, the Program
// holds every line encoded before the failing one.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	for op, op_err := range asm.Lines(input) {
		if op_err != nil {
			err = op_err
			return
		}
		prog.Opcodes = append(prog.Opcodes, op)
	}

	return
}

// Assemble encodes an input stream, sending each instruction to output as
// soon as its line is encoded.
func (asm *Assembler) Assemble(input io.Reader, output Sink) (err error) {
	for op, op_err := range asm.Lines(input) {
		if op_err != nil {
			err = op_err
			return
		}
		err = output.Send(op.Code)
		if err != nil {
			return
		}
	}

	return
}
