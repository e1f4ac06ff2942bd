// Package asm implements the instruction encoder for the NHA two-register CPU.
//
// The CPU has an address register (A), a data register (D), and one memory
// cell addressed by A, written (A) in assembly source. Every instruction is a
// single 16-bit word, either an A-type immediate load or a C-type compute
// instruction laid out as 111a cccc ccdd djjj.
//
// The assembler is single pass and line independent: each non-blank source
// line encodes to exactly one word, and the first line that fails to encode
// stops the run.
package asm
