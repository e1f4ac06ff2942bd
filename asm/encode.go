package asm

import (
	"strconv"
	"strings"
)

// kindMap maps lower case mnemonics to instruction kinds.
var kindMap = map[string]Kind{
	"ldr": KIND_LDR,
	"str": KIND_STR,
	"add": KIND_ADD,
	"sub": KIND_SUB,
	"jmp": KIND_JMP,
	"jgt": KIND_JGT,
	"jeq": KIND_JEQ,
	"jge": KIND_JGE,
	"jlt": KIND_JLT,
	"jne": KIND_JNE,
	"jle": KIND_JLE,
}

// operandMap maps upper case operand spellings.
var operandMap = map[string]Operand{
	"A":   OPERAND_A,
	"D":   OPERAND_D,
	"(A)": OPERAND_M,
}

// jumpMap maps conditional jump kinds to their condition bits.
var jumpMap = map[Kind]CodeJump{
	KIND_JGT: JUMP_JGT,
	KIND_JEQ: JUMP_JEQ,
	KIND_JGE: JUMP_JGE,
	KIND_JLT: JUMP_JLT,
	KIND_JNE: JUMP_JNE,
	KIND_JLE: JUMP_JLE,
}

// isBlank matches the control characters and space trimmed from each piece
// of a line.
func isBlank(r rune) bool {
	return r <= ' '
}

// isSpace matches the ASCII whitespace separating tokens.
func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\n\v\f\r", r)
}

// Tokenize splits a line on commas, then on runs of ASCII whitespace,
// discarding empty tokens. Other control characters are only trimmed from
// the ends of each comma separated piece.
func Tokenize(line string) (words []string) {
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimFunc(part, isBlank)
		words = append(words, strings.FieldsFunc(part, isSpace)...)
	}
	return
}

// EncodeLine tokenizes and encodes a single source line. A line with no
// tokens is reported as empty, and is neither encoded nor invalid.
func EncodeLine(line string) (code Code, empty bool, ok bool) {
	words := Tokenize(line)
	if len(words) == 0 {
		empty = true
		return
	}

	code, ok = Encode(words)
	return
}

// Encode encodes a mnemonic and its operands. Mnemonics and operands are
// case insensitive.
func Encode(words []string) (code Code, ok bool) {
	if len(words) == 0 {
		return
	}

	kind, ok := kindMap[strings.ToLower(words[0])]
	if !ok {
		return
	}

	args := make([]string, len(words)-1)
	for n, word := range words[1:] {
		args[n] = strings.ToUpper(word)
	}

	switch kind {
	case KIND_LDR:
		code, ok = encodeLdr(args)
	case KIND_STR:
		code, ok = encodeStr(args)
	case KIND_ADD:
		code, ok = encodeAlu(COMP_D_PLUS, args)
	case KIND_SUB:
		code, ok = encodeAlu(COMP_D_MINUS, args)
	default:
		if !kind.IsJump() {
			ok = false
			return
		}
		code, ok = encodeJump(kind, args)
	}

	return
}

// sourceOf returns the ALU selection and a-bit for reading a source operand.
func sourceOf(src Operand) (comp CodeComp, memory bool) {
	switch src {
	case OPERAND_D:
		comp = COMP_D
	default:
		comp = COMP_A
	}
	memory = src == OPERAND_M
	return
}

// destOf returns the destination bits for a register target.
func destOf(word string) (dest CodeDest, ok bool) {
	ok = true
	switch word {
	case "A":
		dest = DEST_A
	case "D":
		dest = DEST_D
	default:
		ok = false
	}
	return
}

// immediateOf parses a '$' immediate.
func immediateOf(word string) (value uint16, ok bool) {
	v64, err := strconv.ParseInt(word[1:], 10, 32)
	if err != nil || v64 < 0 || v64 > IMMEDIATE_MAX {
		return
	}

	value = uint16(v64)
	ok = true
	return
}

// ldr A, $n
// ldr A|D, A|D|(A)
func encodeLdr(args []string) (code Code, ok bool) {
	if len(args) != 2 {
		return
	}
	target, source := args[0], args[1]

	if target == "A" && strings.HasPrefix(source, "$") {
		var value uint16
		value, ok = immediateOf(source)
		if ok {
			code = MakeCodeImmediate(value)
		}
		return
	}

	dest, ok := destOf(target)
	if !ok {
		return
	}

	src, ok := operandMap[source]
	if !ok {
		return
	}

	comp, memory := sourceOf(src)
	code = MakeCodeCompute(memory, comp, dest, JUMP_NONE)
	return
}

// str (A), A|D
func encodeStr(args []string) (code Code, ok bool) {
	if len(args) != 2 {
		return
	}

	if args[0] != "(A)" {
		return
	}

	src, ok := operandMap[args[1]]
	if !ok || src == OPERAND_M {
		ok = false
		return
	}

	// The value source is never (A), so the a-bit is always clear.
	comp, memory := sourceOf(src)
	code = MakeCodeCompute(memory, comp, DEST_M, JUMP_NONE)
	return
}

// add|sub A|D, D, A|(A)
func encodeAlu(comp CodeComp, args []string) (code Code, ok bool) {
	if len(args) != 3 {
		return
	}

	dest, ok := destOf(args[0])
	if !ok {
		return
	}

	if args[1] != "D" {
		ok = false
		return
	}

	src, ok := operandMap[args[2]]
	if !ok || src == OPERAND_D {
		ok = false
		return
	}

	code = MakeCodeCompute(src == OPERAND_M, comp, dest, JUMP_NONE)
	return
}

// jmp
// jgt|jeq|jge|jlt|jne|jle A|D|(A)
func encodeJump(kind Kind, args []string) (code Code, ok bool) {
	if kind == KIND_JMP {
		// Operands of an unconditional jump are not examined.
		code = MakeCodeCompute(false, COMP_ZERO, DEST_NONE, JUMP_JMP)
		ok = true
		return
	}

	jump, ok := jumpMap[kind]
	if !ok {
		return
	}

	if len(args) != 1 {
		ok = false
		return
	}

	src, ok := operandMap[args[0]]
	if !ok {
		return
	}

	comp, memory := sourceOf(src)
	code = MakeCodeCompute(memory, comp, DEST_NONE, jump)
	return
}
