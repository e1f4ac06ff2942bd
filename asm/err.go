package asm

import (
	"errors"

	"github.com/ezrec/nhasm/translate"
)

var f = translate.From

var (
	// Run errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrSyntax indicates the source line that stopped an assembly run.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
