package tape

import (
	"errors"

	"github.com/ezrec/nhasm/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeClosed = errors.New(f("tape closed"))
	ErrTapeOutput = errors.New(f("tape has no output"))
)
