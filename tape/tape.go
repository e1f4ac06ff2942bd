package tape

import (
	"bufio"
	"io"
	"os"

	"github.com/ezrec/nhasm/asm"
)

// Tape is the binary listing output of an assembly run. Each instruction is
// written as one line of 16 '0' or '1' characters. Output is buffered until
// Close.
type Tape struct {
	Output io.Writer // Listing destination, required.
	Count  int       // Number of instructions written.

	writer *bufio.Writer
	closer io.Closer
	closed bool
}

// Create creates a tape writing to a new file at path. Closing the tape
// closes the file.
func Create(path string) (tc *Tape, err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}

	tc = &Tape{Output: file, closer: file}
	return
}

// Send appends an instruction to the listing.
func (tc *Tape) Send(code asm.Code) (err error) {
	if tc.closed {
		err = ErrTapeClosed
		return
	}

	if tc.writer == nil {
		if tc.Output == nil {
			err = ErrTapeOutput
			return
		}
		tc.writer = bufio.NewWriter(tc.Output)
	}

	_, err = tc.writer.WriteString(code.String() + "\n")
	if err != nil {
		return
	}

	tc.Count++
	return
}

// Close flushes the listing, and closes the file opened by Create. Closing
// an already closed tape does nothing.
func (tc *Tape) Close() (err error) {
	if tc.closed {
		return
	}
	tc.closed = true

	if tc.writer != nil {
		err = tc.writer.Flush()
	}

	if tc.closer != nil {
		close_err := tc.closer.Close()
		if err == nil {
			err = close_err
		}
	}

	return
}
