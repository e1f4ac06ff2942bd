package internal

import (
	"bufio"
	"bytes"
	"io"
	"math"
)

// ScanLines is a bufio.SplitFunc like bufio.ScanLines, except that "\n",
// "\r\n" and a lone "\r" all end a line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return
	}

	n := bytes.IndexAny(data, "\r\n")
	switch {
	case n < 0:
		if atEOF {
			advance, token = len(data), data
		}
	case data[n] == '\n':
		advance, token = n+1, data[:n]
	case n+1 < len(data):
		advance, token = n+1, data[:n]
		if data[n+1] == '\n' {
			advance++
		}
	case atEOF:
		advance, token = n+1, data[:n]
	}

	// Otherwise request more data, to tell "\r" from "\r\n".
	return
}

// NewLineScanner returns a scanner over the lines of input, split by
// ScanLines, with no limit on line length.
func NewLineScanner(input io.Reader) (scanner *bufio.Scanner) {
	scanner = bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(ScanLines)
	return
}
