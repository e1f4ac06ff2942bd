// Package selftest runs source fixtures through the assembler and reports
// where the listing differs from the expected one.
package selftest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/nhasm/asm"
	"github.com/ezrec/nhasm/internal"
	"github.com/ezrec/nhasm/translate"
)

// Case is a source fixture and its expected binary listing.
type Case struct {
	Name     string
	Input    string
	Expected string
}

// Mismatch is a differing line of a listing. Expected is empty for an
// unexpected extra line, and Missing is set when the actual listing ended
// early.
type Mismatch struct {
	Line        int    // Listing line, starting at 1.
	Instruction string // Source instruction paired with the line.
	Expected    string
	Actual      string
	Missing     bool
}

// Report is the result of running a Case.
type Report struct {
	Name     string
	Passed   bool
	Err      error // Failure reading the fixture.
	Mismatch []Mismatch
}

// Run assembles the fixture input and compares the listing with the
// expected output. Both are trimmed of surrounding whitespace first. An
// invalid instruction only truncates the listing, as it does for a file.
func Run(test Case) (report Report) {
	report.Name = test.Name

	input := strings.TrimSpace(test.Input)
	expected := strings.TrimSpace(test.Expected)

	assembler := &asm.Assembler{}
	prog, err := assembler.Parse(strings.NewReader(input))
	if err != nil && !errors.Is(err, asm.ErrInstructionInvalid) {
		report.Err = err
		return
	}

	var output strings.Builder
	_, err = prog.WriteTo(&output)
	if err != nil {
		report.Err = err
		return
	}
	actual := strings.TrimSpace(output.String())

	if expected == actual {
		report.Passed = true
		return
	}

	report.Mismatch = compare(sourceLines(input),
		strings.Split(expected, "\n"),
		strings.Split(actual, "\n"))

	return
}

// RunAll runs every case, in order.
func RunAll(tests []Case) (reports []Report) {
	for _, test := range tests {
		reports = append(reports, Run(test))
	}

	return
}

// sourceLines returns the non-blank lines of the input.
func sourceLines(input string) (lines []string) {
	scanner := internal.NewLineScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}

	return
}

// compare pairs each listing line with the source line at the same index.
func compare(source, expected, actual []string) (mismatch []Mismatch) {
	instruction := func(n int) string {
		if n < len(source) {
			return source[n]
		}
		return ""
	}

	n := 0
	for ; n < len(expected); n++ {
		if n >= len(actual) {
			mismatch = append(mismatch, Mismatch{
				Line:        n + 1,
				Instruction: instruction(n),
				Expected:    expected[n],
				Missing:     true,
			})
			continue
		}
		if expected[n] != actual[n] {
			mismatch = append(mismatch, Mismatch{
				Line:        n + 1,
				Instruction: instruction(n),
				Expected:    expected[n],
				Actual:      actual[n],
			})
		}
	}

	for ; n < len(actual); n++ {
		mismatch = append(mismatch, Mismatch{
			Line:        n + 1,
			Instruction: instruction(n),
			Actual:      actual[n],
		})
	}

	return
}

func (mm Mismatch) String() string {
	actual := mm.Actual
	if mm.Missing {
		actual = "missing"
	}

	if len(mm.Expected) == 0 {
		return fmt.Sprintf("line %3d: %s\t != %s", mm.Line, mm.Instruction, actual)
	}

	return fmt.Sprintf("line %3d: %s\t%s != %s", mm.Line, mm.Instruction, mm.Expected, actual)
}

// WriteTo writes the pass or fail summary, followed by each mismatch.
func (report Report) WriteTo(w io.Writer) (n int64, err error) {
	var count int
	emit := func(key string, args ...any) bool {
		count, err = translate.Fprint(w, key, args...)
		n += int64(count)
		return err == nil
	}

	switch {
	case report.Err != nil:
		emit("Test %v failed: %v\n", report.Name, report.Err)
	case report.Passed:
		emit("Test %v passed.\n", report.Name)
	default:
		if !emit("Test %v failed.\n", report.Name) {
			return
		}
		for _, mm := range report.Mismatch {
			if !emit("%v\n", mm.String()) {
				return
			}
		}
	}

	return
}
