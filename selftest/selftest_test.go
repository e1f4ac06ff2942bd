package selftest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCases(t *testing.T) {
	assert := assert.New(t)

	reports := RunAll(Cases)
	assert.Equal(len(Cases), len(reports))
	for n, report := range reports {
		assert.Equal(Cases[n].Name, report.Name)
		assert.True(report.Passed, report.Name)
		assert.NoError(report.Err)
		assert.Empty(report.Mismatch)
	}
}

func TestRunMismatch(t *testing.T) {
	assert := assert.New(t)

	report := Run(Case{
		Name:     "Differ",
		Input:    "ldr A, $1\n\nldr A, $2\n",
		Expected: "0000000000000001\n0000000000000011\n",
	})
	assert.False(report.Passed)
	assert.Equal([]Mismatch{
		{Line: 2, Instruction: "ldr A, $2", Expected: "0000000000000011", Actual: "0000000000000010"},
	}, report.Mismatch)
	assert.Equal("line   2: ldr A, $2\t0000000000000011 != 0000000000000010", report.Mismatch[0].String())
}

func TestRunMissing(t *testing.T) {
	assert := assert.New(t)

	report := Run(Case{
		Name:     "Missing",
		Input:    "ldr A, $1\nmul D\nldr A, $3",
		Expected: "0000000000000001\n0000000000000010\n0000000000000011",
	})
	assert.False(report.Passed)
	assert.NoError(report.Err)
	assert.Equal([]Mismatch{
		{Line: 2, Instruction: "mul D", Expected: "0000000000000010", Missing: true},
		{Line: 3, Instruction: "ldr A, $3", Expected: "0000000000000011", Missing: true},
	}, report.Mismatch)
	assert.Equal("line   2: mul D\t0000000000000010 != missing", report.Mismatch[0].String())
}

func TestRunExtra(t *testing.T) {
	assert := assert.New(t)

	report := Run(Case{
		Name:     "Extra",
		Input:    "ldr A, $1\nldr A, $2",
		Expected: "0000000000000001",
	})
	assert.False(report.Passed)
	assert.Equal([]Mismatch{
		{Line: 2, Instruction: "ldr A, $2", Actual: "0000000000000010"},
	}, report.Mismatch)
	assert.Equal("line   2: ldr A, $2\t != 0000000000000010", report.Mismatch[0].String())
}

func TestReportWriteTo(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	_, err := Run(Cases[0]).WriteTo(&out)
	assert.NoError(err)
	assert.Equal("Test AInst21 passed.\n", out.String())

	out.Reset()
	report := Run(Case{
		Name:     "Extra",
		Input:    "ldr A, $1\nldr A, $2",
		Expected: "0000000000000001",
	})
	n, err := report.WriteTo(&out)
	assert.NoError(err)
	assert.Equal(int64(out.Len()), n)
	assert.Equal("Test Extra failed.\nline   2: ldr A, $2\t != 0000000000000010\n", out.String())
}
