package selftest

// Cases are the built in regression fixtures.
var Cases = []Case{
	{
		Name:     "AInst21",
		Input:    "ldr A, $21",
		Expected: "0000000000010101",
	},
	{
		Name: "CInst",
		Input: `
ldr D, (A)
sub D, D, (A)
jgt D
ldr D, (A)
jmp
str (A), D
`,
		Expected: `
1111110000010000
1111010011010000
1110001100000001
1111110000010000
1110101010000111
1110001100001000
`,
	},
	{
		Name: "Add",
		Input: `
ldr A, $2
ldr D, A
ldr A, $3
add D, D, A
ldr A, $0
str (A), D
`,
		Expected: `
0000000000000010
1110110000010000
0000000000000011
1110000010010000
0000000000000000
1110001100001000`,
	},
}
