package harness

import (
	"fmt"
	"strings"
)

// PythonGenerator emits code meant to live inside a function body in the
// skeleton, hence the four-space indent on every line. Python's == already
// compares lists, dicts and strings by value, so no helper functions are
// needed and the expected-type tag does not change the comparison.
type PythonGenerator struct{}

func NewPythonGenerator() *PythonGenerator { return &PythonGenerator{} }

func (g *PythonGenerator) Language() string { return "Python" }

func (g *PythonGenerator) FileExtension() string { return ".py" }

func (g *PythonGenerator) Generate(testCases []TestCase, methodName string) string {
	var b strings.Builder
	b.WriteString("    passed = 0\n")
	fmt.Fprintf(&b, "    total = %d\n\n", len(testCases))

	for _, tc := range testCases {
		fmt.Fprintf(&b, "    if %s(%s) == %s:\n", methodName, tc.Input, tc.ExpectedOutput)
		b.WriteString("        passed += 1\n")
		b.WriteString("    else:\n")
		fmt.Fprintf(&b, "        print(f\"Test case failed: Input: %s, Expected: %s\")\n\n",
			tc.Input, tc.ExpectedOutput)
	}

	b.WriteString("    status = \"success\" if passed == total else \"failed\"\n")
	b.WriteString("    print(f'RESULT:{{\"passed\":{passed},\"total\":{total},\"status\":\"{status}\"}}')\n")

	return b.String()
}
