package harness_test

import (
	"testing"

	"github.com/codebench-dev/backend/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonGeneratorComparison(t *testing.T) {
	gen := harness.NewPythonGenerator()
	code := gen.Generate([]harness.TestCase{
		{Input: "1, 2", ExpectedOutput: "3", ExpectedType: "int"},
	}, "add")

	assert.Contains(t, code, "if add(1, 2) == 3:")
	assert.Contains(t, code, "passed += 1")
}

func TestPythonGeneratorTotalCount(t *testing.T) {
	gen := harness.NewPythonGenerator()
	code := gen.Generate([]harness.TestCase{
		{Input: "1", ExpectedOutput: "1", ExpectedType: "int"},
		{Input: "2", ExpectedOutput: "2", ExpectedType: "int"},
	}, "identity")

	require.Contains(t, code, "total = 2")
}

func TestPythonGeneratorVerbatimLiterals(t *testing.T) {
	gen := harness.NewPythonGenerator()
	code := gen.Generate([]harness.TestCase{
		{Input: `[1, 2, 3]`, ExpectedOutput: `[3, 2, 1]`, ExpectedType: "list"},
	}, "reverse_list")

	assert.Contains(t, code, "reverse_list([1, 2, 3]) == [3, 2, 1]")
	assert.Contains(t, code, "Test case failed: Input: [1, 2, 3], Expected: [3, 2, 1]")
}

func TestPythonGeneratorResultLine(t *testing.T) {
	gen := harness.NewPythonGenerator()
	code := gen.Generate(nil, "f")

	assert.Contains(t, code, `print(f'RESULT:{{"passed":{passed},"total":{total},"status":"{status}"}}')`)
	assert.Contains(t, code, "total = 0")
}

func TestPythonGeneratorMetadata(t *testing.T) {
	gen := harness.NewPythonGenerator()
	assert.Equal(t, "Python", gen.Language())
	assert.Equal(t, ".py", gen.FileExtension())
}
