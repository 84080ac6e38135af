package harness

// TestCase is one input/expected-output pair authored for a question.
// Input and ExpectedOutput hold literal expressions in the target language
// and are injected verbatim into the generated verification code; they are
// developer-authored fixtures, not untrusted input.
type TestCase struct {
	Input          string
	ExpectedOutput string
	ExpectedType   string
}

// Generator renders verification code for one target language.
type Generator interface {
	// Language is the key the registry resolves, e.g. "Java".
	Language() string

	// FileExtension includes the leading dot, e.g. ".java".
	FileExtension() string

	// Generate renders code that calls methodName once per test case,
	// counts passing cases and prints the RESULT contract line:
	//
	//	RESULT:{"passed":<int>,"total":<int>,"status":"success"|"failed"}
	Generate(testCases []TestCase, methodName string) string
}
