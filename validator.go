package testgen

import (
	"os"
	"strings"

	"github.com/testgenx/testgen/internal/oserr"
)

// ValidationResult reports the outcome of a structural check. Error
// holds the first failed check's reason when Valid is false.
type ValidationResult struct {
	Valid bool
	Error string
}

// ValidateDocument performs structural sanity checks on generated test
// source: the test-suite, test-case and assertion markers must be
// present, and parentheses, braces and brackets must balance by count.
// The balance check is character counting, not parsing; string or
// comment contents containing delimiters can skew it. This is an
// advisory check and never executes or type-checks the document.
//
// Checks run in order and stop at the first failure. A failure is data,
// not an error, so batches of documents can be validated without early
// termination.
func ValidateDocument(text string) ValidationResult {
	if !strings.Contains(text, "describe(") {
		return ValidationResult{Error: "no test suite found: missing describe block"}
	}
	if !strings.Contains(text, "it(") {
		return ValidationResult{Error: "no test case found: missing it block"}
	}
	if !strings.Contains(text, "expect(") {
		return ValidationResult{Error: "no assertion found: missing expect call"}
	}

	pairs := []struct {
		open, close rune
		name        string
	}{
		{'(', ')', "parentheses"},
		{'{', '}', "braces"},
		{'[', ']', "brackets"},
	}
	for _, pair := range pairs {
		if strings.Count(text, string(pair.open)) != strings.Count(text, string(pair.close)) {
			return ValidationResult{Error: "unbalanced " + pair.name}
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateFile reads path and validates its contents. A read failure
// is reported as an invalid result, not returned as an error, so batch
// validation keeps going.
func ValidateFile(path string) ValidationResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return ValidationResult{Error: oserr.Translate("read", path, err).Error()}
	}
	return ValidateDocument(string(content))
}
