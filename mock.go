package testgen

import "fmt"

// SynthesizeValue produces literal source text for a plausible value
// of the given type. It is total: unrecognized types fall through to
// an empty-object literal cast to the original type string, so the
// emitted code stays syntactically valid even for unknown nominal
// types.
//
// The paramName is embedded in string literals so every synthesized
// string is unique and readable in the generated scaffold:
//
//	SynthesizeValue("string", "email")    // 'test-email'
//	SynthesizeValue("number[]", "ids")    // [42]
//	SynthesizeValue("Promise<User>", "u") // Promise.resolve({} as User)
//
// Recursion on array element and promise inner types terminates at the
// fallback rule; depth is bounded by the nesting of the type string.
func SynthesizeValue(typ, paramName string) string {
	switch typ {
	case "string":
		return fmt.Sprintf("'test-%s'", paramName)
	case "number":
		return "42"
	case "boolean":
		return "true"
	case "null":
		return "null"
	case "undefined":
		return "undefined"
	}

	if isArrayType(typ) {
		return fmt.Sprintf("[%s]", SynthesizeValue(arrayElemType(typ), paramName))
	}

	if isPromiseType(typ) {
		return fmt.Sprintf("Promise.resolve(%s)", SynthesizeValue(promiseInnerType(typ), paramName))
	}

	return fmt.Sprintf("{} as %s", typ)
}
