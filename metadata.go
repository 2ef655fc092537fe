package testgen

import "strings"

// Param describes one declared parameter of a function: its name and
// the source text of its type annotation.
type Param struct {
	Name string
	Type string
}

// FunctionMetadata describes one exported function as reported by the
// source parser. Params are in declaration order; order is significant
// because it mirrors the call site. ReturnType is the source text of
// the return annotation, with "void" meaning no modeled return value.
//
// Type strings are treated as opaque syntax throughout the generator:
// classification is done with prefix/suffix tests on the outermost
// shape, never by parsing the type into an AST. A nested type such as
// Promise<string[]> therefore classifies as a Promise, not an array.
type FunctionMetadata struct {
	Name       string
	Params     []Param
	ReturnType string
}

// VoidType is the sentinel return type for functions with no modeled
// return value.
const VoidType = "void"

func isArrayType(t string) bool {
	if strings.HasSuffix(t, "[]") {
		return true
	}
	return strings.HasPrefix(t, "Array<") && strings.HasSuffix(t, ">")
}

func arrayElemType(t string) string {
	if strings.HasSuffix(t, "[]") {
		return strings.TrimSuffix(t, "[]")
	}
	return strings.TrimSuffix(strings.TrimPrefix(t, "Array<"), ">")
}

func isPromiseType(t string) bool {
	return strings.HasPrefix(t, "Promise<") && strings.HasSuffix(t, ">")
}

func promiseInnerType(t string) string {
	return strings.TrimSuffix(strings.TrimPrefix(t, "Promise<"), ">")
}

// isNullableType reports whether a type string textually admits a
// null-ish value. The "?" check covers optional-marker encodings kept
// in the annotation text.
func isNullableType(t string) bool {
	return strings.Contains(t, "null") ||
		strings.Contains(t, "undefined") ||
		strings.Contains(t, "?")
}
