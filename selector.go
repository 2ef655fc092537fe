package testgen

// TestCaseKind names one of the fixed categories of generated test
// case. The values double as keys into the template table.
type TestCaseKind string

const (
	KindBasic             TestCaseKind = "basic"
	KindRequiredParameter TestCaseKind = "required-parameter"
	KindNullParameter     TestCaseKind = "null-parameter"
	KindAsync             TestCaseKind = "async"
	KindArrayReturn       TestCaseKind = "array-return"
	KindEmptyString       TestCaseKind = "empty-string"
	KindBoundaryValue     TestCaseKind = "boundary-value"
	KindEmptyArray        TestCaseKind = "empty-array"
)

// TestCaseSpec identifies one selected test case. Param is set only
// for kinds that exercise a single parameter (null-parameter and the
// per-parameter edge cases); it is empty otherwise.
type TestCaseSpec struct {
	Kind  TestCaseKind
	Param string
}

// SelectOptions controls which optional case kinds the selector may
// emit.
type SelectOptions struct {
	IncludeAsyncTests bool
	IncludeEdgeCases  bool
}

// SelectCases decides which test cases apply to a function and in what
// order. The order is fixed and must stay stable: basic, then
// required-parameter, then null-parameter cases in parameter order,
// then async, then array-return, then edge cases in parameter order.
// Downstream consumers assert on this ordering for deterministic
// output.
//
// Async and array classification of the return type are evaluated
// independently on its outermost shape only, so Promise<T[]> selects
// the async case but not the array-return case.
func SelectCases(fn FunctionMetadata, opts SelectOptions) []TestCaseSpec {
	cases := []TestCaseSpec{{Kind: KindBasic}}

	if len(fn.Params) > 0 {
		cases = append(cases, TestCaseSpec{Kind: KindRequiredParameter})
	}

	for _, p := range fn.Params {
		if isNullableType(p.Type) {
			cases = append(cases, TestCaseSpec{Kind: KindNullParameter, Param: p.Name})
		}
	}

	if opts.IncludeAsyncTests && isPromiseType(fn.ReturnType) {
		cases = append(cases, TestCaseSpec{Kind: KindAsync})
	}

	if isArrayType(fn.ReturnType) {
		cases = append(cases, TestCaseSpec{Kind: KindArrayReturn})
	}

	if opts.IncludeEdgeCases {
		for _, p := range fn.Params {
			switch {
			case p.Type == "string":
				cases = append(cases, TestCaseSpec{Kind: KindEmptyString, Param: p.Name})
			case p.Type == "number":
				cases = append(cases, TestCaseSpec{Kind: KindBoundaryValue, Param: p.Name})
			case isArrayType(p.Type):
				cases = append(cases, TestCaseSpec{Kind: KindEmptyArray, Param: p.Name})
			}
		}
	}

	return cases
}
