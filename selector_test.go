package testgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectCases_Ordering(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "process",
		Params: []Param{
			{Name: "label", Type: "string | null"},
			{Name: "count", Type: "number"},
			{Name: "tags", Type: "string[]"},
		},
		ReturnType: "number[]",
	}

	got := SelectCases(fn, SelectOptions{IncludeAsyncTests: true, IncludeEdgeCases: true})

	want := []TestCaseSpec{
		{Kind: KindBasic},
		{Kind: KindRequiredParameter},
		{Kind: KindNullParameter, Param: "label"},
		{Kind: KindArrayReturn},
		{Kind: KindBoundaryValue, Param: "count"},
		{Kind: KindEmptyArray, Param: "tags"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectCases() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCases_NoParams(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{Name: "now", ReturnType: "number"}

	got := SelectCases(fn, SelectOptions{IncludeAsyncTests: true, IncludeEdgeCases: true})

	for _, spec := range got {
		if spec.Kind == KindRequiredParameter {
			t.Error("required-parameter case generated for a function with no parameters")
		}
	}
	if len(got) != 1 || got[0].Kind != KindBasic {
		t.Errorf("SelectCases() = %v, want only the basic case", got)
	}
}

func TestSelectCases_NullableParams(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "merge",
		Params: []Param{
			{Name: "left", Type: "string | null"},
			{Name: "right", Type: "User | undefined"},
		},
		ReturnType: "User",
	}

	got := SelectCases(fn, SelectOptions{})

	var nullCases []TestCaseSpec
	for _, spec := range got {
		if spec.Kind == KindNullParameter {
			nullCases = append(nullCases, spec)
		}
	}

	want := []TestCaseSpec{
		{Kind: KindNullParameter, Param: "left"},
		{Kind: KindNullParameter, Param: "right"},
	}
	if diff := cmp.Diff(want, nullCases); diff != "" {
		t.Errorf("null-parameter cases mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCases_PromiseOfArrayIsAsyncOnly(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{Name: "listUsers", ReturnType: "Promise<User[]>"}

	got := SelectCases(fn, SelectOptions{IncludeAsyncTests: true, IncludeEdgeCases: true})

	hasAsync := false
	for _, spec := range got {
		switch spec.Kind {
		case KindAsync:
			hasAsync = true
		case KindArrayReturn:
			t.Error("array-return case generated for Promise<User[]>; outer shape should win")
		}
	}
	if !hasAsync {
		t.Error("async case not generated for Promise<User[]>")
	}
}

func TestSelectCases_OptionsDisableCases(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name:       "fetchNames",
		Params:     []Param{{Name: "limit", Type: "number"}},
		ReturnType: "Promise<string[]>",
	}

	got := SelectCases(fn, SelectOptions{})

	want := []TestCaseSpec{
		{Kind: KindBasic},
		{Kind: KindRequiredParameter},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectCases() with options off mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCases_EdgeCaseUsesExactTypeMatch(t *testing.T) {
	t.Parallel()

	// "string | null" is nullable but not exactly "string", so it gets
	// a null case and no empty-string case.
	fn := FunctionMetadata{
		Name:       "label",
		Params:     []Param{{Name: "text", Type: "string | null"}},
		ReturnType: "string",
	}

	got := SelectCases(fn, SelectOptions{IncludeEdgeCases: true})

	want := []TestCaseSpec{
		{Kind: KindBasic},
		{Kind: KindRequiredParameter},
		{Kind: KindNullParameter, Param: "text"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectCases() mismatch (-want +got):\n%s", diff)
	}
}
