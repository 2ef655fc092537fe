package testgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestAssembler() *assembler {
	return newAssembler(defaultTemplates(FrameworkJest))
}

func TestAssembler_renderCase_Basic(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "add",
		Params: []Param{
			{Name: "a", Type: "number"},
			{Name: "b", Type: "number"},
		},
		ReturnType: "number",
	}

	got := newTestAssembler().renderCase(fn, TestCaseSpec{Kind: KindBasic})

	want := `  it('should call add with typical arguments', () => {
    const a = 42;
    const b = 42;
    const result = add(a, b);
    expect(typeof result === 'number').toBe(true);
  });`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("basic case mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_renderCase_BasicWithoutParams(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{Name: "reset", ReturnType: VoidType}

	got := newTestAssembler().renderCase(fn, TestCaseSpec{Kind: KindBasic})

	want := `  it('should call reset with typical arguments', () => {
    // no arguments required
    const result = reset();
    // void return; nothing to assert
  });`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("void basic case mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_renderCase_RequiredParameter(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "divide",
		Params: []Param{
			{Name: "a", Type: "number"},
			{Name: "b", Type: "number"},
		},
		ReturnType: "number",
	}

	got := newTestAssembler().renderCase(fn, TestCaseSpec{Kind: KindRequiredParameter})

	want := `  it('should throw when required arguments are missing', () => {
    // TODO: adjust if divide accepts missing arguments
    expect(() => divide(undefined, undefined)).toThrow();
  });`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("required-parameter case mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_renderCase_NullParameter(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "greet",
		Params: []Param{
			{Name: "name", Type: "string | null"},
			{Name: "loud", Type: "boolean"},
		},
		ReturnType: "string",
	}

	got := newTestAssembler().renderCase(fn, TestCaseSpec{Kind: KindNullParameter, Param: "name"})

	want := `  it('should handle null name', () => {
    const name = null;
    const loud = true;
    const result = greet(name, loud);
    // TODO: verify the expected behavior when name is null
    expect(result).toBeDefined();
  });`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("null-parameter case mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_renderCase_Async(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name:       "fetchUser",
		Params:     []Param{{Name: "id", Type: "string"}},
		ReturnType: "Promise<User>",
	}

	got := newTestAssembler().renderCase(fn, TestCaseSpec{Kind: KindAsync})

	want := `  it('should resolve fetchUser', async () => {
    const id = 'test-id';
    const result = await fetchUser(id);
    expect(result).toBeDefined();
  });`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("async case mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_renderCase_EdgeCases(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name: "search",
		Params: []Param{
			{Name: "query", Type: "string"},
			{Name: "limit", Type: "number"},
			{Name: "tags", Type: "string[]"},
		},
		ReturnType: "string[]",
	}
	a := newTestAssembler()

	tests := []struct {
		name string
		spec TestCaseSpec
		want string
	}{
		{
			name: "empty string",
			spec: TestCaseSpec{Kind: KindEmptyString, Param: "query"},
			want: `  it('should handle empty string for query ("")', () => {
    const query = '';
    const limit = 42;
    const tags = ['test-tags'];
    const result = search(query, limit, tags);
    // TODO: verify the expected result for this input
    expect(result).toBeDefined();
  });`,
		},
		{
			name: "boundary value",
			spec: TestCaseSpec{Kind: KindBoundaryValue, Param: "limit"},
			want: `  it('should handle boundary value for limit (0)', () => {
    const query = 'test-query';
    const limit = 0;
    const tags = ['test-tags'];
    const result = search(query, limit, tags);
    // TODO: verify the expected result for this input
    expect(result).toBeDefined();
  });`,
		},
		{
			name: "empty array",
			spec: TestCaseSpec{Kind: KindEmptyArray, Param: "tags"},
			want: `  it('should handle empty array for tags ([])', () => {
    const query = 'test-query';
    const limit = 42;
    const tags = [];
    const result = search(query, limit, tags);
    // TODO: verify the expected result for this input
    expect(result).toBeDefined();
  });`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			got := a.renderCase(fn, tt.spec)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s case mismatch (-want +got):\n%s", tt.spec.Kind, diff)
			}
		})
	}
}

func TestBasicAssert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		returnType string
		want       string
	}{
		{VoidType, "    // void return; nothing to assert"},
		{"number", "    expect(typeof result === 'number').toBe(true);"},
		{"string", "    expect(typeof result === 'string').toBe(true);"},
		{"boolean", "    expect(typeof result === 'boolean').toBe(true);"},
		{"number[]", "    expect(Array.isArray(result)).toBe(true);"},
		{"Array<User>", "    expect(Array.isArray(result)).toBe(true);"},
		{"User", "    expect(result).toBeDefined();"},
		{"Promise<number>", "    expect(result).toBeDefined();"},
	}

	for _, tt := range tests {
		t.Run(tt.returnType, func(t *testing.T) {
			tt := tt
			t.Parallel()

			if got := basicAssert(tt.returnType); got != tt.want {
				t.Errorf("basicAssert(%q) = %q, want %q", tt.returnType, got, tt.want)
			}
		})
	}
}

func TestAssembler_renderSuite(t *testing.T) {
	t.Parallel()

	fn := FunctionMetadata{
		Name:       "negate",
		Params:     []Param{{Name: "value", Type: "boolean"}},
		ReturnType: "boolean",
	}

	got := newTestAssembler().renderSuite(fn, SelectCases(fn, SelectOptions{}))

	want := `describe('negate', () => {
  it('should call negate with typical arguments', () => {
    const value = true;
    const result = negate(value);
    expect(typeof result === 'boolean').toBe(true);
  });

  it('should throw when required arguments are missing', () => {
    // TODO: adjust if negate accepts missing arguments
    expect(() => negate(undefined)).toThrow();
  });
});`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suite mismatch (-want +got):\n%s", diff)
	}
}
