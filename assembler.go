package testgen

import (
	"fmt"
	"strings"
)

// assembler renders selected test cases through a template table. It
// holds no mutable state beyond the table, which is read-only after
// construction.
type assembler struct {
	templates TemplateTable
}

func newAssembler(templates TemplateTable) *assembler {
	return &assembler{templates: templates}
}

// renderSuite renders every selected case for a function and wraps
// them in a describe block titled with the function name. Cases are
// separated by a blank line.
func (a *assembler) renderSuite(fn FunctionMetadata, specs []TestCaseSpec) string {
	rendered := make([]string, 0, len(specs))
	for _, spec := range specs {
		rendered = append(rendered, a.renderCase(fn, spec))
	}

	return a.render(tmplDescribeBlock, map[string]string{
		"suiteName": fn.Name,
		"testCases": strings.Join(rendered, "\n\n"),
	})
}

func (a *assembler) renderCase(fn FunctionMetadata, spec TestCaseSpec) string {
	fields := map[string]string{
		"functionName": fn.Name,
		"paramName":    spec.Param,
	}

	switch spec.Kind {
	case KindRequiredParameter:
		fields["call"] = callExpression(fn, undefinedArgs(fn))
	case KindNullParameter:
		fields["arrange"] = a.arrange(fn, map[string]string{spec.Param: "null"})
		fields["call"] = callExpression(fn, paramNames(fn))
	case KindEmptyString:
		fields["arrange"] = a.arrange(fn, map[string]string{spec.Param: "''"})
		fields["call"] = callExpression(fn, paramNames(fn))
	case KindBoundaryValue:
		fields["arrange"] = a.arrange(fn, map[string]string{spec.Param: "0"})
		fields["call"] = callExpression(fn, paramNames(fn))
	case KindEmptyArray:
		fields["arrange"] = a.arrange(fn, map[string]string{spec.Param: "[]"})
		fields["call"] = callExpression(fn, paramNames(fn))
	case KindBasic:
		fields["arrange"] = a.arrange(fn, nil)
		fields["call"] = callExpression(fn, paramNames(fn))
		fields["assert"] = basicAssert(fn.ReturnType)
	default:
		fields["arrange"] = a.arrange(fn, nil)
		fields["call"] = callExpression(fn, paramNames(fn))
	}

	return a.render(string(spec.Kind), fields)
}

func (a *assembler) render(name string, fields map[string]string) string {
	return a.templates[name].Render(fields)
}

// arrange emits one const declaration per parameter, substituting
// overridden values where given and synthesized values elsewhere.
// Functions without parameters get a placeholder comment so the
// template's arrange slot never collapses to an empty line.
func (a *assembler) arrange(fn FunctionMetadata, overrides map[string]string) string {
	if len(fn.Params) == 0 {
		return "    // no arguments required"
	}

	lines := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		value, ok := overrides[p.Name]
		if !ok {
			value = SynthesizeValue(p.Type, p.Name)
		}
		lines = append(lines, fmt.Sprintf("    const %s = %s;", p.Name, value))
	}
	return strings.Join(lines, "\n")
}

func callExpression(fn FunctionMetadata, args []string) string {
	return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(args, ", "))
}

func paramNames(fn FunctionMetadata) []string {
	names := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		names = append(names, p.Name)
	}
	return names
}

func undefinedArgs(fn FunctionMetadata) []string {
	args := make([]string, len(fn.Params))
	for i := range args {
		args[i] = "undefined"
	}
	return args
}

// basicAssert picks the basic case's assertion from the return-type
// shape: void gets a comment, the three primitive types get a typeof
// check, array shapes get an isArray check, everything else a defined
// check.
func basicAssert(returnType string) string {
	switch {
	case returnType == VoidType:
		return "    // void return; nothing to assert"
	case returnType == "string", returnType == "number", returnType == "boolean":
		return fmt.Sprintf("    expect(typeof result === '%s').toBe(true);", returnType)
	case isArrayType(returnType):
		return "    expect(Array.isArray(result)).toBe(true);"
	default:
		return "    expect(result).toBeDefined();"
	}
}
