package testgen

import "strings"

// Template is one named piece of test source with {{token}}
// placeholders. Rendering substitutes the tokens it has values for and
// leaves the rest as literal {{token}} text; it never fails and never
// drops content, so a partially filled template stays visible in the
// generated scaffold instead of aborting generation.
type Template string

// Render substitutes {{token}} placeholders with values from fields.
// Tokens without a value are left intact.
func (t Template) Render(fields map[string]string) string {
	s := string(t)
	var b strings.Builder
	for {
		open := strings.Index(s, "{{")
		if open < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[open:], "}}")
		if end < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:open])
		token := s[open+2 : open+end]
		if value, ok := fields[token]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(s[open : open+end+2])
		}
		s = s[open+end+2:]
	}
	return b.String()
}

// TemplateTable maps template names to their source. Names cover the
// test-case kinds plus the document fragments "import",
// "describe-block" and "empty-test-file".
type TemplateTable map[string]Template

const (
	tmplImport        = "import"
	tmplDescribeBlock = "describe-block"
	tmplEmptyTestFile = "empty-test-file"
)

// defaultTemplates returns the built-in template set for a framework.
// Only Jest templates exist today.
func defaultTemplates(Framework) TemplateTable {
	return TemplateTable{
		tmplImport: "import { {{functionNames}} } from '{{importPath}}';",

		tmplDescribeBlock: "describe('{{suiteName}}', () => {\n{{testCases}}\n});",

		tmplEmptyTestFile: "describe('{{moduleName}}', () => {\n" +
			"  it('should have tests', () => {\n" +
			"    // TODO: add tests for the {{moduleName}} module\n" +
			"    expect(true).toBe(true);\n" +
			"  });\n" +
			"});",

		string(KindBasic): "  it('should call {{functionName}} with typical arguments', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"{{assert}}\n" +
			"  });",

		string(KindRequiredParameter): "  it('should throw when required arguments are missing', () => {\n" +
			"    // TODO: adjust if {{functionName}} accepts missing arguments\n" +
			"    expect(() => {{call}}).toThrow();\n" +
			"  });",

		string(KindNullParameter): "  it('should handle null {{paramName}}', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"    // TODO: verify the expected behavior when {{paramName}} is null\n" +
			"    expect(result).toBeDefined();\n" +
			"  });",

		string(KindAsync): "  it('should resolve {{functionName}}', async () => {\n" +
			"{{arrange}}\n" +
			"    const result = await {{call}};\n" +
			"    expect(result).toBeDefined();\n" +
			"  });",

		string(KindArrayReturn): "  it('should return an array', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"    expect(Array.isArray(result)).toBe(true);\n" +
			"  });",

		string(KindEmptyString): "  it('should handle empty string for {{paramName}} (\"\")', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"    // TODO: verify the expected result for this input\n" +
			"    expect(result).toBeDefined();\n" +
			"  });",

		string(KindBoundaryValue): "  it('should handle boundary value for {{paramName}} (0)', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"    // TODO: verify the expected result for this input\n" +
			"    expect(result).toBeDefined();\n" +
			"  });",

		string(KindEmptyArray): "  it('should handle empty array for {{paramName}} ([])', () => {\n" +
			"{{arrange}}\n" +
			"    const result = {{call}};\n" +
			"    // TODO: verify the expected result for this input\n" +
			"    expect(result).toBeDefined();\n" +
			"  });",
	}
}

// mergeTemplates lays overrides over base without mutating either.
func mergeTemplates(base TemplateTable, overrides map[string]string) TemplateTable {
	if len(overrides) == 0 {
		return base
	}
	merged := make(TemplateTable, len(base))
	for name, tmpl := range base {
		merged[name] = tmpl
	}
	for name, tmpl := range overrides {
		merged[name] = Template(tmpl)
	}
	return merged
}
