package testgen

import "fmt"

// Framework identifies the target test framework for generated
// scaffolds. The set is closed on purpose: only Jest templates are
// implemented, and the identifier is informational until a second
// template set exists.
type Framework int

const (
	// FrameworkJest generates Jest describe/it/expect scaffolds.
	FrameworkJest Framework = iota
)

func (f Framework) String() string {
	switch f {
	case FrameworkJest:
		return "jest"
	default:
		return fmt.Sprintf("Framework(%d)", int(f))
	}
}

// ParseFramework resolves a framework name from configuration.
func ParseFramework(name string) (Framework, error) {
	switch name {
	case "", "jest":
		return FrameworkJest, nil
	default:
		return 0, fmt.Errorf("unsupported test framework %q", name)
	}
}

// Options configures scaffold generation.
type Options struct {
	// Framework selects the template set. Informational for now; see
	// Framework.
	Framework Framework

	// IncludeAsyncTests enables the awaited async case for functions
	// returning a Promise shape.
	IncludeAsyncTests bool

	// IncludeEdgeCases enables the per-parameter empty-string,
	// boundary-value and empty-array cases.
	IncludeEdgeCases bool

	// Suffix is inserted before the source file's extension to derive
	// the output path, e.g. ".test" turns math.ts into math.test.ts.
	Suffix string

	// Templates overrides individual templates by name. Overridden
	// templates keep the built-in table's substitution contract:
	// unresolved {{token}} placeholders stay literal.
	Templates map[string]string
}

// DefaultOptions returns the built-in configuration: Jest templates,
// async and edge cases enabled, ".test" output suffix.
func DefaultOptions() Options {
	return Options{
		Framework:         FrameworkJest,
		IncludeAsyncTests: true,
		IncludeEdgeCases:  true,
		Suffix:            ".test",
	}
}

// Generator renders test scaffolds for parsed function metadata. It is
// immutable after construction and safe for concurrent use; per-call
// template overrides take precedence over constructor overrides, which
// take precedence over the built-in table.
type Generator struct {
	opts      Options
	templates TemplateTable
}

// NewGenerator builds a Generator, laying the options' template
// overrides over the framework's built-in table.
func NewGenerator(opts Options) *Generator {
	if opts.Suffix == "" {
		opts.Suffix = ".test"
	}
	return &Generator{
		opts:      opts,
		templates: mergeTemplates(defaultTemplates(opts.Framework), opts.Templates),
	}
}

// Generate produces the complete test document for one source file's
// functions. It never fails: zero functions produce the placeholder
// document, and unrecognized types degrade to generic values. The
// output is deterministic for identical input and configuration.
func (g *Generator) Generate(sourcePath string, fns []FunctionMetadata) string {
	return g.generate(g.templates, sourcePath, fns)
}

// GenerateWith is Generate with per-call template overrides applied on
// top of the generator's table for this invocation only.
func (g *Generator) GenerateWith(overrides map[string]string, sourcePath string, fns []FunctionMetadata) string {
	return g.generate(mergeTemplates(g.templates, overrides), sourcePath, fns)
}

// GenerateSuite renders the describe block for a single function,
// without the surrounding document. Embedding the result in a
// multi-function document yields identical suite text.
func (g *Generator) GenerateSuite(fn FunctionMetadata) string {
	return newAssembler(g.templates).renderSuite(fn, SelectCases(fn, g.selectOptions()))
}

// OutputPath derives the generated document's path from the source
// path using the generator's suffix.
func (g *Generator) OutputPath(sourcePath string) string {
	return OutputPath(sourcePath, g.opts.Suffix)
}

func (g *Generator) generate(templates TemplateTable, sourcePath string, fns []FunctionMetadata) string {
	return newAssembler(templates).assembleFile(sourcePath, fns, g.selectOptions())
}

func (g *Generator) selectOptions() SelectOptions {
	return SelectOptions{
		IncludeAsyncTests: g.opts.IncludeAsyncTests,
		IncludeEdgeCases:  g.opts.IncludeEdgeCases,
	}
}

// Generate is a convenience wrapper constructing a one-shot Generator.
func Generate(sourcePath string, fns []FunctionMetadata, opts Options) string {
	return NewGenerator(opts).Generate(sourcePath, fns)
}
