package testgen

import (
	"path"
	"path/filepath"
	"strings"
)

// sourceRoots are directory names treated as the top of a source tree
// when deriving import specifiers.
var sourceRoots = map[string]bool{
	"src": true,
	"lib": true,
	"app": true,
}

// assembleFile joins the import line with one rendered suite per
// function. Zero functions produce the fixed placeholder document with
// no import line.
func (a *assembler) assembleFile(sourcePath string, fns []FunctionMetadata, opts SelectOptions) string {
	if len(fns) == 0 {
		return a.render(tmplEmptyTestFile, map[string]string{
			"moduleName": moduleBaseName(sourcePath),
		}) + "\n"
	}

	names := make([]string, 0, len(fns))
	suites := make([]string, 0, len(fns))
	for _, fn := range fns {
		names = append(names, fn.Name)
		suites = append(suites, a.renderSuite(fn, SelectCases(fn, opts)))
	}

	importLine := a.render(tmplImport, map[string]string{
		"functionNames": strings.Join(names, ", "),
		"importPath":    importPath(sourcePath),
	})

	return importLine + "\n\n" + strings.Join(suites, "\n\n") + "\n"
}

// importPath derives the module specifier for the generated import
// line. A root-level file imports as ./name; a file under a recognized
// source root keeps its path relative to a sibling directory; any
// other nested path collapses to its base name.
func importPath(sourcePath string) string {
	clean := filepath.ToSlash(filepath.Clean(sourcePath))
	base := moduleBaseName(clean)

	dir := path.Dir(clean)
	if dir == "." {
		return "./" + base
	}

	segments := strings.Split(clean, "/")
	if sourceRoots[segments[0]] {
		return "../" + strings.TrimSuffix(clean, path.Ext(clean))
	}

	return "./" + base
}

// moduleBaseName is the final path segment with its extension
// stripped.
func moduleBaseName(sourcePath string) string {
	base := path.Base(filepath.ToSlash(sourcePath))
	return strings.TrimSuffix(base, path.Ext(base))
}
