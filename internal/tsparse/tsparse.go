// Package tsparse extracts function metadata from TypeScript source
// using Tree-sitter. It is the adapter in front of the generation
// core: everything downstream consumes the FunctionMetadata records it
// produces and never touches the AST.
package tsparse

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/oserr"
)

// Parser extracts exported function signatures from TypeScript source
// files. It is not safe for concurrent use; create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// New creates a Parser for the TypeScript grammar.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(typescript.GetLanguage())
	return &Parser{parser: p}
}

// ParseFile reads path and extracts its exported function metadata. A
// missing or unreadable source file is an error; this is the one place
// metadata extraction fails rather than degrading.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]testgen.FunctionMetadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oserr.Translate("read", path, err)
	}
	return p.ParseSource(ctx, content)
}

// ParseSource extracts exported function metadata from source text.
// Both exported function declarations and exported const arrow
// functions are collected, in source order. Empty source yields an
// empty list, not an error.
func (p *Parser) ParseSource(ctx context.Context, source []byte) ([]testgen.FunctionMetadata, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse typescript source: %w", err)
	}
	defer tree.Close()

	var fns []testgen.FunctionMetadata
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "export_statement" {
			continue
		}
		collectExported(child, source, &fns)
	}
	return fns, nil
}

func collectExported(export *sitter.Node, source []byte, fns *[]testgen.FunctionMetadata) {
	for i := 0; i < int(export.NamedChildCount()); i++ {
		decl := export.NamedChild(i)
		switch decl.Type() {
		case "function_declaration":
			if fn, ok := parseFunctionDecl(decl, source); ok {
				*fns = append(*fns, fn)
			}
		case "lexical_declaration", "variable_declaration":
			collectArrowConsts(decl, source, fns)
		}
	}
}

func parseFunctionDecl(node *sitter.Node, source []byte) (testgen.FunctionMetadata, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return testgen.FunctionMetadata{}, false
	}

	return testgen.FunctionMetadata{
		Name:       text(nameNode, source),
		Params:     parseParams(node.ChildByFieldName("parameters"), source),
		ReturnType: returnType(node, source),
	}, true
}

func collectArrowConsts(decl *sitter.Node, source []byte, fns *[]testgen.FunctionMetadata) {
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		declarator := decl.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := declarator.ChildByFieldName("name")
		value := declarator.ChildByFieldName("value")
		if nameNode == nil || value == nil || value.Type() != "arrow_function" {
			continue
		}
		*fns = append(*fns, testgen.FunctionMetadata{
			Name:       text(nameNode, source),
			Params:     parseParams(value.ChildByFieldName("parameters"), source),
			ReturnType: returnType(value, source),
		})
	}
}

func parseParams(params *sitter.Node, source []byte) []testgen.Param {
	if params == nil {
		return nil
	}

	var out []testgen.Param
	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)
		switch param.Type() {
		case "required_parameter", "optional_parameter":
		default:
			continue
		}

		pattern := param.ChildByFieldName("pattern")
		if pattern == nil {
			continue
		}

		ty := "any"
		if annotation := param.ChildByFieldName("type"); annotation != nil {
			ty = annotationType(annotation, source)
		}
		// Optional markers are folded into the type text so the
		// selector's nullability rule sees them.
		if param.Type() == "optional_parameter" {
			ty += " | undefined"
		}

		out = append(out, testgen.Param{Name: text(pattern, source), Type: ty})
	}
	return out
}

// returnType reads the return annotation, defaulting to "void" for
// unannotated functions and "Promise<void>" for unannotated async
// functions.
func returnType(node *sitter.Node, source []byte) string {
	if annotation := node.ChildByFieldName("return_type"); annotation != nil {
		return annotationType(annotation, source)
	}
	if isAsync(node) {
		return "Promise<void>"
	}
	return testgen.VoidType
}

// annotationType strips the leading ":" from a type_annotation node's
// text.
func annotationType(annotation *sitter.Node, source []byte) string {
	if annotation.NamedChildCount() > 0 {
		return text(annotation.NamedChild(0), source)
	}
	return strings.TrimSpace(strings.TrimPrefix(text(annotation, source), ":"))
}

func isAsync(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "async" {
			return true
		}
	}
	return false
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
