package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/oserr"
	"github.com/testgenx/testgen/internal/tsparse"
	"github.com/testgenx/testgen/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file|dir> [...]",
	Short: "Generate test scaffolds for TypeScript sources",
	Long: `Generate a Jest test scaffold next to each TypeScript source file.
Directory arguments are walked recursively; node_modules, declaration
files and existing test files are skipped. By default the output path
inserts .test before the extension (math.ts becomes math.test.ts).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		sources, err := collectSources(args)
		if err != nil {
			return err
		}

		toStdout, err := cmd.Flags().GetBool("stdout")
		if err != nil {
			return err
		}
		check, err := cmd.Flags().GetBool("check")
		if err != nil {
			return err
		}

		logger := newLogger(cmd)
		gen := testgen.NewGenerator(opts)
		parser := tsparse.New()

		for _, source := range sources {
			fns, err := parser.ParseFile(cmd.Context(), source)
			if err != nil {
				return err
			}

			doc := gen.Generate(source, fns)
			logger.Debug("generated scaffold",
				zap.String("source", source),
				zap.Int("functions", len(fns)))

			if check {
				if result := testgen.ValidateDocument(doc); !result.Valid {
					return fmt.Errorf("generated document for %s failed validation: %s", source, result.Error)
				}
			}

			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				continue
			}

			outputPath := gen.OutputPath(source)
			if err := testgen.WriteDocument(outputPath, doc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("suffix", ".test", "suffix inserted before the file extension of generated files")
	generateCmd.Flags().Bool("no-async", false, "skip async test cases for Promise-returning functions")
	generateCmd.Flags().Bool("no-edge-cases", false, "skip empty-string, boundary-value and empty-array cases")
	generateCmd.Flags().String("config", "", "path to a .testgen.yaml config file")
	generateCmd.Flags().Bool("stdout", false, "print generated documents instead of writing files")
	generateCmd.Flags().Bool("check", false, "validate each generated document before writing")
}

// collectSources expands file and directory arguments into the list of
// TypeScript sources to generate for.
func collectSources(args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, oserr.Translate("read", arg, err)
		}
		if !info.IsDir() {
			sources = append(sources, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if d.Name() == "node_modules" {
					return filepath.SkipDir
				}
				return nil
			}
			if watch.IsSource(path) {
				sources = append(sources, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sources, nil
}

// generateOne parses one source and writes its scaffold, returning the
// output path. Shared by the run and watch commands.
func generateOne(ctx context.Context, gen *testgen.Generator, parser *tsparse.Parser, source string) (string, error) {
	fns, err := parser.ParseFile(ctx, source)
	if err != nil {
		return "", err
	}
	outputPath := gen.OutputPath(source)
	if err := testgen.WriteDocument(outputPath, gen.Generate(source, fns)); err != nil {
		return "", err
	}
	return outputPath, nil
}
