package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testgenx/testgen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file> [...]",
	Short: "Structurally validate generated test files",
	Long: `Check that each file contains a test suite, at least one test case and
at least one assertion, and that its delimiters balance. This is an
advisory static check; it does not execute or type-check anything.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, path := range args {
			result := testgen.ValidateFile(path)
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				continue
			}
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, result.Error)
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files failed validation", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
