package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/runner"
	"github.com/testgenx/testgen/internal/tsparse"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Generate a scaffold for one source file and execute it",
	Long: `Generate the test scaffold for a single TypeScript source file, write
it next to the source, and run it through the test framework. The child
process is killed when the timeout expires.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}
		runnerCmd, err := cmd.Flags().GetString("runner")
		if err != nil {
			return err
		}

		gen := testgen.NewGenerator(opts)
		outputPath, err := generateOne(cmd.Context(), gen, tsparse.New(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), outputPath)

		result := runner.Run(cmd.Context(), outputPath, runner.Options{
			Command: strings.Fields(runnerCmd),
			Timeout: timeout,
			Logger:  newLogger(cmd),
		})
		fmt.Fprint(cmd.OutOrStdout(), result.Output)
		if !result.Success {
			return errors.New(result.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("timeout", 30*time.Second, "kill the test run after this duration")
	runCmd.Flags().String("runner", "npx jest", "command used to execute the generated file")
	runCmd.Flags().String("suffix", ".test", "suffix inserted before the file extension of generated files")
	runCmd.Flags().Bool("no-async", false, "skip async test cases for Promise-returning functions")
	runCmd.Flags().Bool("no-edge-cases", false, "skip empty-string, boundary-value and empty-array cases")
	runCmd.Flags().String("config", "", "path to a .testgen.yaml config file")
}
