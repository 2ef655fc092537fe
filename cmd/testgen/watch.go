package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/tsparse"
	"github.com/testgenx/testgen/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir> [...]",
	Short: "Regenerate scaffolds when sources change",
	Long: `Watch one or more directories and regenerate the test scaffold for a
TypeScript source file whenever it is created or written. Runs until
interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		logger := newLogger(cmd)
		gen := testgen.NewGenerator(opts)

		w, err := watch.New(logger, func(source string) {
			// Re-parsing on every event keeps the handler stateless; a
			// fresh parser avoids sharing one across events.
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			outputPath, err := generateOne(ctx, gen, tsparse.New(), source)
			if err != nil {
				logger.Warn("regeneration failed", zap.String("source", source), zap.Error(err))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), outputPath)
		})
		if err != nil {
			return err
		}
		defer w.Close()

		for _, dir := range args {
			if err := w.Add(dir); err != nil {
				return err
			}
		}

		if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("suffix", ".test", "suffix inserted before the file extension of generated files")
	watchCmd.Flags().Bool("no-async", false, "skip async test cases for Promise-returning functions")
	watchCmd.Flags().Bool("no-edge-cases", false, "skip empty-string, boundary-value and empty-array cases")
	watchCmd.Flags().String("config", "", "path to a .testgen.yaml config file")
}
