package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Generate unit-test scaffolds for TypeScript modules",
	Long: `testgen inspects the exported function signatures of TypeScript source
files and generates Jest test scaffolds for them: a basic call per
function plus missing-argument, null, boundary-value, async and
array-return cases derived from each signature.

The generated files are scaffolds meant to be reviewed and completed by
hand; assertions beyond simple shape checks are emitted as TODOs.`,
	SilenceUsage: true,
}

// Execute runs the root command with the given base context so watch
// and run commands stop on interrupt.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildOptions resolves generation options from defaults, an optional
// config file and the command's flags, in increasing precedence.
func buildOptions(cmd *cobra.Command) (testgen.Options, error) {
	opts := testgen.DefaultOptions()

	configPath, err := cmd.Flags().GetString("config")
	if err == nil && configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return opts, err
		}
		if opts, err = cfg.Apply(opts); err != nil {
			return opts, err
		}
	}

	if cmd.Flags().Changed("suffix") {
		opts.Suffix, _ = cmd.Flags().GetString("suffix")
	}
	if noAsync, err := cmd.Flags().GetBool("no-async"); err == nil && noAsync {
		opts.IncludeAsyncTests = false
	}
	if noEdge, err := cmd.Flags().GetBool("no-edge-cases"); err == nil && noEdge {
		opts.IncludeEdgeCases = false
	}

	return opts, nil
}
