// Command recurse evaluates the recursion exercises from the command line.
//
//	recurse sum-range 100
//	recurse power 2 10
//	recurse all --pred even 2 4 6
//	recurse contains --data '{a: {b: {c: 44}}}' 44
//	recurse total-integers --file nested.json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries flag values and the logger shared by all sub-commands.
type app struct {
	verbose     bool
	pred        string
	rejectEmpty bool
	data        string
	file        string

	log *zap.Logger
}

// newRootCmd wires every sub-command. A nil log makes the command build a
// production logger on start; tests pass zap.NewNop().
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:   "recurse",
		Short: "Evaluate small recursive algorithms",
		Long: `recurse runs recursive arithmetic, sequence and nested-data exercises.

Nested documents (contains, total-integers, sum-squares) are YAML or JSON,
passed with --data, read from --file, or piped on stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.log, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.sumRangeCmd(),
		a.powerCmd(),
		a.factorialCmd(),
		a.allCmd(),
		a.productCmd(),
		a.replicateCmd(),
		a.containsCmd(),
		a.totalIntegersCmd(),
		a.sumSquaresCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
