// Package main provides the rfq CLI, a thin wrapper around the resolution
// engine for inspecting extractor output offline:
//   - resolve: merge a JSON file of field mappings into a request object
//   - question: run the question-text parsers over free text
//   - vocab: print the categorical vocabularies
//
// The engine itself never performs I/O; this binary owns all of it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rfq",
	Short: "Inspect and resolve survey-RFQ extraction output",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(vocabCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
