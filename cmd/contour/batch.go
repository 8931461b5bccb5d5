package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/contour/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of documents into output records",
	Long: `Batch scans the input directory for documents matching the glob and
writes one <stem>.json record per input to the output directory. Documents
that fail to decode emit the default empty result instead of aborting the
run.

The input and output directories honor the INPUT_DIR and OUTPUT_DIR
environment variables when the flags are not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := batchConfigFromFlags(cmd)
		if cfg.InputDir == "" || cfg.OutputDir == "" {
			return fmt.Errorf("both --input and --output are required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		summary, err := batch.NewRunner(cfg).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("processed %d, failed %d, written %d, from cache %d\n",
			summary.Processed, summary.Failed, summary.Written, summary.FromCache)
		return nil
	},
}

func init() {
	batchCmd.Flags().String("input", "", "input directory")
	batchCmd.Flags().String("output", "", "output directory")
	batchCmd.Flags().String("glob", "*.pdf", "glob matching input base names")
	batchCmd.Flags().Int("workers", 4, "concurrent document workers")
	batchCmd.Flags().Duration("timeout", 0, "per-document time budget (0 = none)")
	batchCmd.Flags().String("cache-db", "", "path of an optional SQLite result cache")
	batchCmd.Flags().Bool("validate", false, "validate emitted records against the output schema")
	batchCmd.Flags().Int("max-pages", 0, "refuse documents with more pages than this (0 = no cap)")

	viper.BindPFlag("input", batchCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", batchCmd.Flags().Lookup("output"))
	viper.BindEnv("input", "CONTOUR_INPUT", "INPUT_DIR")
	viper.BindEnv("output", "CONTOUR_OUTPUT", "OUTPUT_DIR")

	// watch shares the batch flag set
	watchCmd.Flags().AddFlagSet(batchCmd.Flags())
}

// batchConfigFromFlags builds a runner config from a command carrying the
// shared batch flag set (batch and watch use the same flags).
func batchConfigFromFlags(cmd *cobra.Command) batch.Config {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = viper.GetString("input")
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("output")
	}

	cfg := batch.DefaultConfig(input, output)
	cfg.Glob, _ = cmd.Flags().GetString("glob")
	cfg.Workers, _ = cmd.Flags().GetInt("workers")
	cfg.PerDocTimeout, _ = cmd.Flags().GetDuration("timeout")
	cfg.CacheDB, _ = cmd.Flags().GetString("cache-db")
	cfg.ValidateOutput, _ = cmd.Flags().GetBool("validate")
	cfg.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	cfg.Logger = logger
	if cfg.PerDocTimeout < 0 {
		cfg.PerDocTimeout = time.Duration(0)
	}
	return cfg
}
