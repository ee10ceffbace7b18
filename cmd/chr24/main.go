package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"markerscan/stats/config"
	"markerscan/stats/scanner"
)

type options struct {
	envPath     string // dotenv 文件
	onMalformed string // 覆盖 MALFORMED_POLICY
	sex         bool   // 输出性别推断
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "chr24 <marker-file>",
		Short: "Count empty chromosome-24 markers in a genotype text file.",
		Long: "chr24 scans a whitespace-delimited marker file, skipping '#' comment " +
			"lines, and prints empty/total for the records on chromosome 24.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.envPath, "env", ".env", "dotenv file with scan settings (missing file is ignored)")
	cmd.Flags().StringVar(&opts.onMalformed, "on-malformed", "", "abort or skip short data lines (default from MALFORMED_POLICY, else abort)")
	cmd.Flags().BoolVar(&opts.sex, "sex", false, "log the sex inferred from the empty count")
	return cmd
}

func run(cmd *cobra.Command, path string, opts options) error {
	cfg, err := config.Load(opts.envPath)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}
	if opts.onMalformed != "" {
		cfg.MalformedPolicy = opts.onMalformed
	}
	scanOpts, err := cfg.ScanOptions()
	if err != nil {
		return err
	}
	logger := newRunLogger(cmd.ErrOrStderr(), path)
	scanOpts.Logger = logger

	counts, err := scanner.ScanFile(path, scanOpts)
	if err != nil {
		return err
	}
	if counts.Skipped > 0 {
		logger.Printf("skipped %d malformed lines", counts.Skipped)
	}
	if opts.sex {
		logger.Printf("sex %s (%d empty, threshold %d)", scanner.InferSex(counts, cfg.MaleThreshold), counts.Empty, cfg.MaleThreshold)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), counts)
	return err
}

// newRunLogger tags every line of one run with a run ID and the scanned path.
func newRunLogger(w io.Writer, path string) *log.Logger {
	prefix := fmt.Sprintf("[chr24 %s] %s: ", uuid.New().String()[:8], path)
	return log.New(w, prefix, log.LstdFlags)
}

func main() {
	log.SetPrefix("[chr24] ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
