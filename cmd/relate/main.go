package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"markerscan/stats/config"
	"markerscan/stats/model"
	"markerscan/stats/scanner"
)

type options struct {
	envPath     string // dotenv 文件
	onMalformed string // 覆盖 MALFORMED_POLICY
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "relate <first-file> <second-file>",
		Short: "Compare two genotype files for a parent-child relationship.",
		Long: "relate walks two aligned marker files allele by allele over the " +
			"autosomes, prints the match percentage of the first file to the second, " +
			"the sex called for each from chromosome 24, and the inferred relationship.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVar(&opts.envPath, "env", ".env", "dotenv file with scan settings (missing file is ignored)")
	cmd.Flags().StringVar(&opts.onMalformed, "on-malformed", "", "abort or skip short data rows (default from MALFORMED_POLICY, else abort)")
	return cmd
}

func run(cmd *cobra.Command, first, second string, opts options) error {
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
	logger := newRunLogger(cmd.ErrOrStderr(), first, second)
	scanOpts.Logger = logger

	cmp, err := scanner.CompareFiles(first, second, scanOpts)
	if err != nil {
		return err
	}
	logger.Printf("compared %d marker pairs, skipped %d", cmp.Pairs, cmp.Skipped)

	return writeReport(cmd.OutOrStdout(), name(first), name(second), cmp, cfg.MaleThreshold)
}

func writeReport(w io.Writer, first, second string, cmp model.Comparison, threshold int) error {
	rule := strings.Repeat("-", 61)
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s has a %.2f%% match to %s\n", first, cmp.MatchPct(), second)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s: %s\t%s: %s\n",
		first, scanner.InferSex(cmp.FirstChr24, threshold),
		second, scanner.InferSex(cmp.SecondChr24, threshold))
	fmt.Fprintln(&b, rule)
	switch cmp.Relation() {
	case model.RelationChild:
		fmt.Fprintf(&b, "%s is the child of %s\n", first, second)
	case model.RelationGrandchild:
		fmt.Fprintf(&b, "%s is the grandchild of %s\n", first, second)
	default:
		fmt.Fprintln(&b, "There is not a parent-child relationship among these files.")
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func name(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// newRunLogger tags every line of one run with a run ID and both paths.
func newRunLogger(w io.Writer, first, second string) *log.Logger {
	prefix := fmt.Sprintf("[relate %s] %s~%s: ", uuid.New().String()[:8], first, second)
	return log.New(w, prefix, log.LstdFlags)
}

func main() {
	log.SetPrefix("[relate] ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
