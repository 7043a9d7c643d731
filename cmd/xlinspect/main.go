// Package main provides the CLI entry point for xlinspect-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlinspect-go/internal/logging"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect"
)

// defaultWorkbook is the workbook inspected when no path is given.
const defaultWorkbook = "./data/Dashboard_1_1.xlsx"

var (
	engine   string
	password string
	cache    bool
	logLevel string
	seqURL   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlinspect [workbook.xlsx]",
		Short: "Survey the sheets of an Excel workbook",
		Long: `xlinspect lists the sheets of a workbook, prints the dimensions and headers
of the first sheets, previews dashboard and DAX/metric sheets, and flags the
sheets that look like data tables with date or sales columns.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&engine, "engine", "excelize", "Sheet reader: excelize or stream")
	rootCmd.Flags().StringVar(&password, "password", "", "Password for encrypted workbooks")
	rootCmd.Flags().BoolVar(&cache, "cache", false, "Load each sheet once and reuse it across passes")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&seqURL, "seq-url", "", "Also send logs to this Seq server")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := defaultWorkbook
	if len(args) == 1 {
		inputPath = args[0]
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, closeFn := logging.SetupLogger(logging.Config{
		Level:  level,
		SeqURL: seqURL,
		Output: cmd.ErrOrStderr(),
	})
	defer closeFn()

	// Parse engine
	var readEngine xlinspect.Engine
	switch engine {
	case "excelize":
		readEngine = xlinspect.EngineExcelize
	case "stream":
		readEngine = xlinspect.EngineStream
	default:
		return fmt.Errorf("invalid engine: %s (must be excelize or stream)", engine)
	}

	opts := xlinspect.DefaultOptions()
	opts.Engine = readEngine
	opts.Password = password
	opts.CacheTables = cache
	opts.Logger = logger

	if err := xlinspect.Inspect(inputPath, cmd.OutOrStdout(), opts); err != nil {
		logger.Error("inspection failed", "path", inputPath, "error", err)
		return fmt.Errorf("inspection failed: %w", err)
	}
	return nil
}
