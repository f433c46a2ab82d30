package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/nao1215/invreport/internal/config"
	invlog "github.com/nao1215/invreport/internal/log"
	"github.com/nao1215/invreport/internal/pipeline"
	"github.com/nao1215/invreport/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [inventory.json ...]",
		Aliases: []string{"gen"},
		Short:   "Generate a health report from network inventory files",
		Long: `Generate reads one or more network inventory JSON documents and writes a
health report for each of them.

Use "-" to read the inventory from standard input. Several inventories are
processed concurrently; reports are written in the order of the arguments.

Examples:
  # Text report to stdout
  invreport generate inventory.json

  # Read from standard input
  cat inventory.json | invreport generate -

  # JSON report to a file
  invreport generate --json -o report.json inventory.json

  # One Markdown report per inventory
  invreport generate --markdown --output-dir reports/ site-a.json site-b.json

  # Stricter thresholds
  invreport generate --uptime-threshold 7 --port-usage-threshold 90 inventory.json

Configuration file (.invreport) example:
  uptimeThresholdDays: 14
  summary:
    offline: 5
  format: markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerateCmd,
	}

	// Threshold flags
	cmd.Flags().Float64("uptime-threshold", config.DefaultUptimeThresholdDays,
		"List devices with uptime below this many days")
	cmd.Flags().Float64("port-usage-threshold", config.DefaultHighPortUsagePercent,
		"Flag switches at or above this port usage percentage")
	cmd.Flags().Int("vlans-per-line", config.DefaultVLANsPerLine,
		"Number of VLAN identifiers per line")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of inventories processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .invreport in current, home or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (single input only)")
	cmd.Flags().String("output-dir", "",
		"Write one report per input into this directory")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogJSON)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// getBoolFlag retrieves a bool flag from the command or the root's persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig creates a Config from defaults, the config file and the
// command flags, in that order of precedence (flags win).
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep the defaults when no file exists.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	// Only flags given on the command line override the file
	if flags.Changed("uptime-threshold") {
		if cfg.UptimeThresholdDays, err = flags.GetFloat64("uptime-threshold"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("port-usage-threshold") {
		if cfg.HighPortUsagePercent, err = flags.GetFloat64("port-usage-threshold"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("vlans-per-line") {
		if cfg.VLANsPerLine, err = flags.GetInt("vlans-per-line"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}
	// An explicit output file replaces a directory set in the config file
	if cfg.ReportFile != "" && !flags.Changed("output-dir") {
		cfg.OutputDir = ""
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.LogJSON = getBoolFlag(cmd, "log-json")
	cfg.Inputs = args

	return cfg, nil
}

// setupLogger creates a redacting structured logger based on the flags.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return invlog.NewJSONLogger(w, verbose)
	}
	return invlog.NewLogger(w, verbose)
}

// runGenerate processes every input and writes the reports.
// A failing input does not stop the others; all failures are returned together.
func runGenerate(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	logger.Debug("generating reports",
		"inputs", cfg.Inputs,
		"format", cfg.Format(),
		"batchSize", cfg.BatchSize,
	)

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(
				[]pipeline.Option{pipeline.WithLogger(logger)},
				pipeline.WithPipelineStdin(stdin),
				pipeline.WithPipelineAggregateOptions(cfg.AggregateOptions()),
				pipeline.WithPipelineFormat(cfg.Format()),
				pipeline.WithPipelineReportOptions(cfg.ReportOptions(getVersion())),
			)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	if cfg.OutputDir != "" {
		// Files are independent, so each report is written as soon as it is ready
		err := bp.ProcessBatchWithCallback(ctx, cfg.Inputs, func(job *pipeline.Job, _ int) {
			if err := writeJob(cfg, job, stdout, logger); err != nil {
				fail(err)
			}
		})
		if err != nil {
			fail(err)
		}
	} else {
		jobs, err := bp.ProcessBatch(ctx, cfg.Inputs)
		if err != nil {
			fail(err)
		}
		for _, job := range jobs {
			if job == nil {
				continue
			}
			if err := writeJob(cfg, job, stdout, logger); err != nil {
				fail(err)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d inventories failed: %w", len(errs), len(cfg.Inputs), errors.Join(errs...))
	}
	return nil
}

// writeJob writes one finished job to its destination and logs its digest.
func writeJob(cfg *config.Config, job *pipeline.Job, stdout io.Writer, logger *slog.Logger) error {
	if job.Err != nil {
		return job.Err
	}

	dest := "stdout"
	switch {
	case cfg.OutputDir != "":
		dest = filepath.Join(cfg.OutputDir, reportFileName(job.Source, cfg.Format()))
		if err := writeFile(dest, job.Output); err != nil {
			return err
		}
	case cfg.ReportFile != "":
		dest = cfg.ReportFile
		if err := writeFile(dest, job.Output); err != nil {
			return err
		}
	default:
		if _, err := stdout.Write(job.Output); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Info("report generated",
		"source", job.Source,
		"destination", dest,
		"warnings", len(job.Warnings),
		"digest", job.Digest,
	)
	return nil
}

// reportFileName derives the report file name from the input path:
// site-a.json becomes site-a.report.txt for the text format.
func reportFileName(source string, format report.Format) string {
	name := "stdin"
	if source != pipeline.StdinSource {
		base := filepath.Base(source)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return name + ".report" + format.Extension()
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports name contact persons, so only the owner may read them
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
