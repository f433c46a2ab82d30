package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/invreport/internal/aggregate"
	"github.com/nao1215/invreport/internal/report"
)

// Default configuration values.
// The thresholds and list sizes match the aggregation defaults so a run
// without flags or config file produces the reference report.
const (
	// DefaultUptimeThresholdDays is the exclusive upper bound for the
	// low-uptime list. A device that restarted within the last month is
	// worth a look; older restarts are usually planned maintenance.
	DefaultUptimeThresholdDays = aggregate.DefaultUptimeThresholdDays

	// DefaultHighPortUsagePercent is the inclusive lower bound at which a
	// switch is flagged for capacity planning.
	DefaultHighPortUsagePercent = aggregate.DefaultHighPortUsagePercent

	// DefaultVLANsPerLine keeps VLAN lists within an 80-column terminal.
	DefaultVLANsPerLine = report.DefaultVLANsPerLine

	// DefaultCapacityListSize is the length of the lowest-capacity router list.
	DefaultCapacityListSize = aggregate.DefaultCapacityListSize

	// Executive summary list sizes.
	DefaultSummaryOffline       = aggregate.DefaultSummaryOffline
	DefaultSummaryLowUptime     = aggregate.DefaultSummaryLowUptime
	DefaultSummaryHighPortUsage = aggregate.DefaultSummaryHighPortUsage

	// DefaultBatchSize of 4 concurrent reports is enough to hide file I/O
	// latency. Aggregation itself is CPU-bound and fast.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "invreport"
)

// Config holds all configuration options for invreport.
// This struct is populated from defaults, then the config file, then CLI
// flags, and passed through the application rather than kept in global state.
//
// Design decision: We keep a single flat struct, the same way the flags are
// flat. The file format groups the summary sizes, but that grouping is
// resolved when the file is applied.
type Config struct {
	// UptimeThresholdDays is the exclusive upper bound for low uptime.
	// Devices with 0 < uptime < threshold are listed.
	UptimeThresholdDays float64

	// HighPortUsagePercent is the inclusive lower bound for flagging a switch.
	HighPortUsagePercent float64

	// VLANsPerLine is the number of VLAN identifiers per line in VLAN lists.
	VLANsPerLine int

	// CapacityListSize is how many routers the lowest-capacity list keeps.
	CapacityListSize int

	// SummaryOffline, SummaryLowUptime and SummaryHighPortUsage are the
	// executive summary list sizes.
	SummaryOffline       int
	SummaryLowUptime     int
	SummaryHighPortUsage int

	// BatchSize is the number of inventory files processed concurrently.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON selects the JSON log handler instead of the text handler.
	LogJSON bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .invreport in the current directory,
	// the user's home directory and the XDG config directory.
	ConfigFilePath string

	// JSONReport enables JSON output of the aggregation result.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for a single report.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// OutputDir receives one report file per input when set.
	// Files are named after the input with a ".report" suffix.
	OutputDir string

	// Inputs is the list of inventory files. "-" reads standard input.
	Inputs []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because every threshold has a non-zero default. This also
// serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		UptimeThresholdDays:  DefaultUptimeThresholdDays,
		HighPortUsagePercent: DefaultHighPortUsagePercent,
		VLANsPerLine:         DefaultVLANsPerLine,
		CapacityListSize:     DefaultCapacityListSize,
		SummaryOffline:       DefaultSummaryOffline,
		SummaryLowUptime:     DefaultSummaryLowUptime,
		SummaryHighPortUsage: DefaultSummaryHighPortUsage,
		BatchSize:            DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for invreport.
// On Linux: ~/.config/invreport
// On macOS: ~/Library/Application Support/invreport
// On Windows: %APPDATA%\invreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Format returns the selected report format.
func (c *Config) Format() report.Format {
	switch {
	case c.JSONReport:
		return report.FormatJSON
	case c.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// AggregateOptions returns the aggregation settings of c.
func (c *Config) AggregateOptions() aggregate.Options {
	return aggregate.Options{
		UptimeThresholdDays:  c.UptimeThresholdDays,
		HighPortUsagePercent: c.HighPortUsagePercent,
		CapacityListSize:     c.CapacityListSize,
		SummaryOffline:       c.SummaryOffline,
		SummaryLowUptime:     c.SummaryLowUptime,
		SummaryHighPortUsage: c.SummaryHighPortUsage,
	}
}

// ReportOptions returns the writer settings of c.
func (c *Config) ReportOptions(version string) report.Options {
	return report.Options{
		VLANsPerLine: c.VLANsPerLine,
		Version:      version,
	}
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after flags and the config file are merged.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one inventory to report on
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	// Standard input can only be consumed once
	stdin := 0
	for _, in := range c.Inputs {
		if in == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return ErrDuplicateStdin
	}

	if c.UptimeThresholdDays <= 0 {
		return ErrInvalidUptimeThreshold
	}

	if c.HighPortUsagePercent <= 0 {
		return ErrInvalidPortUsageThreshold
	}

	if c.VLANsPerLine <= 0 {
		return ErrInvalidVLANsPerLine
	}

	// A zero-length list would silently hide every entry
	if c.CapacityListSize <= 0 || c.SummaryOffline <= 0 ||
		c.SummaryLowUptime <= 0 || c.SummaryHighPortUsage <= 0 {
		return ErrInvalidListSize
	}

	// BatchSize must be positive; zero would mean no processing
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.ReportFile != "" && c.OutputDir != "" {
		return ErrConflictingOutputs
	}

	// Several reports cannot share one output file
	if c.ReportFile != "" && len(c.Inputs) > 1 {
		return ErrOutputWithMultipleInputs
	}

	return nil
}
