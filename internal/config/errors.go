package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no inventory file is specified.
	ErrNoInput = errors.New("no input specified: provide an inventory JSON file or \"-\" for stdin")

	// ErrDuplicateStdin is returned when "-" appears more than once in the inputs.
	ErrDuplicateStdin = errors.New("standard input (\"-\") can be given only once")

	// ErrInvalidUptimeThreshold is returned when the uptime threshold is not positive.
	// With a zero threshold the low-uptime list could never have entries.
	ErrInvalidUptimeThreshold = errors.New("invalid uptime threshold: must be positive")

	// ErrInvalidPortUsageThreshold is returned when the port usage threshold is not positive.
	ErrInvalidPortUsageThreshold = errors.New("invalid port usage threshold: must be positive")

	// ErrInvalidVLANsPerLine is returned when the VLAN line width is not positive.
	ErrInvalidVLANsPerLine = errors.New("invalid VLANs per line: must be positive")

	// ErrInvalidListSize is returned when a summary or capacity list size is not positive.
	ErrInvalidListSize = errors.New("invalid list size: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingOutputs is returned when both --output and --output-dir are set.
	ErrConflictingOutputs = errors.New("conflicting outputs: --output and --output-dir cannot be used together")

	// ErrOutputWithMultipleInputs is returned when --output is combined with
	// more than one input file.
	ErrOutputWithMultipleInputs = errors.New("--output accepts a single input: use --output-dir for several inventories")

	// ErrInvalidFormat is returned when the config file names an unknown format.
	ErrInvalidFormat = errors.New("invalid format: must be text, json or markdown")
)
