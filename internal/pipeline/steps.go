package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/invreport/internal/aggregate"
	"github.com/nao1215/invreport/internal/model"
	"github.com/nao1215/invreport/internal/report"
)

// ErrMissingInput is returned when a step runs before the step that
// produces its input.
var ErrMissingInput = errors.New("step input missing: earlier step did not run")

// ReadStep loads the raw inventory document.
//
// Design decision: Reading is a step of its own so the parse, aggregate and
// render steps stay free of I/O and can be tested on byte slices.
type ReadStep struct {
	// stdin is read when the job source is StdinSource.
	stdin io.Reader
}

// ReadStepOption configures a ReadStep.
type ReadStepOption func(*ReadStep)

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) ReadStepOption {
	return func(s *ReadStep) {
		s.stdin = r
	}
}

// NewReadStep creates a new read step.
func NewReadStep(opts ...ReadStepOption) *ReadStep {
	s := &ReadStep{stdin: os.Stdin}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ReadStep) Name() string {
	return "read"
}

// Do reads the job source into job.Raw.
func (s *ReadStep) Do(_ context.Context, job *Job) error {
	var (
		data []byte
		err  error
	)

	if job.Source == StdinSource {
		data, err = io.ReadAll(s.stdin)
	} else {
		data, err = os.ReadFile(job.Source) //nolint:gosec // User-provided inventory path is intentional
	}
	if err != nil {
		return fmt.Errorf("failed to read inventory %s: %w", job.Source, err)
	}

	job.Raw = data
	return nil
}

// ParseStep parses job.Raw into an inventory and logs parser warnings.
type ParseStep struct {
	logger *slog.Logger
}

// ParseStepOption configures a ParseStep.
type ParseStepOption func(*ParseStep)

// WithParseLogger sets a custom logger for the parse step.
func WithParseLogger(logger *slog.Logger) ParseStepOption {
	return func(s *ParseStep) {
		s.logger = logger
	}
}

// NewParseStep creates a new parse step.
func NewParseStep(opts ...ParseStepOption) *ParseStep {
	s := &ParseStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ParseStep) Name() string {
	return "parse"
}

// Do parses the document.
// Parser warnings never fail the step; they are logged and kept on the job.
func (s *ParseStep) Do(_ context.Context, job *Job) error {
	if job.Raw == nil {
		return ErrMissingInput
	}

	inv, warnings, err := model.Parse(job.Raw)
	if err != nil {
		return fmt.Errorf("failed to parse inventory %s: %w", job.Source, err)
	}

	for _, w := range warnings {
		s.logger.Warn("inventory warning",
			"source", job.Source,
			"site", w.Site,
			"hostname", w.Hostname,
			"message", w.Message,
		)
	}
	for _, loc := range inv.Locations {
		s.logger.Debug("location parsed",
			"source", job.Source,
			"site", loc.Site,
			"city", loc.City,
			"contact", loc.Contact,
			"devices", len(loc.Devices),
		)
	}

	job.Inventory = inv
	job.Warnings = warnings
	return nil
}

// AggregateStep computes the report statistics.
type AggregateStep struct {
	opts aggregate.Options
}

// NewAggregateStep creates a new aggregate step with the given thresholds.
func NewAggregateStep(opts aggregate.Options) *AggregateStep {
	return &AggregateStep{opts: opts}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do aggregates job.Inventory into job.Result.
func (s *AggregateStep) Do(_ context.Context, job *Job) error {
	if job.Inventory == nil {
		return ErrMissingInput
	}

	job.Result = aggregate.Aggregate(job.Inventory, s.opts)
	return nil
}

// RenderStep renders job.Result in the configured format.
type RenderStep struct {
	format report.Format
	opts   report.Options
}

// NewRenderStep creates a new render step.
func NewRenderStep(format report.Format, opts report.Options) *RenderStep {
	return &RenderStep{format: format, opts: opts}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders the report into job.Output and records its digest.
func (s *RenderStep) Do(_ context.Context, job *Job) error {
	if job.Result == nil {
		return ErrMissingInput
	}

	var buf bytes.Buffer
	if _, err := report.NewWriter(s.format, &buf, s.opts).Write(job.Result); err != nil {
		return fmt.Errorf("failed to render report for %s: %w", job.Source, err)
	}

	job.Output = buf.Bytes()
	job.Digest = report.Digest(job.Output)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Stdin is read for the "-" source.
	Stdin io.Reader

	// Aggregate holds the thresholds and list sizes.
	Aggregate aggregate.Options

	// Format is the output format.
	Format report.Format

	// Report holds the writer settings.
	Report report.Options
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineStdin sets the reader used for the "-" source.
func WithPipelineStdin(r io.Reader) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Stdin = r
	}
}

// WithPipelineAggregateOptions sets the aggregation thresholds.
func WithPipelineAggregateOptions(opts aggregate.Options) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Aggregate = opts
	}
}

// WithPipelineFormat sets the output format.
func WithPipelineFormat(format report.Format) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Format = format
	}
}

// WithPipelineReportOptions sets the writer settings.
func WithPipelineReportOptions(opts report.Options) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Report = opts
	}
}

// DefaultPipeline creates a pipeline with the read, parse, aggregate and
// render steps configured.
//
// The first parameter accepts pipeline options (WithLogger, etc).
// The variadic parameter accepts pipeline config options (WithPipelineFormat, etc).
// The pipeline logger is passed on to the parse step.
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		Stdin:     os.Stdin,
		Aggregate: aggregate.DefaultOptions(),
		Format:    report.FormatText,
		Report:    report.Options{VLANsPerLine: report.DefaultVLANsPerLine},
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddSteps(
		NewReadStep(WithStdin(cfg.Stdin)),
		NewParseStep(WithParseLogger(p.logger)),
		NewAggregateStep(cfg.Aggregate),
		NewRenderStep(cfg.Format, cfg.Report),
	)

	return p
}
