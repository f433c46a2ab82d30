package pipeline

import (
	"context"
	"log/slog"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the job as
// filled in by previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the job to fill in.
	// Returns an error if the step cannot produce its part of the job.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Failed steps are logged and their errors
// are recorded in the job, but subsequent steps still execute.
//
// Design decision: The default is to stop on error because every step
// depends on the output of the previous one. The option exists for custom
// pipelines with independent steps.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because every step here is short. A cancelled batch stops at the
// next step boundary.
//
// Returns the first error encountered if continueOnError is false,
// or nil if all steps complete (errors are recorded in the job).
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"source", job.Source,
				"reason", ctx.Err(),
			)
			job.Err = ctx.Err()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"source", job.Source,
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", job.Source,
				"error", err,
			)

			job.Err = err

			if !p.continueOnError {
				return err
			}
		} else {
			p.logger.Debug("step completed",
				"step", step.Name(),
				"source", job.Source,
			)
		}

		job.PerformedSteps = append(job.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
