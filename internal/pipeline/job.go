package pipeline

import (
	"github.com/nao1215/invreport/internal/aggregate"
	"github.com/nao1215/invreport/internal/model"
)

// StdinSource is the Source value that reads the inventory from standard input.
const StdinSource = "-"

// Job carries one inventory file through the pipeline.
// Each step reads the fields filled by earlier steps and adds its own.
type Job struct {
	// Source is the inventory file path, or StdinSource.
	Source string

	// Raw is the unparsed document.
	Raw []byte

	// Inventory is the parsed document.
	Inventory *model.Inventory

	// Warnings collects non-fatal parser findings.
	Warnings []model.Warning

	// Result is the aggregation of Inventory.
	Result *aggregate.Result

	// Output is the rendered report.
	Output []byte

	// Digest is the SHA3-256 hex digest of Output.
	Digest string

	// PerformedSteps lists the names of the steps that ran, in order.
	PerformedSteps []string

	// Err is the error that stopped the pipeline, if any.
	Err error
}

// NewJob creates a Job for the given source.
func NewJob(source string) *Job {
	return &Job{
		Source:         source,
		PerformedSteps: make([]string, 0),
	}
}
