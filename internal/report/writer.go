package report

import (
	"io"

	"github.com/nao1215/invreport/internal/aggregate"
)

// Writer defines the interface for report output.
// Implementations write an aggregation result in various formats.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(res *aggregate.Result) (int, error)
}

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Extension returns the file extension used for reports in this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Options holds settings shared by all writers.
type Options struct {
	// VLANsPerLine is the number of VLAN identifiers per line in lists.
	VLANsPerLine int

	// Version is embedded in JSON output.
	Version string
}

// NewWriter creates a Writer for the given format.
// Unknown formats fall back to text.
func NewWriter(format Format, output io.Writer, opts Options) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(opts.Version))
	case FormatMarkdown:
		return NewMarkdownWriter(output, WithMarkdownVLANsPerLine(opts.VLANsPerLine))
	default:
		return NewTextWriter(output, WithVLANsPerLine(opts.VLANsPerLine))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
