package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/invreport/internal/aggregate"
)

// JSONWriter outputs the aggregation result in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is the invreport version embedded in the output.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// WithVersion sets the version string embedded in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps the aggregation result with metadata.
//
// Design decision: We wrap the result rather than adding fields to
// aggregate.Result so output-specific data stays out of the statistics.
type JSONReport struct {
	// Version is the invreport version that generated this report.
	Version string `json:"version,omitempty"`

	// OnlinePercent and PortUsagePercent are the header-level aggregates.
	OnlinePercent    float64 `json:"online_percent"`
	PortUsagePercent float64 `json:"port_usage_percent"`

	// Report is the full aggregation result.
	Report *aggregate.Result `json:"report"`
}

// Write outputs the aggregation result wrapped with metadata.
func (w *JSONWriter) Write(res *aggregate.Result) (int, error) {
	wrapped := JSONReport{
		Version:          w.version,
		OnlinePercent:    res.OnlinePercent(),
		PortUsagePercent: res.PortUsagePercent(),
		Report:           res,
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(wrapped, "", w.indentString)
	} else {
		data, err = json.Marshal(wrapped)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
