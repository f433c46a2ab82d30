package report

import (
	"io"
	"strings"

	"github.com/nao1215/invreport/internal/aggregate"
)

// DefaultVLANsPerLine is the default number of VLAN identifiers per line.
const DefaultVLANsPerLine = 20

// ruleWidth is the width of separator lines.
const ruleWidth = 80

// TextWriter outputs the fixed-layout text report.
//
// Design decision: The section headers and their order are a contract with
// consumers that split the report by header line, so the layout is not
// configurable beyond the VLAN line width.
type TextWriter struct {
	baseWriter

	// vlansPerLine is the number of VLAN identifiers per output line.
	vlansPerLine int
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVLANsPerLine sets how many VLAN identifiers are printed per line.
// Non-positive values are ignored.
func WithVLANsPerLine(n int) TextWriterOption {
	return func(w *TextWriter) {
		if n > 0 {
			w.vlansPerLine = n
		}
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter:   newBaseWriter(output),
		vlansPerLine: DefaultVLANsPerLine,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full text report.
func (w *TextWriter) Write(res *aggregate.Result) (int, error) {
	return io.WriteString(w.output, Render(res, w.vlansPerLine))
}

// layout carries the rendering settings passed to every section.
type layout struct {
	vlansPerLine int
}

// section renders one block of the text report.
type section func(res *aggregate.Result, l layout) string

// sections lists the report blocks in output order.
var sections = []section{
	renderHeader,
	renderExecutiveSummary,
	renderSites,
	renderOfflineDevices,
	renderWarningDevices,
	renderLowUptime,
	renderDownInterfaces,
	renderLowestCapacity,
	renderVLANs,
	renderSiteVLANs,
	renderSwitchUsage,
	renderOverview,
	renderRecommendations,
}

// Render assembles the complete text report for res.
func Render(res *aggregate.Result, vlansPerLine int) string {
	if vlansPerLine <= 0 {
		vlansPerLine = DefaultVLANsPerLine
	}
	l := layout{vlansPerLine: vlansPerLine}

	var sb strings.Builder
	for _, render := range sections {
		sb.WriteString(render(res, l))
	}
	return sb.String()
}
