// Package report renders aggregated inventory statistics.
//
// This package contains writers for different output formats:
//   - TextWriter: The fixed-layout text report (default)
//   - JSONWriter: The aggregation result as JSON for tool integration
//   - MarkdownWriter: The same sections as Markdown tables and lists
//
// Design decision: We separate report writing from aggregation (which lives
// in the aggregate package) so a new output format never touches the
// statistics. Every text section is a pure function of the aggregation
// result, and the text assembler only concatenates them in a fixed order.
package report
