// Package aggregate turns an inventory document into the statistics shown in
// an inventory health report.
//
// Aggregate walks every location and device exactly once and returns a
// Result holding all counters, lists and VLAN sets, already ordered the way
// the report presents them. The function is pure: the same document and
// options always give an identical Result, and the input is never modified.
package aggregate
