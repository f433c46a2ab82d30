package aggregate

// Default thresholds and list sizes.
const (
	DefaultUptimeThresholdDays  = 30
	DefaultHighPortUsagePercent = 80
	DefaultCapacityListSize     = 5
	DefaultSummaryOffline       = 3
	DefaultSummaryLowUptime     = 5
	DefaultSummaryHighPortUsage = 3
)

// Options tunes the aggregation.
type Options struct {
	// UptimeThresholdDays is the exclusive upper bound for low uptime.
	// Devices with 0 < uptime < threshold are listed.
	UptimeThresholdDays float64

	// HighPortUsagePercent is the inclusive lower bound for flagging a
	// switch as highly utilized.
	HighPortUsagePercent float64

	// CapacityListSize is how many routers the lowest-capacity list keeps.
	CapacityListSize int

	// Summary list sizes for the executive summary.
	SummaryOffline       int
	SummaryLowUptime     int
	SummaryHighPortUsage int
}

// DefaultOptions returns Options with the default thresholds.
func DefaultOptions() Options {
	return Options{
		UptimeThresholdDays:  DefaultUptimeThresholdDays,
		HighPortUsagePercent: DefaultHighPortUsagePercent,
		CapacityListSize:     DefaultCapacityListSize,
		SummaryOffline:       DefaultSummaryOffline,
		SummaryLowUptime:     DefaultSummaryLowUptime,
		SummaryHighPortUsage: DefaultSummaryHighPortUsage,
	}
}
