package config

// File represents the structure of the .invreport configuration file.
// Every field is optional. Pointer fields distinguish "not set" from an
// explicit zero, which Validate then rejects.
type File struct {
	// UptimeThresholdDays overrides the low-uptime bound in days.
	UptimeThresholdDays *float64 `yaml:"uptimeThresholdDays,omitempty"`

	// HighPortUsagePercent overrides the switch utilization bound.
	HighPortUsagePercent *float64 `yaml:"highPortUsagePercent,omitempty"`

	// VLANsPerLine overrides the VLAN list line width.
	VLANsPerLine *int `yaml:"vlansPerLine,omitempty"`

	// CapacityListSize overrides the length of the lowest-capacity list.
	CapacityListSize *int `yaml:"capacityListSize,omitempty"`

	// Summary holds the executive summary list sizes.
	Summary SummaryFile `yaml:"summary,omitempty"`

	// BatchSize overrides the number of concurrently processed files.
	BatchSize *int `yaml:"batchSize,omitempty"`

	// Format selects the default output format: text, json or markdown.
	Format string `yaml:"format,omitempty"`

	// OutputDir sets a default output directory for reports.
	OutputDir string `yaml:"outputDir,omitempty"`
}

// SummaryFile holds the executive summary list sizes of the config file.
type SummaryFile struct {
	Offline       *int `yaml:"offline,omitempty"`
	LowUptime     *int `yaml:"lowUptime,omitempty"`
	HighPortUsage *int `yaml:"highPortUsage,omitempty"`
}

// Apply copies every field set in the file onto cfg.
// Fields that are not set leave cfg unchanged.
func (f *File) Apply(cfg *Config) error {
	setFloat(&cfg.UptimeThresholdDays, f.UptimeThresholdDays)
	setFloat(&cfg.HighPortUsagePercent, f.HighPortUsagePercent)
	setInt(&cfg.VLANsPerLine, f.VLANsPerLine)
	setInt(&cfg.CapacityListSize, f.CapacityListSize)
	setInt(&cfg.SummaryOffline, f.Summary.Offline)
	setInt(&cfg.SummaryLowUptime, f.Summary.LowUptime)
	setInt(&cfg.SummaryHighPortUsage, f.Summary.HighPortUsage)
	setInt(&cfg.BatchSize, f.BatchSize)

	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}

	switch f.Format {
	case "", "text":
	case "json":
		cfg.JSONReport = true
		cfg.MarkdownReport = false
	case "markdown":
		cfg.MarkdownReport = true
		cfg.JSONReport = false
	default:
		return ErrInvalidFormat
	}

	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
