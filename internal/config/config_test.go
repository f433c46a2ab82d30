package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/invreport/internal/report"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// This test ensures that defaults are documented through tests and that changes
// to defaults are intentional (tests will fail if defaults change unexpectedly).
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default UptimeThresholdDays is 30", func(t *testing.T) {
		t.Parallel()
		if cfg.UptimeThresholdDays != 30 {
			t.Errorf("expected UptimeThresholdDays to be 30, got %v", cfg.UptimeThresholdDays)
		}
	})

	t.Run("default HighPortUsagePercent is 80", func(t *testing.T) {
		t.Parallel()
		if cfg.HighPortUsagePercent != 80 {
			t.Errorf("expected HighPortUsagePercent to be 80, got %v", cfg.HighPortUsagePercent)
		}
	})

	t.Run("default VLANsPerLine is 20", func(t *testing.T) {
		t.Parallel()
		if cfg.VLANsPerLine != 20 {
			t.Errorf("expected VLANsPerLine to be 20, got %d", cfg.VLANsPerLine)
		}
	})

	t.Run("default list sizes", func(t *testing.T) {
		t.Parallel()
		if cfg.CapacityListSize != 5 || cfg.SummaryOffline != 3 ||
			cfg.SummaryLowUptime != 5 || cfg.SummaryHighPortUsage != 3 {
			t.Errorf("unexpected list sizes: %+v", cfg)
		}
	})

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 4 {
			t.Errorf("expected BatchSize to be 4, got %d", cfg.BatchSize)
		}
	})

	t.Run("default format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format() != report.FormatText {
			t.Errorf("expected text format, got %s", cfg.Format())
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	// Tests can modify specific fields to test validation rules.
	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Inputs = []string{"inventory.json"}
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}},
		{
			name:   "multiple inputs is valid",
			modify: func(c *Config) { c.Inputs = []string{"a.json", "b.json"} },
		},
		{
			name:   "multiple inputs with output dir is valid",
			modify: func(c *Config) { c.Inputs = []string{"a.json", "b.json"}; c.OutputDir = "out" },
		},
		{name: "nil inputs", modify: func(c *Config) { c.Inputs = nil }, want: ErrNoInput},
		{name: "stdin twice", modify: func(c *Config) { c.Inputs = []string{"-", "a.json", "-"} }, want: ErrDuplicateStdin},
		{name: "zero uptime threshold", modify: func(c *Config) { c.UptimeThresholdDays = 0 }, want: ErrInvalidUptimeThreshold},
		{name: "negative port usage threshold", modify: func(c *Config) { c.HighPortUsagePercent = -1 }, want: ErrInvalidPortUsageThreshold},
		{name: "zero VLANs per line", modify: func(c *Config) { c.VLANsPerLine = 0 }, want: ErrInvalidVLANsPerLine},
		{name: "zero capacity list", modify: func(c *Config) { c.CapacityListSize = 0 }, want: ErrInvalidListSize},
		{name: "zero summary list", modify: func(c *Config) { c.SummaryLowUptime = 0 }, want: ErrInvalidListSize},
		{name: "zero batch size", modify: func(c *Config) { c.BatchSize = 0 }, want: ErrInvalidBatchSize},
		{
			name:   "json and markdown",
			modify: func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			want:   ErrConflictingReportFormats,
		},
		{
			name:   "output and output dir",
			modify: func(c *Config) { c.ReportFile = "r.txt"; c.OutputDir = "out" },
			want:   ErrConflictingOutputs,
		},
		{
			name:   "output with several inputs",
			modify: func(c *Config) { c.ReportFile = "r.txt"; c.Inputs = []string{"a.json", "b.json"} },
			want:   ErrOutputWithMultipleInputs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestConfigFormat tests report format selection.
func TestConfigFormat(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.JSONReport = true
	if cfg.Format() != report.FormatJSON {
		t.Errorf("expected json, got %s", cfg.Format())
	}

	cfg = NewConfig()
	cfg.MarkdownReport = true
	if cfg.Format() != report.FormatMarkdown {
		t.Errorf("expected markdown, got %s", cfg.Format())
	}
}

// TestConfigOptions tests the mapping onto aggregation and writer settings.
func TestConfigOptions(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.UptimeThresholdDays = 14
	cfg.SummaryHighPortUsage = 7
	cfg.VLANsPerLine = 10

	agg := cfg.AggregateOptions()
	if agg.UptimeThresholdDays != 14 || agg.SummaryHighPortUsage != 7 {
		t.Errorf("unexpected aggregate options: %+v", agg)
	}
	if agg.HighPortUsagePercent != DefaultHighPortUsagePercent {
		t.Errorf("expected default port usage threshold, got %v", agg.HighPortUsagePercent)
	}

	ro := cfg.ReportOptions("v1.0.0")
	if ro.VLANsPerLine != 10 || ro.Version != "v1.0.0" {
		t.Errorf("unexpected report options: %+v", ro)
	}
}

// TestFileApply tests merging a config file onto the defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("only set fields override", func(t *testing.T) {
		t.Parallel()

		threshold := 7.0
		offline := 10
		f := &File{
			UptimeThresholdDays: &threshold,
			Summary:             SummaryFile{Offline: &offline},
			OutputDir:           "reports",
		}

		cfg := NewConfig()
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UptimeThresholdDays != 7 {
			t.Errorf("expected threshold 7, got %v", cfg.UptimeThresholdDays)
		}
		if cfg.SummaryOffline != 10 {
			t.Errorf("expected summary offline 10, got %d", cfg.SummaryOffline)
		}
		if cfg.OutputDir != "reports" {
			t.Errorf("expected output dir, got %q", cfg.OutputDir)
		}
		if cfg.HighPortUsagePercent != DefaultHighPortUsagePercent || cfg.BatchSize != DefaultBatchSize {
			t.Error("unset fields must keep their defaults")
		}
	})

	t.Run("explicit zero is kept for validation", func(t *testing.T) {
		t.Parallel()

		zero := 0
		f := &File{VLANsPerLine: &zero}
		cfg := NewConfig()
		cfg.Inputs = []string{"a.json"}
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(cfg.Validate(), ErrInvalidVLANsPerLine) {
			t.Error("expected ErrInvalidVLANsPerLine")
		}
	})

	t.Run("format selection", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			format string
			want   report.Format
		}{
			{"", report.FormatText},
			{"text", report.FormatText},
			{"json", report.FormatJSON},
			{"markdown", report.FormatMarkdown},
		}
		for _, tt := range tests {
			cfg := NewConfig()
			if err := (&File{Format: tt.format}).Apply(cfg); err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.format, err)
			}
			if cfg.Format() != tt.want {
				t.Errorf("format %q: expected %s, got %s", tt.format, tt.want, cfg.Format())
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := (&File{Format: "pdf"}).Apply(NewConfig())
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.invreport")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".invreport")
		content := `uptimeThresholdDays: 14
highPortUsagePercent: 90.5
vlansPerLine: 10
capacityListSize: 3
summary:
  offline: 5
  lowUptime: 2
batchSize: 8
format: markdown
outputDir: reports
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UptimeThresholdDays != 14 || cfg.HighPortUsagePercent != 90.5 {
			t.Errorf("unexpected thresholds: %v, %v", cfg.UptimeThresholdDays, cfg.HighPortUsagePercent)
		}
		if cfg.VLANsPerLine != 10 || cfg.CapacityListSize != 3 || cfg.BatchSize != 8 {
			t.Errorf("unexpected sizes: %+v", cfg)
		}
		if cfg.SummaryOffline != 5 || cfg.SummaryLowUptime != 2 || cfg.SummaryHighPortUsage != DefaultSummaryHighPortUsage {
			t.Errorf("unexpected summary sizes: %+v", cfg)
		}
		if !cfg.MarkdownReport || cfg.OutputDir != "reports" {
			t.Errorf("unexpected output settings: %+v", cfg)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".invreport")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("batchSize: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected directory named %q, got %q", AppName, dir)
	}
}
