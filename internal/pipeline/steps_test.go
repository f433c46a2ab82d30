package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/invreport/internal/aggregate"
	"github.com/nao1215/invreport/internal/model"
	"github.com/nao1215/invreport/internal/report"
)

const testInventory = `{
  "company": "Acme",
  "last_updated": "2024-06-01",
  "locations": [{
    "site": "HQ",
    "contact": "Anna Berg",
    "devices": [
      {"hostname": "sw1", "type": "switch", "status": "online", "uptime_days": 100,
       "ports": {"used": 10, "total": 24}, "vlans": [10, "abc"]},
      {"hostname": "rtr1", "type": "router", "status": "offline", "uptime_days": 3}
    ]
  }]
}`

// writeInventory writes an inventory document to a temporary file.
func writeInventory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write inventory: %v", err)
	}
	return path
}

// TestReadStep tests reading from files and stdin.
func TestReadStep(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		job := NewJob(writeInventory(t, testInventory))
		if err := NewReadStep().Do(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(job.Raw) != testInventory {
			t.Error("unexpected raw content")
		}
	})

	t.Run("reads stdin for dash source", func(t *testing.T) {
		t.Parallel()

		job := NewJob(StdinSource)
		step := NewReadStep(WithStdin(strings.NewReader(`{"company": "X"}`)))
		if err := step.Do(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(job.Raw) != `{"company": "X"}` {
			t.Errorf("unexpected raw content %q", job.Raw)
		}
	})

	t.Run("missing file returns wrapped error", func(t *testing.T) {
		t.Parallel()

		job := NewJob(filepath.Join(t.TempDir(), "missing.json"))
		err := NewReadStep().Do(context.Background(), job)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// TestParseStep tests parsing and warning logging.
func TestParseStep(t *testing.T) {
	t.Parallel()

	t.Run("parses and logs warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

		job := NewJob("inventory.json")
		job.Raw = []byte(testInventory)
		if err := NewParseStep(WithParseLogger(logger)).Do(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Inventory == nil || job.Inventory.DeviceCount() != 2 {
			t.Fatalf("unexpected inventory %+v", job.Inventory)
		}
		if len(job.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", job.Warnings)
		}
		if !strings.Contains(buf.String(), "inventory warning") {
			t.Errorf("expected warning in log output: %s", buf.String())
		}
	})

	t.Run("invalid JSON fails", func(t *testing.T) {
		t.Parallel()

		job := NewJob("broken.json")
		job.Raw = []byte(`{"locations": [`)
		err := NewParseStep().Do(context.Background(), job)
		if !errors.Is(err, model.ErrInvalidJSON) {
			t.Errorf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("requires raw input", func(t *testing.T) {
		t.Parallel()

		err := NewParseStep().Do(context.Background(), NewJob("x.json"))
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("expected ErrMissingInput, got %v", err)
		}
	})
}

// TestAggregateAndRenderSteps tests the steps that require earlier output.
func TestAggregateAndRenderSteps(t *testing.T) {
	t.Parallel()

	t.Run("aggregate requires inventory", func(t *testing.T) {
		t.Parallel()

		err := NewAggregateStep(aggregate.DefaultOptions()).Do(context.Background(), NewJob("x.json"))
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("expected ErrMissingInput, got %v", err)
		}
	})

	t.Run("render requires result", func(t *testing.T) {
		t.Parallel()

		err := NewRenderStep(report.FormatText, report.Options{}).Do(context.Background(), NewJob("x.json"))
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("expected ErrMissingInput, got %v", err)
		}
	})

	t.Run("aggregate applies thresholds", func(t *testing.T) {
		t.Parallel()

		inv, _, err := model.Parse([]byte(testInventory))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job := NewJob("x.json")
		job.Inventory = inv

		opts := aggregate.DefaultOptions()
		opts.UptimeThresholdDays = 2
		if err := NewAggregateStep(opts).Do(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(job.Result.LowUptime) != 0 {
			t.Errorf("expected no low uptime entries below 2 days, got %v", job.Result.LowUptime)
		}
	})
}

// TestDefaultPipeline tests the complete default pipeline.
func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	t.Run("has steps in order", func(t *testing.T) {
		t.Parallel()

		p := DefaultPipeline(nil)
		if got := p.StepNames(); !slices.Equal(got, []string{"read", "parse", "aggregate", "render"}) {
			t.Errorf("unexpected steps %v", got)
		}
	})

	t.Run("renders text report from file", func(t *testing.T) {
		t.Parallel()

		job := NewJob(writeInventory(t, testInventory))
		p := DefaultPipeline([]Option{WithLogger(slog.New(slog.DiscardHandler))})
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := string(job.Output)
		if !strings.Contains(output, "NÄTVERKSRAPPORT – Acme") {
			t.Errorf("unexpected report:\n%s", output)
		}
		if !strings.Contains(output, "  - rtr1 (HQ)") {
			t.Errorf("expected offline router in report:\n%s", output)
		}
		if job.Digest != report.Digest(job.Output) {
			t.Error("digest does not match output")
		}
	})

	t.Run("renders JSON from stdin", func(t *testing.T) {
		t.Parallel()

		job := NewJob(StdinSource)
		p := DefaultPipeline(
			[]Option{WithLogger(slog.New(slog.DiscardHandler))},
			WithPipelineStdin(strings.NewReader(testInventory)),
			WithPipelineFormat(report.FormatJSON),
			WithPipelineReportOptions(report.Options{Version: "test"}),
		)
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(job.Output), `"total_devices": 2`) {
			t.Errorf("unexpected JSON:\n%s", job.Output)
		}
	})

	t.Run("same input gives same digest", func(t *testing.T) {
		t.Parallel()

		path := writeInventory(t, testInventory)
		digests := make([]string, 2)
		for i := range digests {
			job := NewJob(path)
			p := DefaultPipeline(nil, WithPipelineAggregateOptions(aggregate.DefaultOptions()))
			if err := p.Execute(context.Background(), job); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			digests[i] = job.Digest
		}
		if digests[0] != digests[1] {
			t.Error("expected identical digests")
		}
	})
}
