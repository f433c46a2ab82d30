package model

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const sampleDocument = `{
  "company": "Nordnet AB",
  "generated_at": "2024-05-01 08:00",
  "last_updated": "2024-04-30",
  "locations": [
    {
      "site": "HQ",
      "city": "Stockholm",
      "contact": "anna@example.com",
      "devices": [
        {"hostname": "sw-hq-1", "type": "Switch", "status": "ONLINE", "uptime_days": 120.5,
         "ports": {"used": 40, "total": 48}, "vlans": [10, "20", "abc", 30.7, null, true]},
        {"hostname": "rt-hq-1", "type": "router", "status": "offline", "uptime_days": 3,
         "interfaces": [
           {"name": "wan1", "status": "up", "bandwidth_mbps": 100},
           {"name": "wan2", "status": "down", "bandwidth_mbps": 50}
         ]}
      ]
    },
    {"site": "Lager", "devices": [{"hostname": "ap-1", "type": "accesspoint"}]}
  ]
}`

// TestParse tests reading a complete inventory document.
func TestParse(t *testing.T) {
	t.Parallel()

	inv, warnings, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("reads document metadata", func(t *testing.T) {
		t.Parallel()
		if inv.Company != "Nordnet AB" {
			t.Errorf("expected company Nordnet AB, got %q", inv.Company)
		}
		if inv.LastUpdated != "2024-05-01 08:00" {
			t.Errorf("expected generated_at to win, got %q", inv.LastUpdated)
		}
	})

	t.Run("keeps location and device order", func(t *testing.T) {
		t.Parallel()
		if len(inv.Locations) != 2 {
			t.Fatalf("expected 2 locations, got %d", len(inv.Locations))
		}
		if inv.Locations[0].Devices[0].Hostname != "sw-hq-1" {
			t.Errorf("unexpected first device %q", inv.Locations[0].Devices[0].Hostname)
		}
		if inv.Locations[0].City != "Stockholm" {
			t.Errorf("expected city Stockholm, got %q", inv.Locations[0].City)
		}
	})

	t.Run("parses enums case-insensitively", func(t *testing.T) {
		t.Parallel()
		sw := inv.Locations[0].Devices[0]
		if sw.Type != DeviceSwitch || sw.Status != StatusOnline {
			t.Errorf("expected online switch, got %v %v", sw.Status, sw.Type)
		}
	})

	t.Run("coerces VLAN values", func(t *testing.T) {
		t.Parallel()
		got := inv.Locations[0].Devices[0].VLANs
		if !slices.Equal(got, []int{10, 20, 30}) {
			t.Errorf("expected [10 20 30], got %v", got)
		}
	})

	t.Run("reads switch ports and router interfaces", func(t *testing.T) {
		t.Parallel()
		sw := inv.Locations[0].Devices[0]
		if sw.Ports.Used != 40 || sw.Ports.Total != 48 {
			t.Errorf("unexpected ports %+v", sw.Ports)
		}
		rt := inv.Locations[0].Devices[1]
		if len(rt.Interfaces) != 2 || rt.Interfaces[1].Name != "wan2" || rt.Interfaces[0].BandwidthMbps != 100 {
			t.Errorf("unexpected interfaces %+v", rt.Interfaces)
		}
	})

	t.Run("applies defaults to missing fields", func(t *testing.T) {
		t.Parallel()
		ap := inv.Locations[1].Devices[0]
		if ap.Status != StatusUnknown {
			t.Errorf("expected unknown status, got %v", ap.Status)
		}
		if ap.UptimeDays != 0 {
			t.Errorf("expected 0 uptime, got %v", ap.UptimeDays)
		}
		if ap.Ports != (Ports{}) || len(ap.Interfaces) != 0 || len(ap.VLANs) != 0 {
			t.Errorf("expected empty ports, interfaces and vlans, got %+v", ap)
		}
		if inv.Locations[1].City != "" || inv.Locations[1].Contact != "" {
			t.Error("expected empty city and contact")
		}
	})

	t.Run("reports dropped VLAN values", func(t *testing.T) {
		t.Parallel()
		if len(warnings) != 3 {
			t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
		}
		for _, w := range warnings {
			if w.Hostname != "sw-hq-1" || !strings.Contains(w.Message, "VLAN") {
				t.Errorf("unexpected warning %v", w)
			}
		}
	})
}

// TestParseEdgeCases tests defensive handling of incomplete documents.
func TestParseEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("invalid JSON returns ErrInvalidJSON", func(t *testing.T) {
		t.Parallel()
		_, _, err := Parse([]byte(`{"locations": [`))
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("missing locations yields empty inventory", func(t *testing.T) {
		t.Parallel()
		inv, warnings, err := Parse([]byte(`{"company": "X"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inv.Locations) != 0 {
			t.Errorf("expected no locations, got %d", len(inv.Locations))
		}
		if len(warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", warnings)
		}
	})

	t.Run("last_updated is used when generated_at is absent", func(t *testing.T) {
		t.Parallel()
		inv, _, err := Parse([]byte(`{"last_updated": "2024-01-01", "locations": []}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.LastUpdated != "2024-01-01" {
			t.Errorf("expected fallback timestamp, got %q", inv.LastUpdated)
		}
	})

	t.Run("numeric strings are accepted for uptime and ports", func(t *testing.T) {
		t.Parallel()
		doc := `{"locations": [{"site": "A", "devices": [
			{"hostname": "s", "type": "switch", "uptime_days": "12.5", "ports": {"used": "3", "total": 10}}
		]}]}`
		inv, _, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := inv.Locations[0].Devices[0]
		if d.UptimeDays != 12.5 {
			t.Errorf("expected uptime 12.5, got %v", d.UptimeDays)
		}
		if d.Ports.Used != 3 || d.Ports.Total != 10 {
			t.Errorf("unexpected ports %+v", d.Ports)
		}
	})

	t.Run("non-object entries are skipped with warnings", func(t *testing.T) {
		t.Parallel()
		doc := `{"locations": ["bad", {"site": "A", "devices": [1, {"hostname": "d"}]}]}`
		inv, warnings, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inv.Locations) != 1 || len(inv.Locations[0].Devices) != 1 {
			t.Fatalf("unexpected inventory %+v", inv)
		}
		if len(warnings) != 2 {
			t.Errorf("expected 2 warnings, got %v", warnings)
		}
	})

	t.Run("out-of-range numbers are defaulted or dropped", func(t *testing.T) {
		t.Parallel()
		doc := `{"locations": [{"site": "A", "devices": [
			{"hostname": "s", "type": "switch", "ports": {"used": 1e300, "total": 48},
			 "vlans": [1e300, -1e300, "99999999999", 10]}
		]}]}`
		inv, warnings, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := inv.Locations[0].Devices[0]
		if d.Ports.Used != 0 || d.Ports.Total != 48 {
			t.Errorf("unexpected ports %+v", d.Ports)
		}
		if !slices.Equal(d.VLANs, []int{10}) {
			t.Errorf("expected VLANs [10], got %v", d.VLANs)
		}
		if len(warnings) != 4 {
			t.Errorf("expected 4 warnings, got %v", warnings)
		}
	})
}
