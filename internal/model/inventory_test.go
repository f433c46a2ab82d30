package model

import "testing"

// TestPortsPercent tests switch port usage ratios.
func TestPortsPercent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		ports    Ports
		expected float64
	}{
		{"half used", Ports{Used: 50, Total: 100}, 50},
		{"threshold boundary", Ports{Used: 80, Total: 100}, 80},
		{"zero total", Ports{Used: 5, Total: 0}, 0},
		{"empty", Ports{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.ports.Percent(); got != tc.expected {
				t.Errorf("Percent() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestInterfaceIsUp tests interface state matching.
func TestInterfaceIsUp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   string
		expected bool
	}{
		{"up", true},
		{"UP", true},
		{"online", true},
		{"down", false},
		{"", false},
		{"degraded", false},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			t.Parallel()
			i := Interface{Status: tc.status}
			if got := i.IsUp(); got != tc.expected {
				t.Errorf("IsUp() for %q = %v, expected %v", tc.status, got, tc.expected)
			}
		})
	}
}

// TestWarningString tests warning formatting.
func TestWarningString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		warning  Warning
		expected string
	}{
		{"document level", Warning{Message: "no locations"}, "no locations"},
		{"site level", Warning{Site: "HQ", Message: "no devices"}, "HQ: no devices"},
		{"device level", Warning{Site: "HQ", Hostname: "sw1", Message: "bad vlan"}, "sw1 (HQ): bad vlan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.warning.String(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestInventoryDeviceCount tests counting across locations.
func TestInventoryDeviceCount(t *testing.T) {
	t.Parallel()

	inv := &Inventory{
		Locations: []Location{
			{Site: "A", Devices: []Device{{Hostname: "a1"}, {Hostname: "a2"}}},
			{Site: "B"},
			{Site: "C", Devices: []Device{{Hostname: "c1"}}},
		},
	}
	if got := inv.DeviceCount(); got != 3 {
		t.Errorf("expected 3 devices, got %d", got)
	}
}
