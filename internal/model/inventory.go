package model

import "fmt"

// Inventory is the root of an inventory document.
type Inventory struct {
	// Company is the owner of the inventory. Empty when not provided.
	Company string `json:"company,omitempty"`

	// LastUpdated is the data timestamp of the document, taken from
	// "generated_at" and falling back to "last_updated".
	LastUpdated string `json:"last_updated,omitempty"`

	// Locations holds the sites in document order.
	Locations []Location `json:"locations"`
}

// DeviceCount returns the number of devices across all locations.
func (inv *Inventory) DeviceCount() int {
	n := 0
	for _, loc := range inv.Locations {
		n += len(loc.Devices)
	}
	return n
}

// Location is a physical or logical site.
type Location struct {
	// Site is the grouping key of the location. Uniqueness is not enforced.
	Site string `json:"site"`

	City    string `json:"city,omitempty"`
	Contact string `json:"contact,omitempty"`

	// Devices holds the devices in document order.
	Devices []Device `json:"devices"`
}

// Device is a single managed entity at a location.
type Device struct {
	Hostname string `json:"hostname"`

	// Type is the parsed device kind; RawType keeps the original string.
	Type    DeviceType `json:"-"`
	RawType string     `json:"type"`

	// Status is the parsed status; RawStatus keeps the original string.
	Status    Status `json:"-"`
	RawStatus string `json:"status"`

	// UptimeDays may be fractional. Zero means no data.
	UptimeDays float64 `json:"uptime_days"`

	// Ports is only meaningful for switches.
	Ports Ports `json:"ports"`

	// Interfaces is only meaningful for routers.
	Interfaces []Interface `json:"interfaces,omitempty"`

	// VLANs holds the VLAN identifiers that could be read as integers,
	// in document order and possibly with duplicates.
	VLANs []int `json:"vlans,omitempty"`
}

// StatusLabel returns the status as shown in reports. Unrecognized values
// keep their original text in lowercase; a missing status is "unknown".
func (d Device) StatusLabel() string {
	if d.Status != StatusUnknown || d.RawStatus == "" {
		return d.Status.String()
	}
	return fold(d.RawStatus)
}

// TypeLabel returns the type as shown in reports. Unrecognized types keep
// their original spelling.
func (d Device) TypeLabel() string {
	if d.Type != DeviceOther || d.RawType == "" {
		return d.Type.String()
	}
	return d.RawType
}

// Ports is the physical port usage of a switch.
type Ports struct {
	Used  int `json:"used"`
	Total int `json:"total"`
}

// Percent returns Used/Total as a percentage, or 0 when Total is zero.
func (p Ports) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Used) / float64(p.Total) * 100
}

// Interface is a router interface.
type Interface struct {
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	BandwidthMbps float64 `json:"bandwidth_mbps"`
}

// IsUp reports whether the interface status is "up" or "online".
func (i Interface) IsUp() bool {
	switch fold(i.Status) {
	case "up", "online":
		return true
	default:
		return false
	}
}

// Warning describes an anomaly found while reading a document.
// Warnings never change computed results.
type Warning struct {
	Site     string
	Hostname string
	Message  string
}

// String returns a one-line description of the warning.
func (w Warning) String() string {
	switch {
	case w.Site != "" && w.Hostname != "":
		return fmt.Sprintf("%s (%s): %s", w.Hostname, w.Site, w.Message)
	case w.Site != "":
		return fmt.Sprintf("%s: %s", w.Site, w.Message)
	default:
		return w.Message
	}
}
