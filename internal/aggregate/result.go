package aggregate

import "github.com/nao1215/invreport/internal/model"

// Result holds everything derived from one inventory document.
// Every list is non-nil and already in report order.
type Result struct {
	Company     string `json:"company"`
	LastUpdated string `json:"last_updated"`

	// Thresholds used to build the result, kept for section headers and
	// recommendations.
	UptimeThresholdDays  float64 `json:"uptime_threshold_days"`
	HighPortUsagePercent float64 `json:"high_port_usage_percent"`

	TotalDevices int `json:"total_devices"`
	Online       int `json:"online"`
	Offline      int `json:"offline"`
	Warning      int `json:"warning"`

	// PortsUsed and PortsTotal sum the ports of every switch.
	PortsUsed  int `json:"ports_used"`
	PortsTotal int `json:"ports_total"`

	// Sites holds one summary per location in document order.
	Sites []SiteSummary `json:"sites"`

	// OfflineDevices and WarningDevices hold "hostname (site)" entries in
	// document order.
	OfflineDevices []string `json:"offline_devices"`
	WarningDevices []string `json:"warning_devices"`

	// LowUptime is sorted by ascending uptime.
	LowUptime []UptimeEntry `json:"low_uptime"`

	// DownInterfaces is sorted by site, hostname and interface name.
	DownInterfaces []InterfaceEntry `json:"down_interfaces"`

	// LowestCapacity holds the routers with the least operational capacity.
	LowestCapacity []CapacityEntry `json:"lowest_capacity"`

	// VLANs is the sorted set of VLAN identifiers over all devices.
	VLANs []int `json:"vlans"`

	// SiteVLANs holds the sorted VLAN set of every site that has VLANs,
	// in order of first appearance.
	SiteVLANs []SiteVLANs `json:"site_vlans"`

	// Switches is sorted by descending usage, then descending used ports.
	Switches []SwitchEntry `json:"switches"`

	// HighPortUsage holds the flagged switches in the order of Switches.
	HighPortUsage []SwitchEntry `json:"high_port_usage"`

	// Overview holds the site summaries sorted by site name.
	Overview []SiteSummary `json:"overview"`

	Summary Summary `json:"summary"`
}

// OnlinePercent returns the share of online devices over all devices.
func (r *Result) OnlinePercent() float64 {
	return percent(r.Online, r.TotalDevices)
}

// PortUsagePercent returns the share of used switch ports over all switches.
func (r *Result) PortUsagePercent() float64 {
	return percent(r.PortsUsed, r.PortsTotal)
}

// HasIssues reports whether any recommendation trigger fires.
func (r *Result) HasIssues() bool {
	return len(r.OfflineDevices) > 0 ||
		len(r.LowUptime) > 0 ||
		len(r.HighPortUsage) > 0 ||
		len(r.DownInterfaces) > 0
}

// SiteSummary holds the device counts of one location.
type SiteSummary struct {
	Site    string `json:"site"`
	City    string `json:"city,omitempty"`
	Contact string `json:"contact,omitempty"`

	Total   int `json:"total"`
	Online  int `json:"online"`
	Offline int `json:"offline"`
	Warning int `json:"warning"`

	// Devices is a copy of the location's devices ordered for display:
	// offline, warning, online, then unknown, keeping document order
	// within each status.
	Devices []model.Device `json:"devices,omitempty"`
}

// OnlinePercent returns the share of online devices at the site.
func (s SiteSummary) OnlinePercent() float64 {
	return percent(s.Online, s.Total)
}

// UptimeEntry is a device below the uptime threshold.
type UptimeEntry struct {
	UptimeDays float64 `json:"uptime_days"`
	Hostname   string  `json:"hostname"`
	Site       string  `json:"site"`
	Type       string  `json:"type"`
}

// InterfaceEntry is a router interface that is not up.
type InterfaceEntry struct {
	Site          string  `json:"site"`
	Hostname      string  `json:"hostname"`
	Interface     string  `json:"interface"`
	Status        string  `json:"status"`
	BandwidthMbps float64 `json:"bandwidth_mbps"`
}

// CapacityEntry is the operational capacity of a router: the bandwidth sum
// of its interfaces that are up.
type CapacityEntry struct {
	CapacityMbps float64 `json:"capacity_mbps"`
	Hostname     string  `json:"hostname"`
	Site         string  `json:"site"`
}

// SwitchEntry is the port usage of one switch.
type SwitchEntry struct {
	Hostname string  `json:"hostname"`
	Site     string  `json:"site"`
	Used     int     `json:"used"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
	High     bool    `json:"high"`
}

// SiteVLANs is the VLAN set of one site.
type SiteVLANs struct {
	Site  string `json:"site"`
	VLANs []int  `json:"vlans"`
}

// Summary holds the short lists shown in the executive summary.
type Summary struct {
	Offline       []string      `json:"offline"`
	LowUptime     []UptimeEntry `json:"low_uptime"`
	HighPortUsage []SwitchEntry `json:"high_port_usage"`
}

// percent returns part/whole*100, or 0 when whole is zero.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
