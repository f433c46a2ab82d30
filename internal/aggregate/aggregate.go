package aggregate

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/nao1215/invreport/internal/model"
)

// Aggregate computes all report statistics for inv in a single pass.
//
// Locations are visited in document order. Within a location, devices are
// visited in status order (offline, warning, online, unknown) using a stable
// sorted copy, so ties in the sorted lists follow that order. The offline
// and warning lists still follow the document, since every entry in each
// list has the same status rank.
//
// A nil inventory yields an all-zero Result.
func Aggregate(inv *model.Inventory, opts Options) *Result {
	a := newAggregator(opts)
	if inv != nil {
		a.res.Company = inv.Company
		a.res.LastUpdated = inv.LastUpdated
		for _, loc := range inv.Locations {
			a.addLocation(loc)
		}
	}
	return a.finish()
}

// aggregator holds the running state of one Aggregate call.
type aggregator struct {
	opts Options
	res  *Result

	vlans     map[int]struct{}
	siteVLANs map[string]map[int]struct{}
	siteOrder []string

	capacity     []CapacityEntry
	capacityByID map[capacityKey]int
}

type capacityKey struct {
	hostname string
	site     string
}

func newAggregator(opts Options) *aggregator {
	return &aggregator{
		opts: opts,
		res: &Result{
			UptimeThresholdDays:  opts.UptimeThresholdDays,
			HighPortUsagePercent: opts.HighPortUsagePercent,
			Sites:                []SiteSummary{},
			OfflineDevices:       []string{},
			WarningDevices:       []string{},
			LowUptime:            []UptimeEntry{},
			DownInterfaces:       []InterfaceEntry{},
			Switches:             []SwitchEntry{},
			HighPortUsage:        []SwitchEntry{},
		},
		vlans:        make(map[int]struct{}),
		siteVLANs:    make(map[string]map[int]struct{}),
		capacityByID: make(map[capacityKey]int),
	}
}

func (a *aggregator) addLocation(loc model.Location) {
	site := SiteSummary{
		Site:    loc.Site,
		City:    loc.City,
		Contact: loc.Contact,
		Total:   len(loc.Devices),
		Devices: displayOrder(loc.Devices),
	}

	for _, dev := range site.Devices {
		switch dev.Status {
		case model.StatusOnline:
			site.Online++
		case model.StatusOffline:
			site.Offline++
		case model.StatusWarning:
			site.Warning++
		case model.StatusUnknown:
		}
		a.addDevice(loc.Site, dev)
	}

	a.res.Online += site.Online
	a.res.Offline += site.Offline
	a.res.Warning += site.Warning
	a.res.Sites = append(a.res.Sites, site)
}

func (a *aggregator) addDevice(site string, dev model.Device) {
	a.res.TotalDevices++

	label := fmt.Sprintf("%s (%s)", dev.Hostname, site)
	switch dev.Status {
	case model.StatusOffline:
		a.res.OfflineDevices = append(a.res.OfflineDevices, label)
	case model.StatusWarning:
		a.res.WarningDevices = append(a.res.WarningDevices, label)
	case model.StatusOnline, model.StatusUnknown:
	}

	// Zero uptime means the device reported no data.
	if dev.UptimeDays > 0 && dev.UptimeDays < a.opts.UptimeThresholdDays {
		a.res.LowUptime = append(a.res.LowUptime, UptimeEntry{
			UptimeDays: dev.UptimeDays,
			Hostname:   dev.Hostname,
			Site:       site,
			Type:       dev.TypeLabel(),
		})
	}

	switch dev.Type {
	case model.DeviceSwitch:
		a.addSwitch(site, dev)
	case model.DeviceRouter:
		a.addRouter(site, dev)
	case model.DeviceOther:
	}

	for _, id := range dev.VLANs {
		a.addVLAN(site, id)
	}
}

func (a *aggregator) addSwitch(site string, dev model.Device) {
	a.res.PortsUsed += dev.Ports.Used
	a.res.PortsTotal += dev.Ports.Total

	pct := dev.Ports.Percent()
	entry := SwitchEntry{
		Hostname: dev.Hostname,
		Site:     site,
		Used:     dev.Ports.Used,
		Total:    dev.Ports.Total,
		Percent:  pct,
		High:     dev.Ports.Total > 0 && pct >= a.opts.HighPortUsagePercent,
	}
	a.res.Switches = append(a.res.Switches, entry)
}

func (a *aggregator) addRouter(site string, dev model.Device) {
	var capacity float64
	for _, iface := range dev.Interfaces {
		if iface.IsUp() {
			capacity += iface.BandwidthMbps
			continue
		}
		a.res.DownInterfaces = append(a.res.DownInterfaces, InterfaceEntry{
			Site:          site,
			Hostname:      dev.Hostname,
			Interface:     iface.Name,
			Status:        iface.Status,
			BandwidthMbps: iface.BandwidthMbps,
		})
	}

	// The same router listed twice keeps its highest capacity.
	key := capacityKey{hostname: dev.Hostname, site: site}
	if i, ok := a.capacityByID[key]; ok {
		a.capacity[i].CapacityMbps = max(a.capacity[i].CapacityMbps, capacity)
		return
	}
	a.capacityByID[key] = len(a.capacity)
	a.capacity = append(a.capacity, CapacityEntry{
		CapacityMbps: capacity,
		Hostname:     dev.Hostname,
		Site:         site,
	})
}

func (a *aggregator) addVLAN(site string, id int) {
	a.vlans[id] = struct{}{}

	set, ok := a.siteVLANs[site]
	if !ok {
		set = make(map[int]struct{})
		a.siteVLANs[site] = set
		a.siteOrder = append(a.siteOrder, site)
	}
	set[id] = struct{}{}
}

// finish derives the ordered views once the traversal is complete.
func (a *aggregator) finish() *Result {
	res := a.res

	slices.SortStableFunc(res.LowUptime, func(x, y UptimeEntry) int {
		return cmp.Compare(x.UptimeDays, y.UptimeDays)
	})

	slices.SortStableFunc(res.DownInterfaces, func(x, y InterfaceEntry) int {
		return cmp.Or(
			strings.Compare(x.Site, y.Site),
			strings.Compare(x.Hostname, y.Hostname),
			strings.Compare(x.Interface, y.Interface),
		)
	})

	slices.SortStableFunc(a.capacity, func(x, y CapacityEntry) int {
		return cmp.Or(
			cmp.Compare(x.CapacityMbps, y.CapacityMbps),
			strings.Compare(x.Hostname, y.Hostname),
			strings.Compare(x.Site, y.Site),
		)
	})
	res.LowestCapacity = head(a.capacity, a.opts.CapacityListSize)

	slices.SortStableFunc(res.Switches, func(x, y SwitchEntry) int {
		return cmp.Or(
			cmp.Compare(y.Percent, x.Percent),
			cmp.Compare(y.Used, x.Used),
		)
	})
	for _, sw := range res.Switches {
		if sw.High {
			res.HighPortUsage = append(res.HighPortUsage, sw)
		}
	}

	res.VLANs = sortedSet(a.vlans)
	res.SiteVLANs = make([]SiteVLANs, 0, len(a.siteOrder))
	for _, site := range a.siteOrder {
		res.SiteVLANs = append(res.SiteVLANs, SiteVLANs{
			Site:  site,
			VLANs: sortedSet(a.siteVLANs[site]),
		})
	}

	res.Overview = slices.Clone(res.Sites)
	slices.SortStableFunc(res.Overview, func(x, y SiteSummary) int {
		return strings.Compare(x.Site, y.Site)
	})

	res.Summary = Summary{
		Offline:       head(res.OfflineDevices, a.opts.SummaryOffline),
		LowUptime:     head(res.LowUptime, a.opts.SummaryLowUptime),
		HighPortUsage: head(res.HighPortUsage, a.opts.SummaryHighPortUsage),
	}

	return res
}

// displayOrder returns a copy of devices stably sorted by status rank.
func displayOrder(devices []model.Device) []model.Device {
	sorted := slices.Clone(devices)
	if sorted == nil {
		sorted = []model.Device{}
	}
	slices.SortStableFunc(sorted, func(x, y model.Device) int {
		return cmp.Compare(x.Status.DisplayRank(), y.Status.DisplayRank())
	})
	return sorted
}

// head returns a copy of the first n elements of s. A negative n keeps all.
func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		s = s[:n]
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func sortedSet(set map[int]struct{}) []int {
	ids := slices.Sorted(maps.Keys(set))
	if ids == nil {
		ids = []int{}
	}
	return ids
}
