package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/invreport/internal/aggregate"
)

// Literal section headers. Consumers locate sections by these lines.
const (
	headerExecutiveSummary = "EXECUTIVE SUMMARY"
	headerOffline          = "Enheter med status OFFLINE"
	headerWarning          = "Enheter med status WARNING"
	headerLowUptime        = "Enheter med mindre än %s dagars uptime"
	headerDownInterfaces   = "Routerinterface nere / avvikande"
	headerLowestCapacity   = "Routrar – lägst total portkapacitet"
	headerVLANs            = "VLAN i användning"
	headerSiteVLANs        = "VLAN per plats"
	headerSwitchUsage      = "Switchport-användning per switch"
	headerOverview         = "Översikt per lokation"
	headerRecommendations  = "REKOMMENDATIONER"
)

const (
	unknownCompany   = "Okänt företag"
	unknownTimestamp = "okänt"
	noEntries        = "  Inga\n"
)

func renderHeader(res *aggregate.Result, _ layout) string {
	var sb strings.Builder

	company := res.Company
	if company == "" {
		company = unknownCompany
	}
	updated := res.LastUpdated
	if updated == "" {
		updated = unknownTimestamp
	}

	sb.WriteString(rule("="))
	sb.WriteString(fmt.Sprintf("NÄTVERKSRAPPORT – %s\n", company))
	sb.WriteString(rule("="))
	sb.WriteString(fmt.Sprintf("Data uppdaterad:   %s\n", updated))
	sb.WriteString(fmt.Sprintf("Antal lokationer:  %d\n", len(res.Sites)))
	sb.WriteString(fmt.Sprintf("Antal enheter:     %d (%.0f%% online)\n", res.TotalDevices, res.OnlinePercent()))
	sb.WriteString(fmt.Sprintf("Switchportar:      %d/%d (%.0f%% använda)\n", res.PortsUsed, res.PortsTotal, res.PortUsagePercent()))
	sb.WriteString("\n")

	return sb.String()
}

func renderExecutiveSummary(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerExecutiveSummary))

	sb.WriteString(fmt.Sprintf("Totalt: %d   Online: %d   Offline: %d   Warning: %d\n",
		res.TotalDevices, res.Online, res.Offline, res.Warning))
	sb.WriteString(fmt.Sprintf("Routerinterface nere: %d   Switchar med hög portanvändning: %d\n\n",
		len(res.DownInterfaces), len(res.HighPortUsage)))

	sb.WriteString("Offline-enheter:\n")
	if len(res.Summary.Offline) == 0 {
		sb.WriteString(noEntries)
	}
	for _, label := range res.Summary.Offline {
		sb.WriteString(fmt.Sprintf("  - %s\n", label))
	}

	sb.WriteString("Lägst uptime:\n")
	if len(res.Summary.LowUptime) == 0 {
		sb.WriteString(noEntries)
	}
	for _, e := range res.Summary.LowUptime {
		sb.WriteString(fmt.Sprintf("  - %s (%s): %d dagar\n", e.Hostname, e.Site, days(e.UptimeDays)))
	}

	sb.WriteString("Högst portanvändning:\n")
	if len(res.Summary.HighPortUsage) == 0 {
		sb.WriteString(noEntries)
	}
	for _, sw := range res.Summary.HighPortUsage {
		sb.WriteString(fmt.Sprintf("  - %s (%s): %.1f%%\n", sw.Hostname, sw.Site, sw.Percent))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderSites(res *aggregate.Result, _ layout) string {
	var sb strings.Builder

	for _, site := range res.Sites {
		sb.WriteString(fmt.Sprintf("%s — %d enheter (Online: %d, Offline: %d, Warning: %d, %.0f%% online)\n",
			site.Site, site.Total, site.Online, site.Offline, site.Warning, site.OnlinePercent()))
		sb.WriteString(rule("-"))
		if site.City != "" || site.Contact != "" {
			sb.WriteString(fmt.Sprintf("  Stad: %s   Kontakt: %s\n", orDash(site.City), orDash(site.Contact)))
		}

		if len(site.Devices) == 0 {
			sb.WriteString("  Inga enheter\n\n")
			continue
		}

		sb.WriteString(fmt.Sprintf("  %-24s %-12s %-10s %s\n", "Hostname", "Typ", "Status", "Uptime"))
		for _, d := range site.Devices {
			sb.WriteString(fmt.Sprintf("  %-24s %-12s %-10s %d dagar\n",
				d.Hostname, d.TypeLabel(), d.StatusLabel(), days(d.UptimeDays)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderOfflineDevices(res *aggregate.Result, _ layout) string {
	return deviceList(headerOffline, res.OfflineDevices)
}

func renderWarningDevices(res *aggregate.Result, _ layout) string {
	return deviceList(headerWarning, res.WarningDevices)
}

func deviceList(header string, labels []string) string {
	var sb strings.Builder
	sb.WriteString(title(header))

	if len(labels) == 0 {
		sb.WriteString(noEntries)
	}
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("  - %s\n", label))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderLowUptime(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(fmt.Sprintf(headerLowUptime, number(res.UptimeThresholdDays))))

	if len(res.LowUptime) == 0 {
		sb.WriteString(noEntries)
	}
	for _, e := range res.LowUptime {
		sb.WriteString(fmt.Sprintf("  %-24s %-16s %-12s %d dagar\n", e.Hostname, e.Site, e.Type, days(e.UptimeDays)))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderDownInterfaces(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerDownInterfaces))

	if len(res.DownInterfaces) == 0 {
		sb.WriteString(noEntries)
	}
	for _, e := range res.DownInterfaces {
		status := e.Status
		if status == "" {
			status = "unknown"
		}
		sb.WriteString(fmt.Sprintf("  %-16s %-24s %-12s %-10s %s Mbps\n",
			e.Site, e.Hostname, e.Interface, status, number(e.BandwidthMbps)))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderLowestCapacity(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerLowestCapacity))

	if len(res.LowestCapacity) == 0 {
		sb.WriteString(noEntries)
	}
	for _, e := range res.LowestCapacity {
		sb.WriteString(fmt.Sprintf("  %-24s %-16s %s Mbps\n", e.Hostname, e.Site, number(e.CapacityMbps)))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderVLANs(res *aggregate.Result, l layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerVLANs))

	if len(res.VLANs) == 0 {
		sb.WriteString(noEntries)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  Antal unika VLAN: %d\n", len(res.VLANs)))
	for _, line := range chunkVLANs(res.VLANs, l.vlansPerLine) {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderSiteVLANs(res *aggregate.Result, l layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerSiteVLANs))

	if len(res.SiteVLANs) == 0 {
		sb.WriteString(noEntries)
	}
	for _, s := range res.SiteVLANs {
		sb.WriteString(fmt.Sprintf("  %s (%d st):\n", s.Site, len(s.VLANs)))
		for _, line := range chunkVLANs(s.VLANs, l.vlansPerLine) {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderSwitchUsage(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerSwitchUsage))

	if len(res.Switches) == 0 {
		sb.WriteString(noEntries)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  %-24s %-16s %10s  %s\n", "Hostname", "Plats", "Portar", "Användning"))
	for _, sw := range res.Switches {
		ports := fmt.Sprintf("%d/%d", sw.Used, sw.Total)
		line := fmt.Sprintf("  %-24s %-16s %10s  %.1f%%", sw.Hostname, sw.Site, ports, sw.Percent)
		if sw.High {
			line += "  (hög)"
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderOverview(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerOverview))

	if len(res.Overview) == 0 {
		sb.WriteString(noEntries)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  %-20s %-16s %8s %8s %8s %8s %8s\n",
		"Plats", "Stad", "Enheter", "Online", "Offline", "Warning", "Online%"))
	for _, s := range res.Overview {
		sb.WriteString(fmt.Sprintf("  %-20s %-16s %8d %8d %8d %8d %7.0f%%\n",
			s.Site, orDash(s.City), s.Total, s.Online, s.Offline, s.Warning, s.OnlinePercent()))
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderRecommendations(res *aggregate.Result, _ layout) string {
	var sb strings.Builder
	sb.WriteString(title(headerRecommendations))

	for _, line := range recommendations(res) {
		sb.WriteString(fmt.Sprintf("  - %s\n", line))
	}
	sb.WriteString("\n")
	sb.WriteString(rule("="))

	return sb.String()
}

// recommendations returns the recommendation lines for res. Each issue
// category adds a line when it has entries; without issues a single
// all-clear line is used. The two general lines are always present.
func recommendations(res *aggregate.Result) []string {
	var lines []string

	if n := len(res.OfflineDevices); n > 0 {
		lines = append(lines, fmt.Sprintf("Åtgärda %d enhet(er) med status OFFLINE.", n))
	}
	if n := len(res.LowUptime); n > 0 {
		lines = append(lines, fmt.Sprintf("Undersök %d enhet(er) med uptime under %s dagar (oväntade omstarter).",
			n, number(res.UptimeThresholdDays)))
	}
	if n := len(res.HighPortUsage); n > 0 {
		lines = append(lines, fmt.Sprintf("Planera utökning för %d switch(ar) med minst %s%% portanvändning.",
			n, number(res.HighPortUsagePercent)))
	}
	if n := len(res.DownInterfaces); n > 0 {
		lines = append(lines, fmt.Sprintf("Felsök %d routerinterface som är nere eller avvikande.", n))
	}
	if !res.HasIssues() {
		lines = append(lines, "Inga omedelbara åtgärder krävs.")
	}

	return append(lines,
		"Håll firmware och konfigurationsbackuper uppdaterade på alla enheter.",
		"Granska inventeringen regelbundet och håll kontaktuppgifter aktuella.",
	)
}

// title returns a section header followed by a separator line.
func title(header string) string {
	return header + "\n" + rule("-")
}

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth) + "\n"
}

// days truncates an uptime to whole days.
func days(uptime float64) int {
	return int(uptime)
}

// number formats a float without trailing zeros.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// chunkVLANs joins ids with ", ", at most perLine identifiers per line.
func chunkVLANs(ids []int, perLine int) []string {
	if perLine <= 0 {
		perLine = DefaultVLANsPerLine
	}

	var lines []string
	for start := 0; start < len(ids); start += perLine {
		end := min(start+perLine, len(ids))
		parts := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			parts = append(parts, strconv.Itoa(id))
		}
		lines = append(lines, strings.Join(parts, ", "))
	}
	return lines
}
