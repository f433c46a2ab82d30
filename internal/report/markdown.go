package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/invreport/internal/aggregate"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs the report in Markdown format.
// It carries the same sections, in the same order, as the text report.
type MarkdownWriter struct {
	baseWriter

	vlansPerLine int
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownVLANsPerLine sets how many VLAN identifiers are printed per line.
func WithMarkdownVLANsPerLine(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if n > 0 {
			w.vlansPerLine = n
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter:   newBaseWriter(output),
		vlansPerLine: DefaultVLANsPerLine,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(res *aggregate.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, res)
	w.writeSummary(md, res)
	w.writeSites(md, res)
	w.writeList(md, headerOffline, res.OfflineDevices)
	w.writeList(md, headerWarning, res.WarningDevices)
	w.writeLowUptime(md, res)
	w.writeDownInterfaces(md, res)
	w.writeLowestCapacity(md, res)
	w.writeVLANs(md, res)
	w.writeSwitchUsage(md, res)
	w.writeOverview(md, res)
	w.writeRecommendations(md, res)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, res *aggregate.Result) {
	company := res.Company
	if company == "" {
		company = unknownCompany
	}
	updated := res.LastUpdated
	if updated == "" {
		updated = unknownTimestamp
	}

	md.H1("Nätverksrapport – " + company)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Egenskap", "Värde"},
		Rows: [][]string{
			{"Data uppdaterad", updated},
			{"Antal lokationer", strconv.Itoa(len(res.Sites))},
			{"Antal enheter", fmt.Sprintf("%d (%.0f%% online)", res.TotalDevices, res.OnlinePercent())},
			{"Switchportar", fmt.Sprintf("%d/%d (%.0f%% använda)", res.PortsUsed, res.PortsTotal, res.PortUsagePercent())},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, res *aggregate.Result) {
	md.H2(headerExecutiveSummary)
	md.PlainText("")

	if res.TotalDevices > 0 {
		w.writePieChart(md, res)
	}

	switch {
	case res.Offline > 0:
		md.Cautionf("%d enhet(er) har status OFFLINE.", res.Offline)
	case res.HasIssues():
		md.Warningf("Det finns %d routerinterface nere och %d switch(ar) med hög portanvändning.",
			len(res.DownInterfaces), len(res.HighPortUsage))
	default:
		md.Tip("Inga avvikelser hittades.")
	}
	md.PlainText("")

	items := make([]string, 0, len(res.Summary.Offline)+len(res.Summary.LowUptime)+len(res.Summary.HighPortUsage))
	for _, label := range res.Summary.Offline {
		items = append(items, "Offline: "+label)
	}
	for _, e := range res.Summary.LowUptime {
		items = append(items, fmt.Sprintf("Låg uptime: %s (%s), %d dagar", e.Hostname, e.Site, days(e.UptimeDays)))
	}
	for _, sw := range res.Summary.HighPortUsage {
		items = append(items, fmt.Sprintf("Hög portanvändning: %s (%s), %.1f%%", sw.Hostname, sw.Site, sw.Percent))
	}
	if len(items) > 0 {
		md.BulletList(items...)
		md.PlainText("")
	}
}

// writePieChart writes a mermaid pie chart of the device status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, res *aggregate.Result) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Enhetsstatus"),
		piechart.WithShowData(true),
	)

	if res.Online > 0 {
		chart.LabelAndIntValue("Online", uint64(res.Online))
	}
	if res.Offline > 0 {
		chart.LabelAndIntValue("Offline", uint64(res.Offline))
	}
	if res.Warning > 0 {
		chart.LabelAndIntValue("Warning", uint64(res.Warning))
	}
	if other := res.TotalDevices - res.Online - res.Offline - res.Warning; other > 0 {
		chart.LabelAndIntValue("Okänd", uint64(other))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeSites(md *markdown.Markdown, res *aggregate.Result) {
	for _, site := range res.Sites {
		md.H3(fmt.Sprintf("%s — %d enheter (Online: %d, Offline: %d, Warning: %d, %.0f%% online)",
			site.Site, site.Total, site.Online, site.Offline, site.Warning, site.OnlinePercent()))
		md.PlainText("")

		if len(site.Devices) == 0 {
			md.PlainText("Inga enheter")
			md.PlainText("")
			continue
		}

		rows := make([][]string, 0, len(site.Devices))
		for _, d := range site.Devices {
			rows = append(rows, []string{d.Hostname, d.TypeLabel(), d.StatusLabel(), strconv.Itoa(days(d.UptimeDays))})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Hostname", "Typ", "Status", "Uptime (dagar)"},
			Rows:   escapeRows(rows),
		})
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeList(md *markdown.Markdown, header string, labels []string) {
	md.H2(header)
	md.PlainText("")
	if len(labels) == 0 {
		md.PlainText("Inga")
	} else {
		md.BulletList(labels...)
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeLowUptime(md *markdown.Markdown, res *aggregate.Result) {
	rows := make([][]string, 0, len(res.LowUptime))
	for _, e := range res.LowUptime {
		rows = append(rows, []string{e.Hostname, e.Site, e.Type, strconv.Itoa(days(e.UptimeDays))})
	}
	w.writeTable(md, fmt.Sprintf(headerLowUptime, number(res.UptimeThresholdDays)),
		[]string{"Hostname", "Plats", "Typ", "Uptime (dagar)"}, rows)
}

func (w *MarkdownWriter) writeDownInterfaces(md *markdown.Markdown, res *aggregate.Result) {
	rows := make([][]string, 0, len(res.DownInterfaces))
	for _, e := range res.DownInterfaces {
		rows = append(rows, []string{e.Site, e.Hostname, e.Interface, orDash(e.Status), number(e.BandwidthMbps)})
	}
	w.writeTable(md, headerDownInterfaces,
		[]string{"Plats", "Hostname", "Interface", "Status", "Bandbredd (Mbps)"}, rows)
}

func (w *MarkdownWriter) writeLowestCapacity(md *markdown.Markdown, res *aggregate.Result) {
	rows := make([][]string, 0, len(res.LowestCapacity))
	for _, e := range res.LowestCapacity {
		rows = append(rows, []string{e.Hostname, e.Site, number(e.CapacityMbps)})
	}
	w.writeTable(md, headerLowestCapacity, []string{"Hostname", "Plats", "Kapacitet (Mbps)"}, rows)
}

func (w *MarkdownWriter) writeVLANs(md *markdown.Markdown, res *aggregate.Result) {
	md.H2(headerVLANs)
	md.PlainText("")
	if len(res.VLANs) == 0 {
		md.PlainText("Inga")
	} else {
		md.PlainTextf("Antal unika VLAN: %d", len(res.VLANs))
		md.PlainText("")
		md.BulletList(chunkVLANs(res.VLANs, w.vlansPerLine)...)
	}
	md.PlainText("")

	md.H2(headerSiteVLANs)
	md.PlainText("")
	if len(res.SiteVLANs) == 0 {
		md.PlainText("Inga")
		md.PlainText("")
		return
	}
	for _, s := range res.SiteVLANs {
		md.H3(fmt.Sprintf("%s (%d st)", s.Site, len(s.VLANs)))
		md.PlainText("")
		md.BulletList(chunkVLANs(s.VLANs, w.vlansPerLine)...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeSwitchUsage(md *markdown.Markdown, res *aggregate.Result) {
	rows := make([][]string, 0, len(res.Switches))
	for _, sw := range res.Switches {
		usage := fmt.Sprintf("%.1f%%", sw.Percent)
		if sw.High {
			usage += " (hög)"
		}
		rows = append(rows, []string{sw.Hostname, sw.Site, fmt.Sprintf("%d/%d", sw.Used, sw.Total), usage})
	}
	w.writeTable(md, headerSwitchUsage, []string{"Hostname", "Plats", "Portar", "Användning"}, rows)
}

func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, res *aggregate.Result) {
	rows := make([][]string, 0, len(res.Overview))
	for _, s := range res.Overview {
		rows = append(rows, []string{
			s.Site, orDash(s.City),
			strconv.Itoa(s.Total), strconv.Itoa(s.Online), strconv.Itoa(s.Offline), strconv.Itoa(s.Warning),
			fmt.Sprintf("%.0f%%", s.OnlinePercent()),
		})
	}
	w.writeTable(md, headerOverview,
		[]string{"Plats", "Stad", "Enheter", "Online", "Offline", "Warning", "Online%"}, rows)
}

func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, res *aggregate.Result) {
	md.H2(headerRecommendations)
	md.PlainText("")
	md.BulletList(recommendations(res)...)
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Rapporten skapad av invreport*")
}

// writeTable writes a titled table, or "Inga" when there are no rows.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, header string, columns []string, rows [][]string) {
	md.H2(header)
	md.PlainText("")
	if len(rows) == 0 {
		md.PlainText("Inga")
		md.PlainText("")
		return
	}
	md.Table(markdown.TableSet{Header: columns, Rows: escapeRows(rows)})
	md.PlainText("")
}

// cellEscaper keeps names from the inventory from breaking table rows.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func escapeRows(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = cellEscaper.Replace(cell)
		}
	}
	return rows
}
