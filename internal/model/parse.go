package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the input is not syntactically valid JSON.
// This is the only condition under which Parse fails.
var ErrInvalidJSON = errors.New("inventory is not valid JSON")

// Parse reads an inventory document.
//
// Design decision: We read the document through gjson instead of decoding
// into tagged structs because producers disagree on field types (VLANs as
// numbers or strings, uptime as float or string). Walking the parsed tree
// lets us apply the default policy field by field and skip bad values
// without rejecting the whole document.
//
// A missing or non-array "locations" field yields an empty inventory and
// a warning.
func Parse(data []byte) (*Inventory, []Warning, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, ErrInvalidJSON
	}

	p := &parser{}
	inv := p.inventory(gjson.ParseBytes(data))
	return inv, p.warnings, nil
}

// parser collects warnings while walking a document.
type parser struct {
	warnings []Warning
}

func (p *parser) warn(site, hostname, format string, args ...any) {
	p.warnings = append(p.warnings, Warning{
		Site:     site,
		Hostname: hostname,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (p *parser) inventory(root gjson.Result) *Inventory {
	inv := &Inventory{
		Company:     stringOr(root.Get("company"), defaultPolicy.Company),
		LastUpdated: stringOr(root.Get("generated_at"), ""),
		Locations:   []Location{},
	}
	if inv.LastUpdated == "" {
		inv.LastUpdated = stringOr(root.Get("last_updated"), defaultPolicy.LastUpdated)
	}

	locations := root.Get("locations")
	if !locations.IsArray() {
		p.warn("", "", "document has no locations list")
		return inv
	}

	for i, l := range locations.Array() {
		if !l.IsObject() {
			p.warn("", "", "location #%d is not an object, skipped", i+1)
			continue
		}
		inv.Locations = append(inv.Locations, p.location(l, i))
	}
	return inv
}

func (p *parser) location(l gjson.Result, index int) Location {
	loc := Location{
		Site:    stringOr(l.Get("site"), ""),
		City:    stringOr(l.Get("city"), defaultPolicy.City),
		Contact: stringOr(l.Get("contact"), defaultPolicy.Contact),
		Devices: []Device{},
	}
	if loc.Site == "" {
		p.warn("", "", "location #%d has no site name", index+1)
	}

	devices := l.Get("devices")
	if !devices.IsArray() {
		return loc
	}
	for _, d := range devices.Array() {
		if !d.IsObject() {
			p.warn(loc.Site, "", "device entry is not an object, skipped")
			continue
		}
		loc.Devices = append(loc.Devices, p.device(d, loc.Site))
	}
	return loc
}

func (p *parser) device(d gjson.Result, site string) Device {
	dev := Device{
		Hostname:   stringOr(d.Get("hostname"), defaultPolicy.Hostname),
		RawType:    d.Get("type").String(),
		RawStatus:  d.Get("status").String(),
		UptimeDays: floatOr(d.Get("uptime_days"), defaultPolicy.UptimeDays),
	}
	dev.Type = ParseDeviceType(dev.RawType)
	dev.Status = ParseStatus(dev.RawStatus)

	if dev.Hostname == "" {
		p.warn(site, "", "device without hostname")
	}

	if ports := d.Get("ports"); ports.IsObject() {
		dev.Ports = Ports{
			Used:  p.count(ports.Get("used"), defaultPolicy.PortsUsed, site, dev.Hostname, "ports.used"),
			Total: p.count(ports.Get("total"), defaultPolicy.PortsTotal, site, dev.Hostname, "ports.total"),
		}
	}

	if ifaces := d.Get("interfaces"); ifaces.IsArray() {
		for _, iface := range ifaces.Array() {
			if !iface.IsObject() {
				p.warn(site, dev.Hostname, "interface entry is not an object, skipped")
				continue
			}
			dev.Interfaces = append(dev.Interfaces, Interface{
				Name:          stringOr(iface.Get("name"), defaultPolicy.InterfaceName),
				Status:        iface.Get("status").String(),
				BandwidthMbps: floatOr(iface.Get("bandwidth_mbps"), defaultPolicy.Bandwidth),
			})
		}
	}

	if vlans := d.Get("vlans"); vlans.IsArray() {
		for _, v := range vlans.Array() {
			id, ok := coerceVLAN(v)
			if !ok {
				p.warn(site, dev.Hostname, "VLAN value %s is not an integer, skipped", v.Raw)
				continue
			}
			dev.VLANs = append(dev.VLANs, id)
		}
	}

	return dev
}

// stringOr returns the string value of r, or def when r is missing or null.
func stringOr(r gjson.Result, def string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return def
	}
	return r.String()
}

// floatOr returns r as a number. Numeric strings are accepted; any other
// value yields def.
func floatOr(r gjson.Result, def float64) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// count reads an integer counter such as a port count. Values outside the
// 32-bit range fall back to def with a warning.
func (p *parser) count(r gjson.Result, def int, site, hostname, field string) int {
	f := floatOr(r, float64(def))
	n, ok := toInt(f)
	if !ok {
		p.warn(site, hostname, "%s value %s is out of range, using %d", field, r.Raw, def)
		return def
	}
	return n
}

// coerceVLAN converts a VLAN entry to an integer. Numbers are truncated
// toward zero and strings must hold a base-10 integer. Booleans, nulls,
// objects, arrays and values outside the 32-bit range are rejected.
func coerceVLAN(r gjson.Result) (int, bool) {
	switch r.Type {
	case gjson.Number:
		return toInt(r.Num)
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.Str), 10, 32)
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// toInt truncates f toward zero when the result fits in an int32.
func toInt(f float64) (int, bool) {
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
