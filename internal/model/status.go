package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Status is the operational state reported for a device.
//
// Design decision: Status values arrive as free-form strings. We map the
// three known values onto constants and keep everything else as
// StatusUnknown, so unrecognized values still count toward totals without
// landing in a category-specific bucket.
type Status int

const (
	// StatusUnknown covers missing, empty and unrecognized status values.
	StatusUnknown Status = iota

	// StatusOnline indicates a device that is up and reachable.
	StatusOnline

	// StatusOffline indicates a device that is down.
	StatusOffline

	// StatusWarning indicates a device that is up but degraded.
	StatusWarning
)

// ParseStatus maps a raw status string onto a Status.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStatus(s string) Status {
	switch fold(s) {
	case "online":
		return StatusOnline
	case "offline":
		return StatusOffline
	case "warning":
		return StatusWarning
	default:
		return StatusUnknown
	}
}

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// DisplayRank returns the position of the status in per-site device tables.
// Offline devices are listed first, then warnings, then online devices,
// and unknown last.
func (s Status) DisplayRank() int {
	switch s {
	case StatusOffline:
		return 0
	case StatusWarning:
		return 1
	case StatusOnline:
		return 2
	default:
		return 3
	}
}

// DeviceType is the kind of a device.
type DeviceType int

const (
	// DeviceOther is any device that is neither a switch nor a router.
	DeviceOther DeviceType = iota

	// DeviceSwitch is a switch with physical ports.
	DeviceSwitch

	// DeviceRouter is a router with interfaces.
	DeviceRouter
)

// ParseDeviceType maps a raw type string onto a DeviceType.
func ParseDeviceType(s string) DeviceType {
	switch fold(s) {
	case "switch":
		return DeviceSwitch
	case "router":
		return DeviceRouter
	default:
		return DeviceOther
	}
}

// String returns the lowercase name of the device type.
func (t DeviceType) String() string {
	switch t {
	case DeviceSwitch:
		return "switch"
	case DeviceRouter:
		return "router"
	default:
		return "other"
	}
}

// fold normalizes s for case-insensitive comparison.
// A Caser is stateful, so a new one is created for every call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
