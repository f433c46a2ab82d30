// Package main provides the entry point for the invreport CLI.
//
// invreport turns a network inventory JSON document into a fixed-layout
// health report in Swedish: device status per site, low uptime, router
// interfaces that are down, VLAN usage, switch port utilization and
// recommendations.
//
// Usage:
//
//	invreport generate inventory.json
//	invreport generate --json -o report.json inventory.json
//	cat inventory.json | invreport generate -
//
// See --help for all available options.
package main

// main is the entry point for invreport.
func main() {
	Execute()
}
