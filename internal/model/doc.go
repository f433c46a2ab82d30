// Package model defines the typed view over a network inventory document.
//
// This package contains the following main types:
//   - Inventory: The root document with company metadata and locations
//   - Location: A site grouping an ordered list of devices
//   - Device: A switch, router or other managed entity
//   - Status and DeviceType: Closed enumerations with an explicit unknown variant
//
// Design decision: Input documents are free-form JSON produced by several
// tools, so the parser never rejects a document because an optional field is
// missing or malformed. Every optional field has an entry in the default
// policy table (see defaults.go) and anomalies are reported as Warnings
// instead of errors.
package model
