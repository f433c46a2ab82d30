package model

// defaultPolicy lists the value used for every optional input field when it
// is absent from the document. Fields that hold lists (ports, interfaces,
// vlans) default to empty and need no entry.
var defaultPolicy = struct {
	Company       string
	LastUpdated   string
	City          string
	Contact       string
	Hostname      string
	UptimeDays    float64
	PortsUsed     int
	PortsTotal    int
	InterfaceName string
	Bandwidth     float64
}{
	Company:       "",
	LastUpdated:   "",
	City:          "",
	Contact:       "",
	Hostname:      "",
	UptimeDays:    0,
	PortsUsed:     0,
	PortsTotal:    0,
	InterfaceName: "",
	Bandwidth:     0,
}
