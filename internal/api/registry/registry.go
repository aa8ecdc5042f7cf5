// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package registry

// Node is the provisioning database view of a machine handed to the hardware
// manager by the step runner.
type Node struct {
	UUID       string            `json:"uuid"`
	DriverInfo map[string]string `json:"driverInfo,omitempty"`
	// Extra holds flat inventory key/value pairs such as
	// hardware/interfaces/0/switch_chassis_id.
	Extra map[string]string `json:"extra,omitempty"`
}

// Port is a provisioning database port attached to a Node.
type Port struct {
	Address string            `json:"address"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// NetworkInterface represents a live network interface on a server.
type NetworkInterface struct {
	Name          string `json:"name"`
	MACAddress    string `json:"macAddress"`
	CarrierStatus string `json:"carrierStatus,omitempty"`
}
