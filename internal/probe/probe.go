// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package probe provides the host facing collaborators of the hardware
// manager: interface, block device and NIC enumeration, LLDP neighbor
// discovery, SMBIOS and sysfs access.
package probe

import (
	"context"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
)

// InterfaceLister enumerates the live physical network interfaces.
type InterfaceLister interface {
	ListNetworkInterfaces() ([]registry.NetworkInterface, error)
}

// LLDPProbe collects neighbor advertisements for the named interfaces. Every
// requested name is present in the result; its record is empty when no
// neighbor answered.
type LLDPProbe interface {
	Probe(ctx context.Context, interfaces []string) (lldp.Info, error)
}

// BlockDeviceLister enumerates the disks of the host.
type BlockDeviceLister interface {
	ListBlockDevices() ([]registry.BlockDevice, error)
}

// NICLister enumerates NICs together with their driver and firmware.
type NICLister interface {
	ListNICs() ([]registry.NIC, error)
}

// SystemInfoReader reads the SMBIOS system information.
type SystemInfoReader interface {
	SystemInformation() (registry.SystemInformation, error)
}

// FS resolves sysfs links and reads small attribute files.
type FS interface {
	// RealPath returns the canonical path with every symlink resolved.
	RealPath(path string) (string, error)
	// ReadFile returns the trimmed file contents.
	ReadFile(path string) (string, error)
}
