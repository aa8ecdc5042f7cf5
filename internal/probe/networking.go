// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
)

// HostInterfaces lists the physical network interfaces of the host.
type HostInterfaces struct {
	sysClassNet string
	interfaces  func() ([]net.Interface, error)
}

// NewHostInterfaces returns an InterfaceLister backed by sysPath/class/net.
func NewHostInterfaces(sysPath string) *HostInterfaces {
	return &HostInterfaces{
		sysClassNet: filepath.Join(sysPath, "class", "net"),
		interfaces:  net.Interfaces,
	}
}

// ListNetworkInterfaces returns interfaces backed by a device. Loopback, tun,
// docker and other virtual interfaces are skipped; down interfaces are kept.
func (h *HostInterfaces) ListNetworkInterfaces() ([]registry.NetworkInterface, error) {
	interfaces, err := h.interfaces()
	if err != nil {
		return nil, err
	}

	networkInterfaces := make([]registry.NetworkInterface, 0, len(interfaces))
	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 ||
			strings.HasPrefix(iface.Name, "tun") ||
			strings.HasPrefix(iface.Name, "docker0") {
			continue
		}
		if !h.isPhysical(iface.Name) {
			continue
		}

		status := "down"
		if iface.Flags&net.FlagRunning != 0 {
			status = "up"
		}
		networkInterfaces = append(networkInterfaces, registry.NetworkInterface{
			Name:          iface.Name,
			MACAddress:    iface.HardwareAddr.String(),
			CarrierStatus: status,
		})
	}
	return networkInterfaces, nil
}

func (h *HostInterfaces) isPhysical(name string) bool {
	netDeviceLink, err := os.Readlink(filepath.Join(h.sysClassNet, name)) // e.g., ../../devices/pci0000:00/0000:00:1f.6/net/eth0
	if err != nil {
		return false
	}
	devicePath := filepath.Clean(filepath.Join(h.sysClassNet, netDeviceLink))
	if strings.Contains(devicePath, "devices/virtual/net") {
		return false
	}
	_, err = os.Stat(filepath.Join(devicePath, "device"))
	return err == nil
}
