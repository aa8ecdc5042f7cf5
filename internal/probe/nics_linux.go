// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/jaypipes/ghw"
	"github.com/safchain/ethtool"
	"k8s.io/utils/ptr"
)

// HostNICs reports NIC firmware through ethtool.
type HostNICs struct{}

func (HostNICs) ListNICs() ([]registry.NIC, error) {
	nicinfo, err := ghw.Network()
	if err != nil {
		return nil, fmt.Errorf("could not get network info: %w", err)
	}

	ethHandle, err := ethtool.NewEthtool()
	if err != nil {
		return nil, fmt.Errorf("could not open ethtool handle: %w", err)
	}
	defer ethHandle.Close()

	nics := make([]registry.NIC, 0, len(nicinfo.NICs))
	for _, nic := range nicinfo.NICs {
		if nic.IsVirtual {
			continue
		}
		drvInfo, err := ethHandle.DriverInfo(nic.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to get driver info for %s: %w", nic.Name, err)
		}
		nics = append(nics, registry.NIC{
			Name:            nic.Name,
			MAC:             nic.MACAddress,
			PCIAddress:      ptr.Deref(nic.PCIAddress, "unknown"),
			Speed:           nic.Speed,
			Driver:          drvInfo.Driver,
			FirmwareVersion: drvInfo.FwVersion,
		})
	}
	return nics, nil
}
