// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/siderolabs/go-smbios/smbios"
)

// SMBIOS reads the system information table.
type SMBIOS struct{}

func (SMBIOS) SystemInformation() (registry.SystemInformation, error) {
	sm, err := smbios.New()
	if err != nil {
		return registry.SystemInformation{}, fmt.Errorf("failed to read SMBIOS: %w", err)
	}
	return registry.SystemInformation{
		Manufacturer: sm.SystemInformation.Manufacturer,
		ProductName:  sm.SystemInformation.ProductName,
		Version:      sm.SystemInformation.Version,
		SerialNumber: sm.SystemInformation.SerialNumber,
		SKUNumber:    sm.SystemInformation.SKUNumber,
		Family:       sm.SystemInformation.Family,
	}, nil
}
