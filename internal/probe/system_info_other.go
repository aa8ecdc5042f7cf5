// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package probe

import (
	"errors"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
)

type SMBIOS struct{}

func (SMBIOS) SystemInformation() (registry.SystemInformation, error) {
	return registry.SystemInformation{}, errors.New("SMBIOS is only supported on linux")
}
