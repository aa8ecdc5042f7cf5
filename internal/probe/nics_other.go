// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package probe

import (
	"errors"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
)

type HostNICs struct{}

func (HostNICs) ListNICs() ([]registry.NIC, error) {
	return nil, errors.New("NIC inventory is only supported on linux")
}
