// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package registry

// BlockDevice is a disk as reported by the device enumerator. Name is the
// device node path, e.g. /dev/sda.
type BlockDevice struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Vendor     string `json:"vendor,omitempty"`
	Serial     string `json:"serial,omitempty"`
	SizeBytes  uint64 `json:"sizeBytes"`
	Rotational bool   `json:"rotational"`
}
