// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"path/filepath"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/jaypipes/ghw"
)

// BlockDevices enumerates disks with ghw and completes them from sysfs.
type BlockDevices struct {
	fs        FS
	sysPath   string
	blockInfo func() (*ghw.BlockInfo, error)
}

func NewBlockDevices(fs FS, sysPath string) *BlockDevices {
	return &BlockDevices{
		fs:      fs,
		sysPath: sysPath,
		blockInfo: func() (*ghw.BlockInfo, error) {
			return ghw.Block()
		},
	}
}

func (b *BlockDevices) ListBlockDevices() ([]registry.BlockDevice, error) {
	blockStorage, err := b.blockInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get block devices: %w", err)
	}

	blockDevices := make([]registry.BlockDevice, 0, len(blockStorage.Disks))
	for _, disk := range blockStorage.Disks {
		rota, err := ToBool(b.fs, filepath.Join(b.sysPath, "class", "block", disk.Name, "queue", "rotational"))
		if err != nil {
			return nil, fmt.Errorf("failed to read rotational state for %s: %w", disk.Name, err)
		}
		blockDevices = append(blockDevices, registry.BlockDevice{
			Name:       "/dev/" + disk.Name,
			Model:      disk.Model,
			Vendor:     disk.Vendor,
			Serial:     disk.SerialNumber,
			SizeBytes:  disk.SizeBytes,
			Rotational: rota,
		})
	}
	return blockDevices, nil
}
