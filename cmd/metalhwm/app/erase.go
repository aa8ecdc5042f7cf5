// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"path/filepath"

	"github.com/ironcore-dev/metal-hardware-manager/internal/probe"
	"github.com/spf13/cobra"
)

func NewEraseCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "erase DEVICE",
		Short: "Erase a single block device, e.g. /dev/sdb",
		Args:  cobra.ExactArgs(1),
		RunE:  o.runErase,
	}
}

func (o *options) runErase(cmd *cobra.Command, args []string) error {
	m, err := newManager(o.cfg, o.registry)
	if err != nil {
		return err
	}
	devices, err := probe.NewBlockDevices(probe.OSFS{}, o.cfg.SysPath).ListBlockDevices()
	if err != nil {
		return err
	}
	name := "/dev/" + filepath.Base(args[0])
	for _, dev := range devices {
		if dev.Name == name {
			if err := m.EraseBlockDevice(cmd.Context(), dev); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Erased %s\n", dev.Name)
			return nil
		}
	}
	return fmt.Errorf("block device %s not found", name)
}

func NewEraseDevicesCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "erase-devices",
		Short: "Erase every block device of the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager(o.cfg, o.registry)
			if err != nil {
				return err
			}
			return m.EraseDevices(cmd.Context())
		},
	}
}

func NewRemoveBootloaderCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-bootloader",
		Short: "Zero the first MiB of the OS install device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager(o.cfg, o.registry)
			if err != nil {
				return err
			}
			return m.RemoveBootloader(cmd.Context())
		},
	}
}
