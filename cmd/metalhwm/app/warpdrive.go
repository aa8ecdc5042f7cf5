// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func NewControllersCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "controllers",
		Short:   "List the WarpDrive controllers of the host",
		Args:    cobra.NoArgs,
		Aliases: []string{"ctrl"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.Log.WithName("warpdrive")
			controllers, err := newWarpDrive(logger, o.cfg, executor.New(logger)).ListControllers(cmd.Context())
			if err != nil {
				return err
			}
			data := [][]string{{"ID", "Model", "Version", "PCI Address", "Target"}}
			for _, c := range controllers {
				target := "yes"
				if c.Version != o.cfg.WarpDrive.FirmwareVersion {
					target = "no"
				}
				data = append(data, []string{c.ID, c.Model, c.Version, c.PCIAddress, target})
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

func NewUpdateFirmwareCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update-firmware",
		Short: "Update the WarpDrive controllers to the configured firmware",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.Log.WithName("warpdrive")
			return newWarpDrive(logger, o.cfg, executor.New(logger)).UpdateFirmware(cmd.Context())
		},
	}
}
