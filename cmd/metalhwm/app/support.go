// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSupportCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Report how well this hardware manager supports the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager(o.cfg, o.registry)
			if err != nil {
				return err
			}
			support := m.EvaluateHardwareSupport()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", support, support)
			return nil
		},
	}
}
