// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/ironcore-dev/metal-hardware-manager/internal/bios"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func NewBIOSCommand(o *options) *cobra.Command {
	var valid []string
	for _, t := range bios.JobTypes {
		valid = append(valid, string(t))
	}
	return &cobra.Command{
		Use:       "bios JOB",
		Short:     fmt.Sprintf("Run a BIOS job, one of %v", valid),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Log.WithName("bios")
			return bios.NewRunner(logger, executor.New(logger), o.cfg.BIOSDir).Run(cmd.Context(), bios.JobType(args[0]))
		},
	}
}
