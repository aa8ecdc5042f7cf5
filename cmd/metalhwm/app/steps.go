// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strconv"

	"github.com/ironcore-dev/metal-hardware-manager/internal/manager"
	"github.com/spf13/cobra"
)

func NewStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the decommission steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderSteps(cmd, manager.DecommissionSteps())
		},
	}
}

func renderSteps(cmd *cobra.Command, steps []manager.Step) error {
	data := [][]string{{"Step", "Priority", "Reboot"}}
	for _, s := range steps {
		priority := "-"
		if s.Priority != nil {
			priority = strconv.Itoa(*s.Priority)
		}
		data = append(data, []string{s.Name, priority, strconv.FormatBool(s.RebootRequested)})
	}
	return renderTable(cmd.OutOrStdout(), data)
}

func NewRunStepCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-step STEP",
		Short: "Run a single decommission step",
		Args:  cobra.ExactArgs(1),
		RunE:  o.runStep,
	}
	addNodeFlags(cmd, o)
	return cmd
}

func (o *options) runStep(cmd *cobra.Command, args []string) error {
	step, ok := manager.LookupStep(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", manager.ErrStepNotFound, args[0])
	}
	node, err := readNode(o.nodePath)
	if err != nil {
		return err
	}
	ports, err := readPorts(o.portsPath)
	if err != nil {
		return err
	}
	m, err := newManager(o.cfg, o.registry)
	if err != nil {
		return err
	}
	result, err := m.ExecuteStep(cmd.Context(), step.Name, node, ports)
	if err != nil {
		return err
	}
	if result.Neighbors != nil {
		if err := renderNeighbors(cmd.OutOrStdout(), result.Neighbors); err != nil {
			return err
		}
	}
	if step.RebootRequested {
		fmt.Fprintf(cmd.OutOrStdout(), "Step %s completed, reboot requested\n", step.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Step %s completed\n", step.Name)
	return nil
}
