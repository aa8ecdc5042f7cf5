// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	"github.com/spf13/cobra"
)

func addNodeFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().StringVar(&o.nodePath, "node", "", "Path to a YAML or JSON node document with uuid, driverInfo and extra.")
	cmd.Flags().StringVar(&o.portsPath, "ports", "", "Path to a YAML or JSON list of ports attached to the node.")
}

func NewVerifyPortsCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-ports",
		Short: "Verify the switch ports of the node against LLDP",
		Args:  cobra.NoArgs,
		RunE:  o.runVerifyPorts,
	}
	addNodeFlags(cmd, o)
	_ = cmd.MarkFlagRequired("node")
	return cmd
}

func (o *options) runVerifyPorts(cmd *cobra.Command, _ []string) error {
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
	info, err := m.VerifyPorts(cmd.Context(), node, ports)
	if err != nil {
		return err
	}
	if info == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Node has no switch attachment metadata, nothing verified.")
		return nil
	}
	return renderNeighbors(cmd.OutOrStdout(), info)
}

func renderNeighbors(w io.Writer, info lldp.Info) error {
	data := [][]string{{"Interface", "Chassis", "Port"}}
	for _, name := range slices.Sorted(maps.Keys(info)) {
		port, err := lldp.DecodeSwitchPort(name, info[name])
		if err != nil {
			return err
		}
		data = append(data, []string{name, port.ChassisID, port.PortID})
	}
	return renderTable(w, data)
}
