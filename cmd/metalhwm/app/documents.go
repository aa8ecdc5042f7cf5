// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/pterm/pterm"
	"sigs.k8s.io/yaml"
)

func readDocument(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// readNode reads a YAML or JSON node document. An empty path is an empty node.
func readNode(path string) (registry.Node, error) {
	var node registry.Node
	if path == "" {
		return node, nil
	}
	err := readDocument(path, &node)
	return node, err
}

func readPorts(path string) ([]registry.Port, error) {
	var ports []registry.Port
	if path == "" {
		return ports, nil
	}
	err := readDocument(path, &ports)
	return ports, err
}

// renderTable prints data with its first row as header. NO_COLOR disables
// styling.
func renderTable(w io.Writer, data [][]string) error {
	if os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
