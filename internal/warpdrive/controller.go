// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package warpdrive

import (
	"fmt"
	"regexp"
	"strings"
)

// Controller is a WarpDrive card as reported by the vendor CLI.
type Controller struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Version string `json:"version"`

	// PCIAddress is bus:device:function without the domain, e.g. 00:02:00.
	PCIAddress string `json:"pciAddress"`
}

// ParseControllers reads the -listall table. Lines not mentioning model are
// banners or summaries and are ignored.
func ParseControllers(output, model string) ([]Controller, error) {
	var controllers []Controller
	for i, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, model) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d has %d columns: %q", ErrListing, i+1, len(fields), line)
		}
		address := fields[3]
		if len(address) < 3 {
			return nil, fmt.Errorf("%w: line %d has invalid PCI address %q", ErrListing, i+1, address)
		}
		// the CLI appends the function as ":00", sysfs does not
		controllers = append(controllers, Controller{
			ID:         fields[0],
			Model:      fields[1],
			Version:    fields[2],
			PCIAddress: address[:len(address)-3],
		})
	}
	return controllers, nil
}

var pciSegment = regexp.MustCompile(`^[[:xdigit:]]{4}:[[:xdigit:]]{2}:[[:xdigit:]]{2}\.[[:xdigit:]]$`)

// PCIAddressFromPath extracts the controller address from the resolved sysfs
// path of a block device, e.g.
//
//	/sys/devices/pci0000:00/0000:00:02.0/0000:02:00.0/host3/target3:1:0/3:1:0:0/block/sdb
//
// yields 00:02:00. The sixth path component is the PCI function of the card;
// its domain prefix and function suffix are trimmed.
func PCIAddressFromPath(path string) (string, error) {
	parts := strings.Split(path, "/")
	if len(parts) < 6 {
		return "", fmt.Errorf("%w: %s is too short", ErrPCIPath, path)
	}
	segment := parts[5]
	if !pciSegment.MatchString(segment) {
		return "", fmt.Errorf("%w: component %q of %s is not a PCI function", ErrPCIPath, segment, path)
	}
	return segment[2 : len(segment)-2], nil
}
