// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
)

const (
	chassisKeyFormat = "hardware/interfaces/%d/switch_chassis_id"
	portKeyFormat    = "hardware/interfaces/%d/switch_port_id"
)

var (
	chassisKey = regexp.MustCompile(`^hardware/interfaces/(\d+)/switch_chassis_id$`)
	portKey    = regexp.MustCompile(`^hardware/interfaces/(\d+)/switch_port_id$`)
)

// ErrMalformedExpectation is returned when the attachment metadata of a node
// holds one half of a chassis/port pair. It matches lldp.ErrDecode.
var ErrMalformedExpectation = fmt.Errorf("%w: malformed switch attachment metadata", lldp.ErrDecode)

// ExpectationSource derives the switch ports a node is expected to be cabled
// to. An empty result means the node carries no attachment metadata.
type ExpectationSource interface {
	Expectations(node registry.Node) ([]lldp.SwitchPort, error)
}

// PatternExpectations scans every extra key of the node for interface
// attachments. Any index may be used.
type PatternExpectations struct{}

func (PatternExpectations) Expectations(node registry.Node) ([]lldp.SwitchPort, error) {
	var (
		expected []lldp.SwitchPort
		errs     []error
	)
	for key, chassis := range node.Extra {
		if m := chassisKey.FindStringSubmatch(key); m != nil {
			port, ok := node.Extra[fmt.Sprintf("hardware/interfaces/%s/switch_port_id", m[1])]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s has no switch_port_id", ErrMalformedExpectation, key))
				continue
			}
			expected = append(expected, lldp.NewSwitchPort(chassis, port))
			continue
		}
		if m := portKey.FindStringSubmatch(key); m != nil {
			if _, ok := node.Extra[fmt.Sprintf("hardware/interfaces/%s/switch_chassis_id", m[1])]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s has no switch_chassis_id", ErrMalformedExpectation, key))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	slices.SortFunc(expected, lldp.SwitchPort.Compare)
	return expected, nil
}

// IndexedExpectations looks up a fixed list of interface indexes. An index
// without any attachment key is skipped.
type IndexedExpectations struct {
	Indexes []int
}

func (e IndexedExpectations) Expectations(node registry.Node) ([]lldp.SwitchPort, error) {
	var expected []lldp.SwitchPort
	for _, index := range e.Indexes {
		chassisName := fmt.Sprintf(chassisKeyFormat, index)
		portName := fmt.Sprintf(portKeyFormat, index)
		chassis, hasChassis := node.Extra[chassisName]
		port, hasPort := node.Extra[portName]
		switch {
		case !hasChassis && !hasPort:
			continue
		case !hasPort:
			return nil, fmt.Errorf("%w: %s has no switch_port_id", ErrMalformedExpectation, chassisName)
		case !hasChassis:
			return nil, fmt.Errorf("%w: %s has no switch_chassis_id", ErrMalformedExpectation, portName)
		}
		expected = append(expected, lldp.NewSwitchPort(chassis, port))
	}
	return expected, nil
}
