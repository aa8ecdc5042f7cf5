// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package verify checks that the NICs of a node are cabled to the switch ports
// recorded for it in the inventory.
package verify

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	"github.com/ironcore-dev/metal-hardware-manager/internal/probe"
	"k8s.io/apimachinery/pkg/util/sets"
)

// ErrVerificationFailed is matched by every MismatchError.
var ErrVerificationFailed = errors.New("port verification failed")

// MismatchError carries the expected and observed switch ports, both sorted.
type MismatchError struct {
	Expected []lldp.SwitchPort
	Observed []lldp.SwitchPort
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected ports %v, observed ports %v", ErrVerificationFailed, e.Expected, e.Observed)
}

func (e *MismatchError) Unwrap() error {
	return ErrVerificationFailed
}

// Verifier compares node attachment metadata against live LLDP data.
type Verifier struct {
	log          logr.Logger
	interfaces   probe.InterfaceLister
	lldp         probe.LLDPProbe
	expectations ExpectationSource
}

// NewVerifier returns a Verifier. A nil ExpectationSource defaults to
// PatternExpectations.
func NewVerifier(log logr.Logger, interfaces probe.InterfaceLister, lldpProbe probe.LLDPProbe, expectations ExpectationSource) *Verifier {
	if expectations == nil {
		expectations = PatternExpectations{}
	}
	return &Verifier{
		log:          log,
		interfaces:   interfaces,
		lldp:         lldpProbe,
		expectations: expectations,
	}
}

// VerifyPorts returns the neighbor info of every interface when the observed
// switch ports equal the expected ones. A node without attachment metadata is
// not checked and yields a nil result. ports is accepted for parity with the
// other steps; the node extra is the source of truth.
func (v *Verifier) VerifyPorts(ctx context.Context, node registry.Node, ports []registry.Port) (lldp.Info, error) {
	log := v.log.WithValues("node", node.UUID)

	expected, err := v.expectations.Expectations(node)
	if err != nil {
		return nil, err
	}
	if len(expected) == 0 {
		log.Info("Node has no switch attachment metadata, skipping port verification")
		return nil, nil
	}

	interfaces, err := v.interfaces.ListNetworkInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	names := make([]string, 0, len(interfaces))
	for _, iface := range interfaces {
		names = append(names, iface.Name)
	}
	log.V(1).Info("Collecting LLDP data", "interfaces", names, "ports", len(ports))

	info, err := v.lldp.Probe(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to collect LLDP data: %w", err)
	}

	observed := sets.New[lldp.SwitchPort]()
	for _, name := range slices.Sorted(maps.Keys(info)) {
		port, err := lldp.DecodeSwitchPort(name, info[name])
		if err != nil {
			return nil, err
		}
		log.V(1).Info("Observed switch port", "interface", name, "port", port.String())
		observed.Insert(port)
	}

	want := sets.New(expected...)
	if !want.Equal(observed) {
		return nil, &MismatchError{
			Expected: sortedPorts(want),
			Observed: sortedPorts(observed),
		}
	}
	log.Info("Switch ports verified", "ports", len(want))
	return info, nil
}

func sortedPorts(s sets.Set[lldp.SwitchPort]) []lldp.SwitchPort {
	ports := s.UnsortedList()
	slices.SortFunc(ports, lldp.SwitchPort.Compare)
	return ports
}
