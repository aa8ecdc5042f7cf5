// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"encoding/json"
	"sort"
)

// LLDPNeighbor is a decoded neighbor advertisement as reported by lldpd.
type LLDPNeighbor struct {
	Interface       string `json:"interface"`
	ChassisID       string `json:"chassisId,omitempty"`
	SystemName      string `json:"systemName,omitempty"`
	PortID          string `json:"portId,omitempty"`
	PortDescription string `json:"portDescription,omitempty"`
}

type lldpctlID struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type lldpctlChassis struct {
	ID    lldpctlID `json:"id"`
	Descr string    `json:"descr"`
}

type lldpctlInterface struct {
	Via     string                     `json:"via"`
	Chassis map[string]json.RawMessage `json:"chassis"`
	Port    struct {
		ID    lldpctlID `json:"id"`
		Descr string    `json:"descr"`
	} `json:"port"`
}

// ParseLLDPCTL converts `lldpctl -f json` output into one LLDPNeighbor per
// advertising chassis. The result is ordered by interface name.
func ParseLLDPCTL(data []byte) ([]LLDPNeighbor, error) {
	var raw struct {
		LLDP struct {
			Interface json.RawMessage `json:"interface"`
		} `json:"lldp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// lldpctl emits a list when several interfaces have neighbors and a bare
	// object when only one does.
	var entries []map[string]lldpctlInterface
	if len(raw.LLDP.Interface) > 0 {
		if err := json.Unmarshal(raw.LLDP.Interface, &entries); err != nil {
			var obj map[string]lldpctlInterface
			if err2 := json.Unmarshal(raw.LLDP.Interface, &obj); err2 != nil {
				return nil, err
			}
			entries = []map[string]lldpctlInterface{obj}
		}
	}

	var neighbors []LLDPNeighbor
	for _, entry := range entries {
		for ifName, details := range entry {
			chassis, err := parseChassis(details.Chassis)
			if err != nil {
				return nil, err
			}
			for sysName, c := range chassis {
				neighbors = append(neighbors, LLDPNeighbor{
					Interface:       ifName,
					ChassisID:       c.ID.Value,
					SystemName:      sysName,
					PortID:          details.Port.ID.Value,
					PortDescription: details.Port.Descr,
				})
			}
		}
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].Interface != neighbors[j].Interface {
			return neighbors[i].Interface < neighbors[j].Interface
		}
		return neighbors[i].SystemName < neighbors[j].SystemName
	})
	return neighbors, nil
}

// parseChassis keys the chassis by system name. A neighbor without a system
// name is reported by lldpctl as the bare chassis object and keyed by "".
func parseChassis(raw map[string]json.RawMessage) (map[string]lldpctlChassis, error) {
	if id, ok := raw["id"]; ok {
		var unnamed lldpctlID
		if err := json.Unmarshal(id, &unnamed); err == nil && (unnamed.Type != "" || unnamed.Value != "") {
			return map[string]lldpctlChassis{"": {ID: unnamed}}, nil
		}
	}

	chassis := make(map[string]lldpctlChassis, len(raw))
	for name, data := range raw {
		var c lldpctlChassis
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		chassis[name] = c
	}
	return chassis, nil
}
