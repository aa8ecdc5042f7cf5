// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package lldp decodes link layer discovery TLVs into switch port identities.
package lldp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TLV types defined by IEEE 802.1AB.
const (
	TypeEnd                = 0
	TypeChassisID          = 1
	TypePortID             = 2
	TypeTTL                = 3
	TypePortDescription    = 4
	TypeSystemName         = 5
	TypeSystemDescription  = 6
	TypeSystemCapabilities = 7
	TypeManagementAddress  = 8
	TypeOrganization       = 127
)

// ChassisType is the TLV carrying the switch identity. Inventory records store
// the switch system name, not the chassis MAC, so the system name TLV is used.
const ChassisType = TypeSystemName

// PortType is the TLV carrying the switch port identity.
const PortType = TypePortID

// TLV is a single neighbor attribute as received on the wire.
type TLV struct {
	Type  int    `json:"type"`
	Value []byte `json:"value"`
}

// Info maps an interface name to the TLVs received on it. A record is empty
// when no neighbor answered within the probe timeout.
type Info map[string][]TLV

// SwitchPort identifies the physical switch port a NIC is cabled to. Both
// fields are lower case.
type SwitchPort struct {
	ChassisID string `json:"chassisId"`
	PortID    string `json:"portId"`
}

func (p SwitchPort) String() string {
	return fmt.Sprintf("(%s, %s)", p.ChassisID, p.PortID)
}

// Compare orders switch ports by chassis, then port.
func (p SwitchPort) Compare(o SwitchPort) int {
	if c := strings.Compare(p.ChassisID, o.ChassisID); c != 0 {
		return c
	}
	return strings.Compare(p.PortID, o.PortID)
}

// NewSwitchPort case-folds chassis and port.
func NewSwitchPort(chassisID, portID string) SwitchPort {
	return SwitchPort{ChassisID: strings.ToLower(chassisID), PortID: strings.ToLower(portID)}
}

// ErrDecode is matched by every malformed neighbor record error.
var ErrDecode = errors.New("malformed LLDP info")

// DecodeError describes a neighbor record that cannot be turned into a
// SwitchPort.
type DecodeError struct {
	Interface string
	Reason    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s on interface %s: %s", ErrDecode, e.Interface, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// Values returns the values of every TLV of type t, in record order. Types
// may repeat (127 usually does), so all matches are returned.
func Values(tlvs []TLV, t int) ([][]byte, error) {
	var values [][]byte
	for i, tlv := range tlvs {
		if tlv.Type < TypeEnd || tlv.Type > TypeOrganization {
			return nil, fmt.Errorf("%w: TLV %d has invalid type %d", ErrDecode, i, tlv.Type)
		}
		if tlv.Type == t {
			values = append(values, tlv.Value)
		}
	}
	return values, nil
}

var portNumber = regexp.MustCompile(`\d{1,2}/\d{1,2}`)

// DecodeSwitchPort extracts the switch port an interface is attached to.
// The record must hold exactly one chassis and exactly one port TLV. The port
// value usually carries a subtype byte before text such as "Ethernet1/1";
// only the slot/port pair is kept and rendered as eth<slot>/<port>.
func DecodeSwitchPort(iface string, tlvs []TLV) (SwitchPort, error) {
	ports, err := Values(tlvs, PortType)
	if err != nil {
		return SwitchPort{}, fmt.Errorf("%w on interface %s", err, iface)
	}
	chassis, err := Values(tlvs, ChassisType)
	if err != nil {
		return SwitchPort{}, fmt.Errorf("%w on interface %s", err, iface)
	}
	if len(ports) != 1 || len(chassis) != 1 {
		return SwitchPort{}, &DecodeError{
			Interface: iface,
			Reason:    fmt.Sprintf("received port: %q, chassis: %q", ports, chassis),
		}
	}

	number := portNumber.Find(ports[0])
	if number == nil {
		return SwitchPort{}, &DecodeError{
			Interface: iface,
			Reason:    fmt.Sprintf("port %q has no slot/port number", ports[0]),
		}
	}
	return NewSwitchPort(string(chassis[0]), "eth"+string(number)), nil
}
