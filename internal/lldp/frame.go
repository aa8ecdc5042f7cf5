// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package lldp

import (
	"encoding/binary"
	"fmt"
)

// EtherType is the LLDP ethertype.
const EtherType = 0x88cc

// MulticastAddress is the nearest-bridge destination LLDP frames are sent to.
var MulticastAddress = [6]byte{0x01, 0x80, 0xc2, 0x00, 0x00, 0x0e}

const ethernetHeaderLength = 14

// ParseFrame decodes the TLVs of an untagged ethernet frame carrying an
// LLDPDU.
func ParseFrame(frame []byte) ([]TLV, error) {
	if len(frame) < ethernetHeaderLength {
		return nil, fmt.Errorf("%w: frame of %d bytes is too short", ErrDecode, len(frame))
	}
	if et := binary.BigEndian.Uint16(frame[12:14]); et != EtherType {
		return nil, fmt.Errorf("%w: unexpected ethertype %#04x", ErrDecode, et)
	}
	return ParsePDU(frame[ethernetHeaderLength:])
}

// ParsePDU decodes TLVs until the end TLV or the end of the buffer. The end
// TLV is not part of the result.
func ParsePDU(pdu []byte) ([]TLV, error) {
	var tlvs []TLV
	for len(pdu) > 0 {
		if len(pdu) < 2 {
			return nil, fmt.Errorf("%w: truncated TLV header", ErrDecode)
		}
		header := binary.BigEndian.Uint16(pdu[:2])
		t := int(header >> 9)
		l := int(header & 0x01ff)
		pdu = pdu[2:]
		if t == TypeEnd {
			break
		}
		if len(pdu) < l {
			return nil, fmt.Errorf("%w: TLV type %d claims %d bytes, %d left", ErrDecode, t, l, len(pdu))
		}
		value := make([]byte, l)
		copy(value, pdu[:l])
		tlvs = append(tlvs, TLV{Type: t, Value: value})
		pdu = pdu[l:]
	}
	return tlvs, nil
}
