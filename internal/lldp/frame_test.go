// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package lldp_test

import (
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func tlvBytes(t int, value string) []byte {
	header := uint16(t)<<9 | uint16(len(value))
	return append([]byte{byte(header >> 8), byte(header)}, value...)
}

func frame(tlvs ...[]byte) []byte {
	f := []byte{
		0x01, 0x80, 0xc2, 0x00, 0x00, 0x0e, // destination
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, // source
		0x88, 0xcc,
	}
	for _, tlv := range tlvs {
		f = append(f, tlv...)
	}
	return f
}

var _ = Describe("ParseFrame", func() {
	It("decodes TLVs up to the end TLV", func() {
		f := frame(
			tlvBytes(lldp.TypeChassisID, "\x04aabbcc"),
			tlvBytes(lldp.TypePortID, "\x05Ethernet1/1"),
			tlvBytes(lldp.TypeTTL, "\x00\x78"),
			tlvBytes(lldp.TypeSystemName, "switch1"),
			tlvBytes(lldp.TypeEnd, ""),
			[]byte{0x00, 0x00, 0x00},
		)
		tlvs, err := lldp.ParseFrame(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(tlvs).To(HaveLen(4))
		Expect(tlvs[1]).To(Equal(lldp.TLV{Type: lldp.TypePortID, Value: []byte("\x05Ethernet1/1")}))
		Expect(tlvs[3]).To(Equal(lldp.TLV{Type: lldp.TypeSystemName, Value: []byte("switch1")}))

		port, err := lldp.DecodeSwitchPort("eth0", tlvs)
		Expect(err).NotTo(HaveOccurred())
		Expect(port).To(Equal(lldp.SwitchPort{ChassisID: "switch1", PortID: "eth1/1"}))
	})

	It("rejects frames with another ethertype", func() {
		f := frame(tlvBytes(lldp.TypeSystemName, "switch1"))
		f[13] = 0x00
		_, err := lldp.ParseFrame(f)
		Expect(err).To(MatchError(lldp.ErrDecode))
	})

	It("rejects truncated TLVs", func() {
		f := frame(tlvBytes(lldp.TypeSystemName, "switch1"))
		_, err := lldp.ParseFrame(f[:len(f)-2])
		Expect(err).To(MatchError(lldp.ErrDecode))
	})

	It("rejects runt frames", func() {
		_, err := lldp.ParseFrame([]byte{0x01, 0x80})
		Expect(err).To(MatchError(lldp.ErrDecode))
	})
})
