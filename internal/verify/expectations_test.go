// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Expectations", func() {
	Context("PatternExpectations", func() {
		It("collects every interface index, case folded and sorted", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/3/switch_chassis_id": "Switch2",
				"hardware/interfaces/3/switch_port_id":    "Eth2/1",
				"hardware/interfaces/0/switch_chassis_id": "switch1",
				"hardware/interfaces/0/switch_port_id":    "eth1/1",
				"unrelated":                               "value",
			}}
			Expect(PatternExpectations{}.Expectations(node)).To(Equal([]lldp.SwitchPort{
				{ChassisID: "switch1", PortID: "eth1/1"},
				{ChassisID: "switch2", PortID: "eth2/1"},
			}))
		})

		It("returns nothing for a node without extra", func() {
			Expect(PatternExpectations{}.Expectations(registry.Node{})).To(BeEmpty())
		})

		It("rejects a chassis without its port", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/0/switch_chassis_id": "switch1",
			}}
			_, err := PatternExpectations{}.Expectations(node)
			Expect(err).To(MatchError(ErrMalformedExpectation))
			Expect(err).To(MatchError(lldp.ErrDecode))
		})

		It("rejects a port without its chassis", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/1/switch_port_id": "eth1/1",
			}}
			_, err := PatternExpectations{}.Expectations(node)
			Expect(err).To(MatchError(ErrMalformedExpectation))
		})

		It("ignores keys that only look alike", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/x/switch_chassis_id":     "switch1",
				"hardware/interfaces/0/switch_chassis_id_old": "switch1",
				"prefix/hardware/interfaces/0/switch_port_id": "eth1/1",
			}}
			Expect(PatternExpectations{}.Expectations(node)).To(BeEmpty())
		})
	})

	Context("IndexedExpectations", func() {
		source := IndexedExpectations{Indexes: []int{0, 1}}

		It("looks up the configured indexes only", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/0/switch_chassis_id": "switch1",
				"hardware/interfaces/0/switch_port_id":    "Eth1/1",
				"hardware/interfaces/1/switch_chassis_id": "switch2",
				"hardware/interfaces/1/switch_port_id":    "Eth2/1",
				"hardware/interfaces/2/switch_chassis_id": "switch3",
				"hardware/interfaces/2/switch_port_id":    "Eth3/1",
			}}
			Expect(source.Expectations(node)).To(Equal([]lldp.SwitchPort{
				{ChassisID: "switch1", PortID: "eth1/1"},
				{ChassisID: "switch2", PortID: "eth2/1"},
			}))
		})

		It("skips an index without keys", func() {
			node := registry.Node{Extra: map[string]string{
				"hardware/interfaces/1/switch_chassis_id": "switch2",
				"hardware/interfaces/1/switch_port_id":    "Eth2/1",
			}}
			Expect(source.Expectations(node)).To(HaveLen(1))
		})

		DescribeTable("rejects half pairs",
			func(key string) {
				_, err := source.Expectations(registry.Node{Extra: map[string]string{key: "x"}})
				Expect(err).To(MatchError(ErrMalformedExpectation))
			},
			Entry("chassis only", "hardware/interfaces/0/switch_chassis_id"),
			Entry("port only", "hardware/interfaces/1/switch_port_id"),
		)
	})
})
