// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(reg *prometheus.Registry, name string, labels map[string]string) float64 {
	families, err := reg.Gather()
	Expect(err).NotTo(HaveOccurred())
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	for _, pair := range metric.GetLabel() {
		if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
			return false
		}
	}
	return true
}

var _ = Describe("Recorder", func() {
	var (
		reg      *prometheus.Registry
		recorder *Recorder
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		var err error
		recorder, err = NewRecorder(reg)
		Expect(err).NotTo(HaveOccurred())
	})

	It("counts steps by result", func() {
		recorder.StepCompleted("erase_devices", nil)
		recorder.StepCompleted("erase_devices", nil)
		recorder.StepCompleted("upgrade_bios", errors.New("flash failed"))

		Expect(counterValue(reg, "metal_hardware_manager_step_total", map[string]string{"step": "erase_devices", "result": ResultSuccess})).To(Equal(2.0))
		Expect(counterValue(reg, "metal_hardware_manager_step_total", map[string]string{"step": "upgrade_bios", "result": ResultFailure})).To(Equal(1.0))
	})

	It("counts erases by eraser", func() {
		recorder.BlockDeviceErased("warpdrive", nil)
		recorder.BlockDeviceErased("shred", errors.New("shred failed"))

		Expect(counterValue(reg, "metal_hardware_manager_block_device_erase_total", map[string]string{"eraser": "warpdrive", "result": ResultSuccess})).To(Equal(1.0))
		Expect(counterValue(reg, "metal_hardware_manager_block_device_erase_total", map[string]string{"eraser": "shred", "result": ResultFailure})).To(Equal(1.0))
	})

	It("counts port verifications", func() {
		recorder.PortsVerified(ResultMismatch)
		Expect(counterValue(reg, "metal_hardware_manager_port_verification_total", map[string]string{"result": ResultMismatch})).To(Equal(1.0))
	})

	It("refuses a second registration", func() {
		_, err := NewRecorder(reg)
		Expect(err).To(HaveOccurred())
	})
})
