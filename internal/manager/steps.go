// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"errors"

	"k8s.io/utils/ptr"
)

const (
	StepUpgradeBIOS             = "upgrade_bios"
	StepDecomBIOSSettings       = "decom_bios_settings"
	StepUpdateWarpDriveFirmware = "update_warpdrive_firmware"
	StepUpdateIntelNICFirmware  = "update_intel_nic_firmware"
	StepEraseDevices            = "erase_devices"
	StepCustomerBIOSSettings    = "customer_bios_settings"
	StepVerifyProperties        = "verify_properties"
	StepVerifyPorts             = "verify_ports"
)

// ErrStepNotFound is returned for a step name the manager does not implement.
var ErrStepNotFound = errors.New("decommission step does not exist")

// Step is an entry of the decommission pipeline. Steps without priority are
// only run on request.
type Step struct {
	Name            string `json:"name"`
	Priority        *int   `json:"priority,omitempty"`
	RebootRequested bool   `json:"rebootRequested"`
}

// DecommissionSteps returns the pipeline in priority order.
func DecommissionSteps() []Step {
	return []Step{
		{Name: StepUpgradeBIOS, Priority: ptr.To(10), RebootRequested: true},
		{Name: StepDecomBIOSSettings, Priority: ptr.To(20), RebootRequested: true},
		{Name: StepUpdateWarpDriveFirmware, Priority: ptr.To(30)},
		{Name: StepUpdateIntelNICFirmware, Priority: ptr.To(31), RebootRequested: true},
		{Name: StepEraseDevices, Priority: ptr.To(40)},
		{Name: StepCustomerBIOSSettings, Priority: ptr.To(50), RebootRequested: true},
		{Name: StepVerifyProperties},
		// reboot into a fresh agent before deploys are allowed
		{Name: StepVerifyPorts, Priority: ptr.To(61), RebootRequested: true},
	}
}

// LookupStep returns the step named name.
func LookupStep(name string) (Step, bool) {
	for _, s := range DecommissionSteps() {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}
