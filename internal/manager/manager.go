// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package manager implements the decommission steps of the hardware manager
// on top of the verify, warpdrive and bios packages.
package manager

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/bios"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	"github.com/ironcore-dev/metal-hardware-manager/internal/metrics"
	"github.com/ironcore-dev/metal-hardware-manager/internal/probe"
	"github.com/ironcore-dev/metal-hardware-manager/internal/verify"
)

// HardwareSupport ranks how well a manager fits the running system.
type HardwareSupport int

const (
	SupportNone            HardwareSupport = 0
	SupportGeneric         HardwareSupport = 1
	SupportMainline        HardwareSupport = 2
	SupportServiceProvider HardwareSupport = 3
)

func (s HardwareSupport) String() string {
	switch s {
	case SupportGeneric:
		return "generic"
	case SupportMainline:
		return "mainline"
	case SupportServiceProvider:
		return "service_provider"
	default:
		return "none"
	}
}

// minInstallDeviceSize is the smallest disk an OS is installed on.
const minInstallDeviceSize = 4 * 1024 * 1024 * 1024

// ErrNoInstallDevice is returned when no block device can hold an OS.
var ErrNoInstallDevice = errors.New("no suitable install device found")

// PortVerifier is implemented by verify.Verifier.
type PortVerifier interface {
	VerifyPorts(ctx context.Context, node registry.Node, ports []registry.Port) (lldp.Info, error)
}

// WarpDriveManager is implemented by warpdrive.Manager.
type WarpDriveManager interface {
	EraseBlockDevice(ctx context.Context, dev registry.BlockDevice) (bool, error)
	UpdateFirmware(ctx context.Context) error
}

// BIOSRunner is implemented by bios.Runner.
type BIOSRunner interface {
	Run(ctx context.Context, jobType bios.JobType) error
}

// Options carries the collaborators of a Manager.
type Options struct {
	Executor      executor.Executor
	Verifier      PortVerifier
	WarpDrive     WarpDriveManager
	BIOS          BIOSRunner
	GenericEraser GenericEraser
	BlockDevices  probe.BlockDeviceLister
	NICs          probe.NICLister
	SystemInfo    probe.SystemInfoReader
	Metrics       *metrics.Recorder
	// ProductNames are the SMBIOS product names considered supported. Empty
	// supports every system.
	ProductNames []string
}

// Manager runs decommission steps.
type Manager struct {
	log  logr.Logger
	opts Options
}

func New(log logr.Logger, opts Options) *Manager {
	return &Manager{log: log, opts: opts}
}

// Result is the outcome of a step. Neighbors is only set by verify_ports.
type Result struct {
	Step      string    `json:"step"`
	Neighbors lldp.Info `json:"neighbors,omitempty"`
}

// ExecuteStep runs the step named name.
func (m *Manager) ExecuteStep(ctx context.Context, name string, node registry.Node, ports []registry.Port) (Result, error) {
	log := m.log.WithValues("step", name, "node", node.UUID)
	result := Result{Step: name}

	var err error
	switch name {
	case StepUpgradeBIOS:
		err = m.runBIOS(ctx, log, node, bios.UpgradeJobType)
	case StepDecomBIOSSettings:
		err = m.runBIOS(ctx, log, node, bios.DecomSettingsJobType)
	case StepCustomerBIOSSettings:
		err = m.runBIOS(ctx, log, node, bios.CustomerSettingsJobType)
	case StepUpdateWarpDriveFirmware:
		log.Info("Updating WarpDrive firmware", "driverInfo", node.DriverInfo)
		err = m.opts.WarpDrive.UpdateFirmware(ctx)
	case StepUpdateIntelNICFirmware:
		err = m.UpdateNICFirmware(ctx, node)
	case StepEraseDevices:
		err = m.EraseDevices(ctx)
	case StepVerifyProperties:
		err = m.VerifyProperties(ctx, node)
	case StepVerifyPorts:
		result.Neighbors, err = m.VerifyPorts(ctx, node, ports)
	default:
		return result, fmt.Errorf("%w: %s", ErrStepNotFound, name)
	}
	m.recordStep(name, err)
	if err != nil {
		return result, fmt.Errorf("step %s failed: %w", name, err)
	}
	log.Info("Step completed")
	return result, nil
}

func (m *Manager) runBIOS(ctx context.Context, log logr.Logger, node registry.Node, jobType bios.JobType) error {
	log.Info("Running BIOS job", "job", jobType, "driverInfo", node.DriverInfo)
	return m.opts.BIOS.Run(ctx, jobType)
}

// EvaluateHardwareSupport reports SupportServiceProvider for the configured
// products and SupportNone otherwise.
func (m *Manager) EvaluateHardwareSupport() HardwareSupport {
	if len(m.opts.ProductNames) == 0 {
		return SupportServiceProvider
	}
	info, err := m.opts.SystemInfo.SystemInformation()
	if err != nil {
		m.log.Error(err, "Failed to read system information")
		return SupportNone
	}
	if slices.ContainsFunc(m.opts.ProductNames, func(name string) bool {
		return strings.EqualFold(name, info.ProductName)
	}) {
		return SupportServiceProvider
	}
	m.log.V(1).Info("Unsupported product", "manufacturer", info.Manufacturer, "product", info.ProductName)
	return SupportNone
}

// VerifyPorts checks the switch cabling of node.
func (m *Manager) VerifyPorts(ctx context.Context, node registry.Node, ports []registry.Port) (lldp.Info, error) {
	info, err := m.opts.Verifier.VerifyPorts(ctx, node, ports)
	if m.opts.Metrics != nil {
		m.opts.Metrics.PortsVerified(verificationResult(info, err))
	}
	return info, err
}

func verificationResult(info lldp.Info, err error) string {
	switch {
	case errors.Is(err, verify.ErrVerificationFailed):
		return metrics.ResultMismatch
	case errors.Is(err, lldp.ErrDecode):
		return metrics.ResultMalformed
	case err != nil:
		return metrics.ResultFailure
	case info == nil:
		return metrics.ResultSkipped
	default:
		return metrics.ResultSuccess
	}
}

// EraseBlockDevice erases dev with the WarpDrive manager and falls back to
// the generic eraser for every other device.
func (m *Manager) EraseBlockDevice(ctx context.Context, dev registry.BlockDevice) error {
	handled, err := m.opts.WarpDrive.EraseBlockDevice(ctx, dev)
	if handled || err != nil {
		m.recordErase("warpdrive", err)
		return err
	}
	err = m.opts.GenericEraser.Erase(ctx, dev)
	m.recordErase("generic", err)
	return err
}

// EraseDevices erases every block device of the host and stops at the first
// failure.
func (m *Manager) EraseDevices(ctx context.Context) error {
	devices, err := m.opts.BlockDevices.ListBlockDevices()
	if err != nil {
		return err
	}
	for _, dev := range devices {
		if err := m.EraseBlockDevice(ctx, dev); err != nil {
			return err
		}
	}
	return nil
}

// InstallDevice returns the smallest block device of at least 4 GiB.
func (m *Manager) InstallDevice() (registry.BlockDevice, error) {
	devices, err := m.opts.BlockDevices.ListBlockDevices()
	if err != nil {
		return registry.BlockDevice{}, err
	}
	var candidates []registry.BlockDevice
	for _, dev := range devices {
		if dev.SizeBytes >= minInstallDeviceSize {
			candidates = append(candidates, dev)
		}
	}
	if len(candidates) == 0 {
		return registry.BlockDevice{}, ErrNoInstallDevice
	}
	return slices.MinFunc(candidates, func(a, b registry.BlockDevice) int {
		switch {
		case a.SizeBytes < b.SizeBytes:
			return -1
		case a.SizeBytes > b.SizeBytes:
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	}), nil
}

// RemoveBootloader zeroes the first MiB of the install device.
func (m *Manager) RemoveBootloader(ctx context.Context) error {
	dev, err := m.InstallDevice()
	if err != nil {
		return err
	}
	m.log.Info("Removing bootloader", "device", dev.Name)
	args := []string{"if=/dev/zero", "of=" + dev.Name, "bs=1M", "count=1"}
	if _, err := m.opts.Executor.Execute(ctx, "dd", args, executor.CheckExitCode(0)); err != nil {
		return fmt.Errorf("failed to remove bootloader from %s: %w", dev.Name, err)
	}
	return nil
}

// UpdateNICFirmware logs the NIC firmware inventory. Flashing is done out of
// band.
func (m *Manager) UpdateNICFirmware(ctx context.Context, node registry.Node) error {
	nics, err := m.opts.NICs.ListNICs()
	if err != nil {
		return fmt.Errorf("failed to list NICs: %w", err)
	}
	for _, nic := range nics {
		m.log.Info("NIC firmware", "nic", nic.Name, "driver", nic.Driver, "firmware", nic.FirmwareVersion, "pciAddress", nic.PCIAddress)
	}
	return nil
}

// VerifyProperties is a placeholder step kept for pipeline compatibility.
func (m *Manager) VerifyProperties(ctx context.Context, node registry.Node) error {
	m.log.Info("Verify properties called", "driverInfo", node.DriverInfo)
	return nil
}

func (m *Manager) recordStep(name string, err error) {
	if m.opts.Metrics != nil {
		m.opts.Metrics.StepCompleted(name, err)
	}
}

func (m *Manager) recordErase(eraser string, err error) {
	if m.opts.Metrics != nil {
		m.opts.Metrics.BlockDeviceErased(eraser, err)
	}
}
