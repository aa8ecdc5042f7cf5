// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package warpdrive erases and updates NWD-BLP4-1600 WarpDrive accelerator
// cards through the ddoemcli vendor tool.
package warpdrive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/ironcore-dev/metal-hardware-manager/internal/probe"
)

// FormatSuccessMarker is printed by ddoemcli once a format has completed.
const FormatSuccessMarker = "WarpDrive format successfully completed."

// SuccessFunc decides from the captured tool output whether a format worked.
type SuccessFunc func(output string) bool

// OutputContains returns a SuccessFunc looking for marker in the output.
func OutputContains(marker string) SuccessFunc {
	return func(output string) bool {
		return strings.Contains(output, marker)
	}
}

// Config holds the card model and the vendor tool and firmware locations.
type Config struct {
	// CLI is the path of the ddoemcli binary.
	CLI string
	// Model is the block device model handled by this package.
	Model string
	// FormatLevel is passed to -format -op -level.
	FormatLevel string
	// FirmwareDir holds PreflashImage and FirmwarePackage.
	FirmwareDir     string
	FirmwareVersion string
	PreflashImage   string
	FirmwarePackage string
	// SysPath is the sysfs mount point.
	SysPath string
	// FormatSucceeded defaults to OutputContains(FormatSuccessMarker).
	FormatSucceeded SuccessFunc
}

// Manager drives the WarpDrive cards of the host.
type Manager struct {
	log  logr.Logger
	cfg  Config
	exec executor.Executor
	fs   probe.FS
}

func NewManager(log logr.Logger, cfg Config, exec executor.Executor, fs probe.FS) *Manager {
	if cfg.FormatSucceeded == nil {
		cfg.FormatSucceeded = OutputContains(FormatSuccessMarker)
	}
	if cfg.FormatLevel == "" {
		cfg.FormatLevel = "nom"
	}
	return &Manager{
		log:  log,
		cfg:  cfg,
		exec: exec,
		fs:   fs,
	}
}

// ListControllers enumerates the cards of the configured model.
func (m *Manager) ListControllers(ctx context.Context) ([]Controller, error) {
	result, err := m.exec.Execute(ctx, m.cfg.CLI, []string{"-listall"}, executor.CheckExitCode(0))
	if err != nil {
		return nil, fmt.Errorf("failed to list controllers: %w", err)
	}
	return ParseControllers(result.Stdout, m.cfg.Model)
}

// EraseBlockDevice securely formats the card backing dev. It returns false
// without running anything when dev is not a WarpDrive; the caller then
// chooses a generic eraser. Every failure is an *EraseError.
func (m *Manager) EraseBlockDevice(ctx context.Context, dev registry.BlockDevice) (bool, error) {
	if dev.Model != m.cfg.Model {
		return false, nil
	}
	log := m.log.WithValues("device", dev.Name)

	controllers, err := m.ListControllers(ctx)
	if err != nil {
		return false, &EraseError{Device: dev.Name, Reason: err}
	}

	sysBlockPath := filepath.Join(m.cfg.SysPath, "block", filepath.Base(dev.Name))
	realPath, err := m.fs.RealPath(sysBlockPath)
	if err != nil {
		return false, &EraseError{Device: dev.Name, Reason: err}
	}
	pciAddress, err := PCIAddressFromPath(realPath)
	if err != nil {
		return false, &EraseError{Device: dev.Name, Reason: err}
	}

	var matching []Controller
	for _, c := range controllers {
		if c.PCIAddress == pciAddress {
			matching = append(matching, c)
		}
	}
	switch len(matching) {
	case 0:
		return false, &EraseError{Device: dev.Name, PCIAddress: pciAddress, Reason: ErrNoController}
	case 1:
	default:
		return false, &EraseError{Device: dev.Name, PCIAddress: pciAddress, Reason: ErrAmbiguousController}
	}

	controller := matching[0]
	log.Info("Formatting WarpDrive", "controller", controller.ID, "pciAddress", pciAddress)
	result, err := m.exec.Execute(ctx, m.cfg.CLI, []string{"-c", controller.ID, "-format", "-op", "-level", m.cfg.FormatLevel, "-s"}, executor.CheckExitCode(0))
	if err != nil {
		return false, &EraseError{Device: dev.Name, PCIAddress: pciAddress, Reason: fmt.Errorf("%w: %w", ErrFormatFailed, err), Output: result.Stdout}
	}
	if !m.cfg.FormatSucceeded(result.Stdout) {
		return false, &EraseError{Device: dev.Name, PCIAddress: pciAddress, Reason: ErrFormatFailed, Output: result.Stdout}
	}
	log.Info("Formatted WarpDrive", "controller", controller.ID)
	return true, nil
}

// UpdateFirmware flashes every card not yet running the configured version.
func (m *Manager) UpdateFirmware(ctx context.Context) error {
	controllers, err := m.ListControllers(ctx)
	if err != nil {
		return err
	}
	preflash := filepath.Join(m.cfg.FirmwareDir, m.cfg.PreflashImage)
	pkg := filepath.Join(m.cfg.FirmwareDir, m.cfg.FirmwarePackage)

	for _, c := range controllers {
		log := m.log.WithValues("controller", c.ID, "version", c.Version)
		if c.Version == m.cfg.FirmwareVersion {
			log.Info("Controller already runs the target firmware, not upgrading")
			continue
		}
		log.Info("Updating WarpDrive firmware", "targetVersion", m.cfg.FirmwareVersion)
		if _, err := m.exec.Execute(ctx, m.cfg.CLI, []string{"-c", c.ID, "-f", preflash}, executor.CheckExitCode(0)); err != nil {
			return fmt.Errorf("failed to preflash controller %s: %w", c.ID, err)
		}
		if _, err := m.exec.Execute(ctx, m.cfg.CLI, []string{"-c", c.ID, "-updatepkg", pkg}, executor.CheckExitCode(0)); err != nil {
			return fmt.Errorf("failed to update firmware of controller %s: %w", c.ID, err)
		}
	}
	return nil
}
