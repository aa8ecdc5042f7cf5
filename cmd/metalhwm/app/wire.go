// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/bios"
	"github.com/ironcore-dev/metal-hardware-manager/internal/config"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/ironcore-dev/metal-hardware-manager/internal/manager"
	"github.com/ironcore-dev/metal-hardware-manager/internal/metrics"
	"github.com/ironcore-dev/metal-hardware-manager/internal/probe"
	"github.com/ironcore-dev/metal-hardware-manager/internal/verify"
	"github.com/ironcore-dev/metal-hardware-manager/internal/warpdrive"
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

const lldpctlInterval = 2 * time.Second

func newLLDPProbe(log logr.Logger, cfg *config.Config, exec executor.Executor) probe.LLDPProbe {
	if cfg.Ports.LLDPBackend == config.LLDPBackendLLDPCTL {
		return probe.NewLLDPCTLProbe(log, exec, cfg.Ports.LLDPCTL, lldpctlInterval, cfg.Ports.LLDPTimeout.Duration)
	}
	return probe.NewRawLLDPProbe(log, cfg.Ports.LLDPTimeout.Duration)
}

func newExpectationSource(cfg *config.Config) verify.ExpectationSource {
	if len(cfg.Ports.ExpectedInterfaceIndexes) > 0 {
		return verify.IndexedExpectations{Indexes: cfg.Ports.ExpectedInterfaceIndexes}
	}
	return verify.PatternExpectations{}
}

func newVerifier(log logr.Logger, cfg *config.Config, exec executor.Executor) *verify.Verifier {
	return verify.NewVerifier(
		log.WithName("verify"),
		probe.NewHostInterfaces(cfg.SysPath),
		newLLDPProbe(log.WithName("lldp"), cfg, exec),
		newExpectationSource(cfg),
	)
}

func newWarpDrive(log logr.Logger, cfg *config.Config, exec executor.Executor) *warpdrive.Manager {
	wd := cfg.WarpDrive
	return warpdrive.NewManager(log.WithName("warpdrive"), warpdrive.Config{
		CLI:             wd.CLI,
		Model:           wd.Model,
		FormatLevel:     wd.FormatLevel,
		FirmwareDir:     wd.FirmwareDir,
		FirmwareVersion: wd.FirmwareVersion,
		PreflashImage:   wd.PreflashImage,
		FirmwarePackage: wd.FirmwarePackage,
		SysPath:         cfg.SysPath,
		FormatSucceeded: warpdrive.OutputContains(wd.SuccessMarker),
	}, exec, probe.OSFS{})
}

func newManager(cfg *config.Config, reg prometheus.Registerer) (*manager.Manager, error) {
	logger := log.Log.WithName("manager")
	exec := executor.New(logger.WithName("executor"))

	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, err
	}
	return manager.New(logger, manager.Options{
		Executor:      exec,
		Verifier:      newVerifier(logger, cfg, exec),
		WarpDrive:     newWarpDrive(logger, cfg, exec),
		BIOS:          bios.NewRunner(logger.WithName("bios"), exec, cfg.BIOSDir),
		GenericEraser: manager.NewShredEraser(logger.WithName("shred"), exec),
		BlockDevices:  probe.NewBlockDevices(probe.OSFS{}, cfg.SysPath),
		NICs:          probe.HostNICs{},
		SystemInfo:    probe.SMBIOS{},
		Metrics:       recorder,
		ProductNames:  cfg.ProductNames,
	}), nil
}
