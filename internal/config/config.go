// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the hardware manager configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

type LLDPBackend string

const (
	// LLDPBackendRaw captures LLDP frames on AF_PACKET sockets.
	LLDPBackendRaw LLDPBackend = "raw"
	// LLDPBackendLLDPCTL reads neighbors from a running lldpd.
	LLDPBackendLLDPCTL LLDPBackend = "lldpctl"
)

// Config is the on-disk configuration of metalhwm.
type Config struct {
	// SysPath is the sysfs mount point.
	SysPath string `json:"sysPath"`
	// BIOSDir holds the BIOS flashing and settings scripts.
	BIOSDir string `json:"biosDir"`
	// ProductNames are the SMBIOS product names this manager supports. Empty
	// means any system.
	ProductNames []string `json:"productNames,omitempty"`

	WarpDrive WarpDriveConfig `json:"warpDrive"`
	Ports     PortsConfig     `json:"ports"`
}

type WarpDriveConfig struct {
	Model           string `json:"model"`
	CLI             string `json:"cli"`
	FormatLevel     string `json:"formatLevel"`
	FirmwareDir     string `json:"firmwareDir"`
	FirmwareVersion string `json:"firmwareVersion"`
	PreflashImage   string `json:"preflashImage"`
	FirmwarePackage string `json:"firmwarePackage"`
	// SuccessMarker is searched in the format output.
	SuccessMarker string `json:"successMarker"`
}

type PortsConfig struct {
	// ExpectedInterfaceIndexes restricts the attachment lookup to the listed
	// interface indexes. Empty scans every index.
	ExpectedInterfaceIndexes []int `json:"expectedInterfaceIndexes,omitempty"`

	LLDPBackend LLDPBackend     `json:"lldpBackend"`
	LLDPTimeout metav1.Duration `json:"lldpTimeout"`
	LLDPCTL     string          `json:"lldpctl"`
}

// Default returns the configuration of a Quanta A14 node with a
// NWD-BLP4-1600 card.
func Default() *Config {
	const (
		model           = "NWD-BLP4-1600"
		firmwareVersion = "12.22.00.00"
	)
	firmwareDir := filepath.Join("/mnt/LSI", firmwareVersion)
	return &Config{
		SysPath: "/sys",
		BIOSDir: "/mnt/bios/quanta_A14",
		WarpDrive: WarpDriveConfig{
			Model:           model,
			CLI:             filepath.Join(firmwareDir, "ddoemcli"),
			FormatLevel:     "nom",
			FirmwareDir:     firmwareDir,
			FirmwareVersion: firmwareVersion,
			PreflashImage:   "preflash.bin",
			FirmwarePackage: fmt.Sprintf("%s_%s.bin", model, firmwareVersion),
			SuccessMarker:   "WarpDrive format successfully completed.",
		},
		Ports: PortsConfig{
			LLDPBackend: LLDPBackendRaw,
			LLDPTimeout: metav1.Duration{Duration: 30 * time.Second},
			LLDPCTL:     "lldpctl",
		},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.SysPath == "" {
		errs = append(errs, errors.New("sysPath must not be empty"))
	}
	if c.WarpDrive.Model == "" {
		errs = append(errs, errors.New("warpDrive.model must not be empty"))
	}
	if c.WarpDrive.CLI == "" {
		errs = append(errs, errors.New("warpDrive.cli must not be empty"))
	}
	if c.WarpDrive.SuccessMarker == "" {
		errs = append(errs, errors.New("warpDrive.successMarker must not be empty"))
	}
	for _, index := range c.Ports.ExpectedInterfaceIndexes {
		if index < 0 {
			errs = append(errs, fmt.Errorf("ports.expectedInterfaceIndexes contains negative index %d", index))
		}
	}
	switch c.Ports.LLDPBackend {
	case LLDPBackendRaw, LLDPBackendLLDPCTL:
	default:
		errs = append(errs, fmt.Errorf("ports.lldpBackend %q is not one of %q, %q", c.Ports.LLDPBackend, LLDPBackendRaw, LLDPBackendLLDPCTL))
	}
	if c.Ports.LLDPTimeout.Duration <= 0 {
		errs = append(errs, errors.New("ports.lldpTimeout must be positive"))
	}
	return errors.Join(errs...)
}
