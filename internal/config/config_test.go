// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ironcore-dev/metal-hardware-manager/internal/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	write := func(contents string) string {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte(contents), 0600)).To(Succeed())
		return path
	}

	It("provides valid defaults", func() {
		cfg := config.Default()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.WarpDrive.CLI).To(Equal("/mnt/LSI/12.22.00.00/ddoemcli"))
		Expect(cfg.WarpDrive.FirmwarePackage).To(Equal("NWD-BLP4-1600_12.22.00.00.bin"))
		Expect(cfg.Ports.ExpectedInterfaceIndexes).To(BeEmpty())
	})

	It("returns the defaults without a path", func() {
		Expect(config.Load("")).To(Equal(config.Default()))
	})

	It("overlays the file on the defaults", func() {
		cfg, err := config.Load(write(`
biosDir: /opt/bios
productNames: ["S2PH-1U"]
warpDrive:
  firmwareVersion: 13.00.00.00
ports:
  expectedInterfaceIndexes: [0, 1]
  lldpBackend: lldpctl
  lldpTimeout: 45s
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.BIOSDir).To(Equal("/opt/bios"))
		Expect(cfg.ProductNames).To(ConsistOf("S2PH-1U"))
		Expect(cfg.WarpDrive.FirmwareVersion).To(Equal("13.00.00.00"))
		Expect(cfg.WarpDrive.Model).To(Equal("NWD-BLP4-1600"))
		Expect(cfg.Ports.ExpectedInterfaceIndexes).To(Equal([]int{0, 1}))
		Expect(cfg.Ports.LLDPBackend).To(Equal(config.LLDPBackendLLDPCTL))
		Expect(cfg.Ports.LLDPTimeout.Duration).To(Equal(45 * time.Second))
	})

	It("rejects unknown fields", func() {
		_, err := config.Load(write("warpDriveModel: NWD-BLP4-3200\n"))
		Expect(err).To(MatchError(ContainSubstring("failed to unmarshal config")))
	})

	It("reports every invalid field", func() {
		_, err := config.Load(write(`
sysPath: ""
ports:
  expectedInterfaceIndexes: [-1]
  lldpBackend: snmp
  lldpTimeout: 0s
`))
		Expect(err).To(MatchError(ContainSubstring("sysPath must not be empty")))
		Expect(err).To(MatchError(ContainSubstring("negative index -1")))
		Expect(err).To(MatchError(ContainSubstring(`ports.lldpBackend "snmp"`)))
		Expect(err).To(MatchError(ContainSubstring("ports.lldpTimeout must be positive")))
	})

	It("fails for a missing file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("failed to read config")))
	})
})
