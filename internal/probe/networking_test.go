// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HostInterfaces", func() {
	var (
		sysPath    string
		interfaces []net.Interface
		lister     *HostInterfaces
	)

	physical := func(name, pciAddress string) {
		deviceDir := filepath.Join(sysPath, "devices", "pci0000:00", pciAddress)
		Expect(os.MkdirAll(filepath.Join(deviceDir, "net", name), 0755)).To(Succeed())
		Expect(os.Symlink(fmt.Sprintf("../../../%s", pciAddress), filepath.Join(deviceDir, "net", name, "device"))).To(Succeed())
		Expect(os.Symlink(fmt.Sprintf("../../devices/pci0000:00/%s/net/%s", pciAddress, name), filepath.Join(sysPath, "class", "net", name))).To(Succeed())
	}

	virtual := func(name string) {
		Expect(os.MkdirAll(filepath.Join(sysPath, "devices", "virtual", "net", name), 0755)).To(Succeed())
		Expect(os.Symlink(fmt.Sprintf("../../devices/virtual/net/%s", name), filepath.Join(sysPath, "class", "net", name))).To(Succeed())
	}

	BeforeEach(func() {
		sysPath = GinkgoT().TempDir()
		Expect(os.MkdirAll(filepath.Join(sysPath, "class", "net"), 0755)).To(Succeed())

		physical("eth0", "0000:00:1f.6")
		physical("eth1", "0000:00:1f.7")
		virtual("bond0")

		interfaces = []net.Interface{
			{Index: 1, Name: "lo", Flags: net.FlagLoopback | net.FlagUp},
			{Index: 2, Name: "eth0", HardwareAddr: net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, Flags: net.FlagUp | net.FlagRunning},
			{Index: 3, Name: "eth1", HardwareAddr: net.HardwareAddr{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa}},
			{Index: 4, Name: "bond0", HardwareAddr: net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, Flags: net.FlagUp},
			{Index: 5, Name: "tun0", Flags: net.FlagUp},
			{Index: 6, Name: "docker0", Flags: net.FlagUp},
		}

		lister = NewHostInterfaces(sysPath)
		lister.interfaces = func() ([]net.Interface, error) { return interfaces, nil }
	})

	It("lists only physical interfaces, including down ones", func() {
		result, err := lister.ListNetworkInterfaces()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal([]registry.NetworkInterface{
			{Name: "eth0", MACAddress: "aa:bb:cc:dd:ee:ff", CarrierStatus: "up"},
			{Name: "eth1", MACAddress: "ff:ee:dd:cc:bb:aa", CarrierStatus: "down"},
		}))
	})

	It("skips interfaces missing from sysfs", func() {
		interfaces = append(interfaces, net.Interface{Index: 7, Name: "eth9"})
		result, err := lister.ListNetworkInterfaces()
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(2))
	})

	It("returns the enumeration error", func() {
		lister.interfaces = func() ([]net.Interface, error) { return nil, errors.New("iface error") }
		_, err := lister.ListNetworkInterfaces()
		Expect(err).To(MatchError("iface error"))
	})
})
