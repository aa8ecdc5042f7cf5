// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OSFS", func() {
	var dir string

	BeforeEach(func() {
		var err error
		// TempDir may sit behind a symlink itself
		dir, err = filepath.EvalSymlinks(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
	})

	It("resolves a block device link to its device path", func() {
		device := filepath.Join(dir, "devices", "pci0000:00", "0000:00:02.0", "0000:02:00.0", "host3", "block", "sdb")
		Expect(os.MkdirAll(device, 0755)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(dir, "block"), 0755)).To(Succeed())
		Expect(os.Symlink("../devices/pci0000:00/0000:00:02.0/0000:02:00.0/host3/block/sdb", filepath.Join(dir, "block", "sdb"))).To(Succeed())

		Expect(OSFS{}.RealPath(filepath.Join(dir, "block", "sdb"))).To(Equal(device))
	})

	It("fails for dangling links", func() {
		Expect(os.Symlink("missing", filepath.Join(dir, "sdz"))).To(Succeed())
		_, err := OSFS{}.RealPath(filepath.Join(dir, "sdz"))
		Expect(err).To(HaveOccurred())
	})

	It("reads trimmed attribute files", func() {
		Expect(os.WriteFile(filepath.Join(dir, "model"), []byte("NWD-BLP4-1600   \n"), 0644)).To(Succeed())
		Expect(OSFS{}.ReadFile(filepath.Join(dir, "model"))).To(Equal("NWD-BLP4-1600"))
	})

	It("parses integer and boolean attributes", func() {
		Expect(os.WriteFile(filepath.Join(dir, "rotational"), []byte("1\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "size"), []byte("512\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "bogus"), []byte("yes\n"), 0644)).To(Succeed())

		Expect(ToBool(OSFS{}, filepath.Join(dir, "rotational"))).To(BeTrue())
		Expect(ToInt(OSFS{}, filepath.Join(dir, "size"))).To(Equal(512))
		_, err := ToInt(OSFS{}, filepath.Join(dir, "bogus"))
		Expect(err).To(HaveOccurred())
	})
})
