// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package bios

import (
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		exec   *fakeExecutor
		runner *Runner
	)

	BeforeEach(func() {
		exec = &fakeExecutor{}
		runner = NewRunner(GinkgoLogr, exec, "/mnt/bios/quanta_A14")
	})

	DescribeTable("runs the script of the job",
		func(ctx SpecContext, jobType JobType, path string) {
			Expect(runner.Run(ctx, jobType)).To(Succeed())
			Expect(exec.ran).To(Equal([]string{path}))
			Expect(exec.opts).To(Equal(1))
		},
		Entry("upgrade", UpgradeJobType, "/mnt/bios/quanta_A14/flash_bios.sh"),
		Entry("decom settings", DecomSettingsJobType, "/mnt/bios/quanta_A14/write_bios_settings_decom.sh"),
		Entry("customer settings", CustomerSettingsJobType, "/mnt/bios/quanta_A14/write_bios_settings_customer.sh"),
	)

	It("fails on a non-zero exit", func(ctx SpecContext) {
		exec.err = &executor.ExitCodeError{Command: "flash_bios.sh", ExitCode: 3}
		err := runner.Run(ctx, UpgradeJobType)
		Expect(err).To(MatchError(ContainSubstring("BIOS job upgrade failed")))
		Expect(err).To(MatchError(exec.err))
	})

	It("rejects unknown jobs without running anything", func(ctx SpecContext) {
		Expect(runner.Run(ctx, "reset")).To(MatchError("unknown job type: reset"))
		Expect(exec.ran).To(BeEmpty())
	})
})
