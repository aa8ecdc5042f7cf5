// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"errors"

	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ShredEraser", func() {
	It("shreds the device", func(ctx SpecContext) {
		exec := &fakeExecutor{}
		Expect(NewShredEraser(GinkgoLogr, exec).Erase(ctx, registry.BlockDevice{Name: "/dev/sda"})).To(Succeed())
		Expect(exec.calls).To(Equal([]string{"shred --force --zero --verbose --iterations 1 /dev/sda"}))
	})

	It("wraps failures", func(ctx SpecContext) {
		exec := &fakeExecutor{err: errors.New("exit status 1")}
		err := NewShredEraser(GinkgoLogr, exec).Erase(ctx, registry.BlockDevice{Name: "/dev/sda"})
		Expect(err).To(MatchError("failed to shred /dev/sda: exit status 1"))
	})
})
