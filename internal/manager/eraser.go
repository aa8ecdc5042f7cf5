// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
)

// GenericEraser erases block devices no specialized eraser handles.
type GenericEraser interface {
	Erase(ctx context.Context, dev registry.BlockDevice) error
}

// ShredEraser overwrites the device once with random data and then zeroes.
type ShredEraser struct {
	log  logr.Logger
	exec executor.Executor
}

func NewShredEraser(log logr.Logger, exec executor.Executor) *ShredEraser {
	return &ShredEraser{log: log, exec: exec}
}

func (s *ShredEraser) Erase(ctx context.Context, dev registry.BlockDevice) error {
	s.log.Info("Shredding block device", "device", dev.Name, "size", dev.SizeBytes)
	args := []string{"--force", "--zero", "--verbose", "--iterations", "1", dev.Name}
	if _, err := s.exec.Execute(ctx, "shred", args, executor.CheckExitCode(0)); err != nil {
		return fmt.Errorf("failed to shred %s: %w", dev.Name, err)
	}
	return nil
}
