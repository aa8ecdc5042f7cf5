// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package bios runs the vendor BIOS flashing and settings scripts.
package bios

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
)

type JobType string

const (
	UpgradeJobType          JobType = "upgrade"
	DecomSettingsJobType    JobType = "decom-settings"
	CustomerSettingsJobType JobType = "customer-settings"
)

// JobTypes lists the supported jobs in pipeline order.
var JobTypes = []JobType{UpgradeJobType, DecomSettingsJobType, CustomerSettingsJobType}

var scripts = map[JobType]string{
	UpgradeJobType:          "flash_bios.sh",
	DecomSettingsJobType:    "write_bios_settings_decom.sh",
	CustomerSettingsJobType: "write_bios_settings_customer.sh",
}

// Runner executes BIOS scripts found in a fixed directory.
type Runner struct {
	log  logr.Logger
	exec executor.Executor
	dir  string
}

func NewRunner(log logr.Logger, exec executor.Executor, dir string) *Runner {
	return &Runner{
		log:  log,
		exec: exec,
		dir:  dir,
	}
}

// Script returns the path of the script backing jobType.
func (r *Runner) Script(jobType JobType) (string, error) {
	script, ok := scripts[jobType]
	if !ok {
		return "", fmt.Errorf("unknown job type: %s", jobType)
	}
	return filepath.Join(r.dir, script), nil
}

// Run executes the script of jobType. The script has to exit with 0.
func (r *Runner) Run(ctx context.Context, jobType JobType) error {
	script, err := r.Script(jobType)
	if err != nil {
		return err
	}
	r.log.Info("Running BIOS job", "job", jobType, "script", script)
	if _, err := r.exec.Execute(ctx, script, nil, executor.CheckExitCode(0)); err != nil {
		return fmt.Errorf("BIOS job %s failed: %w", jobType, err)
	}
	return nil
}
