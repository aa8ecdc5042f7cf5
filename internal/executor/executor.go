// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package executor runs vendor tools and captures their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	utilexec "k8s.io/utils/exec"
)

// Result is the fully buffered output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs a command to completion.
type Executor interface {
	Execute(ctx context.Context, name string, args []string, opts ...Option) (Result, error)
}

type options struct {
	exitCodes []int
}

// Option configures a single Execute call.
type Option func(*options)

// CheckExitCode makes Execute fail unless the command exits with one of the
// given codes. Without it a non-zero exit is only reported in Result.
func CheckExitCode(codes ...int) Option {
	return func(o *options) {
		if len(codes) == 0 {
			codes = []int{0}
		}
		o.exitCodes = codes
	}
}

// ExitCodeError is returned when a command exits with an unexpected code.
type ExitCodeError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}

type defaultExecutor struct {
	exec utilexec.Interface
	log  logr.Logger
}

// New returns an Executor spawning real processes.
func New(log logr.Logger) Executor {
	return &defaultExecutor{
		exec: utilexec.New(),
		log:  log,
	}
}

func (e *defaultExecutor) Execute(ctx context.Context, name string, args []string, opts ...Option) (Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var stdout, stderr bytes.Buffer
	cmd := e.exec.CommandContext(ctx, name, args...)
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	e.log.V(1).Info("Executing command", "command", name, "args", args)
	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr utilexec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("failed to run %s: %w", name, err)
		}
		result.ExitCode = exitErr.ExitStatus()
	}
	e.log.V(1).Info("Command finished", "command", name, "exitCode", result.ExitCode)

	if o.exitCodes != nil && !slices.Contains(o.exitCodes, result.ExitCode) {
		return result, &ExitCodeError{
			Command:  strings.Join(append([]string{name}, args...), " "),
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}
	return result, nil
}
