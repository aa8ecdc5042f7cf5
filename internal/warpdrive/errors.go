// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package warpdrive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBlockDeviceErase is matched by every EraseError.
	ErrBlockDeviceErase = errors.New("block device erase failed")

	ErrListing             = errors.New("unable to parse controller listing")
	ErrPCIPath             = errors.New("unable to derive PCI address")
	ErrNoController        = errors.New("no controller matches PCI address")
	ErrAmbiguousController = errors.New("multiple controllers match PCI address")
	ErrFormatFailed        = errors.New("format did not report success")
)

// EraseError is returned for every failed WarpDrive erase.
type EraseError struct {
	Device     string
	PCIAddress string
	Reason     error
	Output     string
}

func (e *EraseError) Error() string {
	msg := fmt.Sprintf("%s: device %s", ErrBlockDeviceErase, e.Device)
	if e.PCIAddress != "" {
		msg += fmt.Sprintf(" (PCI address %s)", e.PCIAddress)
	}
	msg += ": " + e.Reason.Error()
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *EraseError) Unwrap() []error {
	return []error{ErrBlockDeviceErase, e.Reason}
}
