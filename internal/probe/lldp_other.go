// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package probe

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
)

type RawLLDPProbe struct{}

func NewRawLLDPProbe(_ logr.Logger, _ time.Duration) *RawLLDPProbe {
	return &RawLLDPProbe{}
}

func (p *RawLLDPProbe) Probe(_ context.Context, _ []string) (lldp.Info, error) {
	return nil, errors.New("raw LLDP capture is only supported on linux")
}
