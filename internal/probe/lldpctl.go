// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/api/registry"
	"github.com/ironcore-dev/metal-hardware-manager/internal/executor"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	"k8s.io/apimachinery/pkg/util/wait"
)

// LLDPCTLProbe reads neighbors from a running lldpd through lldpctl. lldpd
// only reports decoded values, so each neighbor is turned back into chassis
// ID, port ID, port description and system name TLVs.
type LLDPCTLProbe struct {
	log      logr.Logger
	exec     executor.Executor
	tool     string
	interval time.Duration
	duration time.Duration
}

func NewLLDPCTLProbe(log logr.Logger, exec executor.Executor, tool string, interval, duration time.Duration) *LLDPCTLProbe {
	return &LLDPCTLProbe{
		log:      log,
		exec:     exec,
		tool:     tool,
		interval: interval,
		duration: duration,
	}
}

// Probe polls lldpctl until every requested interface has a neighbor or the
// duration elapses.
func (p *LLDPCTLProbe) Probe(ctx context.Context, interfaces []string) (lldp.Info, error) {
	var neighbors []registry.LLDPNeighbor
	err := wait.PollUntilContextTimeout(ctx, p.interval, p.duration, true, func(ctx context.Context) (bool, error) {
		result, err := p.exec.Execute(ctx, p.tool, []string{"-f", "json"}, executor.CheckExitCode(0))
		if err != nil {
			return false, fmt.Errorf("running lldpctl encountered a problem: %w", err)
		}
		if strings.TrimSpace(result.Stdout) == "" {
			return false, nil
		}
		neighbors, err = registry.ParseLLDPCTL([]byte(result.Stdout))
		if err != nil {
			return false, fmt.Errorf("can't unmarshal lldpctl output: %w", err)
		}
		return coversAll(neighbors, interfaces), nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil && !wait.Interrupted(err) {
		return nil, err
	}
	if err != nil {
		p.log.Info("Not every interface reported an LLDP neighbor", "duration", p.duration)
	}

	info := make(lldp.Info, len(interfaces))
	for _, name := range interfaces {
		info[name] = nil
	}
	for _, n := range neighbors {
		if _, ok := info[n.Interface]; !ok {
			continue
		}
		info[n.Interface] = append(info[n.Interface], neighborTLVs(n)...)
	}
	return info, nil
}

func coversAll(neighbors []registry.LLDPNeighbor, interfaces []string) bool {
	seen := make(map[string]bool, len(neighbors))
	for _, n := range neighbors {
		seen[n.Interface] = true
	}
	for _, name := range interfaces {
		if !seen[name] {
			return false
		}
	}
	return true
}

func neighborTLVs(n registry.LLDPNeighbor) []lldp.TLV {
	var tlvs []lldp.TLV
	add := func(t int, v string) {
		if v != "" {
			tlvs = append(tlvs, lldp.TLV{Type: t, Value: []byte(v)})
		}
	}
	add(lldp.TypeChassisID, n.ChassisID)
	add(lldp.TypePortID, n.PortID)
	add(lldp.TypePortDescription, n.PortDescription)
	add(lldp.TypeSystemName, n.SystemName)
	return tlvs
}
