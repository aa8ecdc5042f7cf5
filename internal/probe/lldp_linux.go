// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/metal-hardware-manager/internal/lldp"
	"golang.org/x/sys/unix"
)

// maximum jumbo frame
const frameBufferSize = 9216

// RawLLDPProbe listens for LLDP frames on AF_PACKET sockets, one per
// interface, and keeps the first decodable frame each interface receives.
type RawLLDPProbe struct {
	log     logr.Logger
	timeout time.Duration
}

func NewRawLLDPProbe(log logr.Logger, timeout time.Duration) *RawLLDPProbe {
	return &RawLLDPProbe{log: log, timeout: timeout}
}

func (p *RawLLDPProbe) Probe(ctx context.Context, interfaces []string) (lldp.Info, error) {
	info := make(lldp.Info, len(interfaces))
	sockets := make(map[int32]string, len(interfaces))
	defer func() {
		for fd := range sockets {
			_ = unix.Close(int(fd))
		}
	}()

	for _, name := range interfaces {
		info[name] = nil
		fd, err := openLLDPSocket(name)
		if err != nil {
			return nil, fmt.Errorf("failed to listen for LLDP on %s: %w", name, err)
		}
		sockets[int32(fd)] = name
	}

	deadline := time.Now().Add(p.timeout)
	pending := make(map[int32]string, len(sockets))
	for fd, name := range sockets {
		pending[fd] = name
	}
	buf := make([]byte, frameBufferSize)

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		// Wake up at least once a second to notice cancellation.
		wait := min(remaining, time.Second)

		fds := make([]unix.PollFd, 0, len(pending))
		for fd := range pending {
			fds = append(fds, unix.PollFd{Fd: fd, Events: unix.POLLIN})
		}
		if _, err := unix.Poll(fds, int(wait.Milliseconds())); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return nil, fmt.Errorf("failed to poll LLDP sockets: %w", err)
		}

		for _, pfd := range fds {
			if pfd.Revents&unix.POLLIN == 0 {
				continue
			}
			name := pending[pfd.Fd]
			n, from, err := unix.Recvfrom(int(pfd.Fd), buf, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to read LLDP frame on %s: %w", name, err)
			}
			if outgoing(from) {
				continue
			}
			tlvs, err := lldp.ParseFrame(buf[:n])
			if err != nil {
				p.log.Info("Ignoring undecodable LLDP frame", "interface", name, "error", err.Error())
				continue
			}
			info[name] = tlvs
			delete(pending, pfd.Fd)
		}
	}

	for _, name := range pending {
		p.log.Info("No LLDP neighbor answered", "interface", name, "timeout", p.timeout)
	}
	return info, nil
}

// outgoing reports whether the frame was sent by the host itself, e.g. by
// an lldpd running alongside.
func outgoing(from unix.Sockaddr) bool {
	sa, ok := from.(*unix.SockaddrLinklayer)
	return ok && sa.Pkttype == unix.PACKET_OUTGOING
}

func openLLDPSocket(name string) (int, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return -1, err
	}

	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(lldp.EtherType)))
	if err != nil {
		return -1, err
	}
	if err := unix.Bind(fd, &unix.SockaddrLinklayer{Protocol: htons(lldp.EtherType), Ifindex: iface.Index}); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}

	mreq := unix.PacketMreq{
		Ifindex: int32(iface.Index),
		Type:    unix.PACKET_MR_MULTICAST,
		Alen:    uint16(len(lldp.MulticastAddress)),
	}
	copy(mreq.Address[:], lldp.MulticastAddress[:])
	if err := unix.SetsockoptPacketMreq(fd, unix.SOL_PACKET, unix.PACKET_ADD_MEMBERSHIP, &mreq); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

func htons(v uint16) uint16 {
	return v<<8 | v>>8
}
