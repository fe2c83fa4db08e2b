package jinglesdp

import (
	"fmt"
	"strings"
)

// Protocol indicates the transport protocol of an ICE candidate.
type Protocol int

const (
	// ProtocolUDP indicates the candidate uses a UDP transport.
	ProtocolUDP Protocol = iota + 1

	// ProtocolTCP indicates the candidate uses a TCP transport.
	ProtocolTCP
)

// This is done this way because of a linter.
const (
	protocolUDPStr = "udp"
	protocolTCPStr = "tcp"
)

// NewProtocol takes a string and converts it to Protocol. Matching is
// case-insensitive, candidates signal both "udp" and "UDP" in the wild.
func NewProtocol(raw string) (Protocol, error) {
	switch {
	case strings.EqualFold(protocolUDPStr, raw):
		return ProtocolUDP, nil
	case strings.EqualFold(protocolTCPStr, raw):
		return ProtocolTCP, nil
	default:
		return 0, fmt.Errorf("%w: protocol %s", ErrUnknownType, raw)
	}
}

func (p Protocol) String() string {
	switch p {
	case ProtocolUDP:
		return protocolUDPStr
	case ProtocolTCP:
		return protocolTCPStr
	default:
		return ErrUnknownType.Error()
	}
}
