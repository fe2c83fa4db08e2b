package jinglesdp

import (
	"strconv"
	"strings"
)

// Candidate is one ICE candidate record. The formatter performs no
// validation of addresses or ports, values are passed through verbatim.
type Candidate struct {
	Foundation string
	Component  uint16
	Protocol   Protocol
	Priority   uint32
	IP         string
	Port       uint16
	Type       CandidateType

	// RelatedAddress and RelatedPort are only emitted for reflexive and
	// relay candidates, and only when both are set.
	RelatedAddress string
	RelatedPort    uint16

	// TCPType is only emitted for TCP candidates.
	TCPType string

	// Generation defaults to 0.
	Generation int
}

// Marshal renders the candidate as a single a=candidate attribute line,
// without a line terminator.
func (c Candidate) Marshal() string {
	parts := []string{
		c.Foundation,
		strconv.Itoa(int(c.Component)),
		strings.ToUpper(c.Protocol.String()),
		strconv.FormatUint(uint64(c.Priority), 10),
		c.IP,
		strconv.Itoa(int(c.Port)),
		"typ",
		c.Type.String(),
	}

	switch c.Type {
	case CandidateTypeSrflx, CandidateTypePrflx, CandidateTypeRelay:
		if c.RelatedAddress != "" && c.RelatedPort != 0 {
			parts = append(parts,
				"raddr", c.RelatedAddress,
				"rport", strconv.Itoa(int(c.RelatedPort)))
		}
	}

	if c.TCPType != "" && c.Protocol == ProtocolTCP {
		parts = append(parts, "tcptype", c.TCPType)
	}

	// generation stays the trailing token; deployed peers expect it there
	// even though the grammar allows extensions in any order
	parts = append(parts, "generation", strconv.Itoa(c.Generation))

	return "a=candidate:" + strings.Join(parts, " ")
}
