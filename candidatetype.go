package jinglesdp

import "fmt"

// CandidateType represents the type of an ICE candidate.
type CandidateType int

const (
	// CandidateTypeHost indicates a candidate bound directly to an IP
	// address on the host.
	CandidateTypeHost CandidateType = iota + 1

	// CandidateTypeSrflx indicates a server reflexive candidate, a binding
	// allocated by a NAT and discovered through a STUN server.
	CandidateTypeSrflx

	// CandidateTypePrflx indicates a peer reflexive candidate, a binding
	// allocated by a NAT and discovered from a peer's check.
	CandidateTypePrflx

	// CandidateTypeRelay indicates a candidate obtained from a relay
	// server, such as a TURN server.
	CandidateTypeRelay
)

// This is done this way because of a linter.
const (
	candidateTypeHostStr  = "host"
	candidateTypeSrflxStr = "srflx"
	candidateTypePrflxStr = "prflx"
	candidateTypeRelayStr = "relay"
)

// NewCandidateType takes a string and converts it to CandidateType
func NewCandidateType(raw string) (CandidateType, error) {
	switch raw {
	case candidateTypeHostStr:
		return CandidateTypeHost, nil
	case candidateTypeSrflxStr:
		return CandidateTypeSrflx, nil
	case candidateTypePrflxStr:
		return CandidateTypePrflx, nil
	case candidateTypeRelayStr:
		return CandidateTypeRelay, nil
	default:
		return 0, fmt.Errorf("%w: candidate type %s", ErrUnknownType, raw)
	}
}

func (t CandidateType) String() string {
	switch t {
	case CandidateTypeHost:
		return candidateTypeHostStr
	case CandidateTypeSrflx:
		return candidateTypeSrflxStr
	case CandidateTypePrflx:
		return candidateTypePrflxStr
	case CandidateTypeRelay:
		return candidateTypeRelayStr
	default:
		return ErrUnknownType.Error()
	}
}
