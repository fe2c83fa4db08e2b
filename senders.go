package jinglesdp

import "fmt"

// Senders declares which party transmits media on a content. The set covers
// the four role-relative modes (initiator, responder, both, none) and the
// four standard SDP direction keywords they translate to and from; the
// resolver table below runs in either direction. The zero value means no
// declaration was made.
type Senders int

const (
	// SendersInitiator indicates only the session initiator transmits.
	SendersInitiator Senders = iota + 1

	// SendersResponder indicates only the session responder transmits.
	SendersResponder

	// SendersBoth indicates both parties transmit.
	SendersBoth

	// SendersNone indicates neither party transmits.
	SendersNone

	// SendersRecvonly is the standard SDP keyword for receive-only media.
	SendersRecvonly

	// SendersSendonly is the standard SDP keyword for send-only media.
	SendersSendonly

	// SendersSendrecv is the standard SDP keyword for bidirectional media.
	SendersSendrecv

	// SendersInactive is the standard SDP keyword for inactive media.
	SendersInactive
)

// This is done this way because of a linter.
const (
	sendersInitiatorStr = "initiator"
	sendersResponderStr = "responder"
	sendersBothStr      = "both"
	sendersNoneStr      = "none"
	sendersRecvonlyStr  = "recvonly"
	sendersSendonlyStr  = "sendonly"
	sendersSendrecvStr  = "sendrecv"
	sendersInactiveStr  = "inactive"
)

// NewSenders takes a string and converts it to Senders
func NewSenders(raw string) (Senders, error) {
	switch raw {
	case sendersInitiatorStr:
		return SendersInitiator, nil
	case sendersResponderStr:
		return SendersResponder, nil
	case sendersBothStr:
		return SendersBoth, nil
	case sendersNoneStr:
		return SendersNone, nil
	case sendersRecvonlyStr:
		return SendersRecvonly, nil
	case sendersSendonlyStr:
		return SendersSendonly, nil
	case sendersSendrecvStr:
		return SendersSendrecv, nil
	case sendersInactiveStr:
		return SendersInactive, nil
	default:
		return 0, fmt.Errorf("%w: senders %s", ErrUnknownType, raw)
	}
}

func (s Senders) String() string {
	switch s {
	case SendersInitiator:
		return sendersInitiatorStr
	case SendersResponder:
		return sendersResponderStr
	case SendersBoth:
		return sendersBothStr
	case SendersNone:
		return sendersNoneStr
	case SendersRecvonly:
		return sendersRecvonlyStr
	case SendersSendonly:
		return sendersSendonlyStr
	case SendersSendrecv:
		return sendersSendrecvStr
	case SendersInactive:
		return sendersInactiveStr
	default:
		return ErrUnknownType.Error()
	}
}

type sendersKey struct {
	role      Role
	direction Direction
	senders   Senders
}

// sendersTable is the full enumeration of sender translations. Modes map to
// SDP keywords, keywords map back to role-relative modes; which half applies
// follows from the input. Kept flat so every mapping is auditable.
var sendersTable = map[sendersKey]Senders{
	{RoleInitiator, DirectionIncoming, SendersInitiator}: SendersRecvonly,
	{RoleInitiator, DirectionIncoming, SendersResponder}: SendersSendonly,
	{RoleInitiator, DirectionIncoming, SendersBoth}:      SendersSendrecv,
	{RoleInitiator, DirectionIncoming, SendersNone}:      SendersInactive,
	{RoleInitiator, DirectionIncoming, SendersRecvonly}:  SendersInitiator,
	{RoleInitiator, DirectionIncoming, SendersSendonly}:  SendersResponder,
	{RoleInitiator, DirectionIncoming, SendersSendrecv}:  SendersBoth,
	{RoleInitiator, DirectionIncoming, SendersInactive}:  SendersNone,

	{RoleInitiator, DirectionOutgoing, SendersInitiator}: SendersSendonly,
	{RoleInitiator, DirectionOutgoing, SendersResponder}: SendersRecvonly,
	{RoleInitiator, DirectionOutgoing, SendersBoth}:      SendersSendrecv,
	{RoleInitiator, DirectionOutgoing, SendersNone}:      SendersInactive,
	{RoleInitiator, DirectionOutgoing, SendersRecvonly}:  SendersResponder,
	{RoleInitiator, DirectionOutgoing, SendersSendonly}:  SendersInitiator,
	{RoleInitiator, DirectionOutgoing, SendersSendrecv}:  SendersBoth,
	{RoleInitiator, DirectionOutgoing, SendersInactive}:  SendersNone,

	{RoleResponder, DirectionIncoming, SendersInitiator}: SendersSendonly,
	{RoleResponder, DirectionIncoming, SendersResponder}: SendersRecvonly,
	{RoleResponder, DirectionIncoming, SendersBoth}:      SendersSendrecv,
	{RoleResponder, DirectionIncoming, SendersNone}:      SendersInactive,
	{RoleResponder, DirectionIncoming, SendersRecvonly}:  SendersResponder,
	{RoleResponder, DirectionIncoming, SendersSendonly}:  SendersInitiator,
	{RoleResponder, DirectionIncoming, SendersSendrecv}:  SendersBoth,
	{RoleResponder, DirectionIncoming, SendersInactive}:  SendersNone,

	{RoleResponder, DirectionOutgoing, SendersInitiator}: SendersRecvonly,
	{RoleResponder, DirectionOutgoing, SendersResponder}: SendersSendonly,
	{RoleResponder, DirectionOutgoing, SendersBoth}:      SendersSendrecv,
	{RoleResponder, DirectionOutgoing, SendersNone}:      SendersInactive,
	{RoleResponder, DirectionOutgoing, SendersRecvonly}:  SendersInitiator,
	{RoleResponder, DirectionOutgoing, SendersSendonly}:  SendersResponder,
	{RoleResponder, DirectionOutgoing, SendersSendrecv}:  SendersBoth,
	{RoleResponder, DirectionOutgoing, SendersInactive}:  SendersNone,
}

// resolveSenders translates a declared sender mode into the keyword for the
// given local role and negotiation direction. Unset or unmapped input
// resolves to the zero value; callers decide between a sendrecv default (the
// media-level sender attribute) and omission (extmap sender suffixes).
func resolveSenders(role Role, direction Direction, senders Senders) Senders {
	return sendersTable[sendersKey{role, direction, senders}]
}
