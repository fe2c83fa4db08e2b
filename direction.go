package jinglesdp

import "fmt"

// Direction identifies whether the description being serialized travels
// toward the local party or away from it. Together with Role it decides how
// role-relative sender declarations map onto SDP direction keywords.
type Direction int

const (
	// DirectionIncoming indicates the description was produced by the
	// remote party.
	DirectionIncoming Direction = iota + 1

	// DirectionOutgoing indicates the description is being produced by the
	// local party.
	DirectionOutgoing
)

// This is done this way because of a linter.
const (
	directionIncomingStr = "incoming"
	directionOutgoingStr = "outgoing"
)

// NewDirection takes a string and converts it to Direction
func NewDirection(raw string) (Direction, error) {
	switch raw {
	case directionIncomingStr:
		return DirectionIncoming, nil
	case directionOutgoingStr:
		return DirectionOutgoing, nil
	default:
		return 0, fmt.Errorf("%w: direction %s", ErrUnknownType, raw)
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionIncoming:
		return directionIncomingStr
	case DirectionOutgoing:
		return directionOutgoingStr
	default:
		return ErrUnknownType.Error()
	}
}
