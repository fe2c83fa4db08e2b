package jinglesdp

import "fmt"

// Role identifies which side of the signaling session the local party is.
type Role int

const (
	// RoleInitiator indicates the local party started the session.
	RoleInitiator Role = iota + 1

	// RoleResponder indicates the local party accepted the session.
	RoleResponder
)

// This is done this way because of a linter.
const (
	roleInitiatorStr = "initiator"
	roleResponderStr = "responder"
)

// NewRole takes a string and converts it to Role
func NewRole(raw string) (Role, error) {
	switch raw {
	case roleInitiatorStr:
		return RoleInitiator, nil
	case roleResponderStr:
		return RoleResponder, nil
	default:
		return 0, fmt.Errorf("%w: role %s", ErrUnknownType, raw)
	}
}

func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return roleInitiatorStr
	case RoleResponder:
		return roleResponderStr
	default:
		return ErrUnknownType.Error()
	}
}
