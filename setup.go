package jinglesdp

import "fmt"

// Setup is the DTLS connection setup role carried on a fingerprint, as
// signaled by the a=setup attribute. The zero value means no role was
// declared.
type Setup int

const (
	// SetupActpass indicates the endpoint accepts either connection role.
	SetupActpass Setup = iota + 1

	// SetupActive indicates the endpoint will initiate the connection.
	SetupActive

	// SetupPassive indicates the endpoint will accept an incoming
	// connection.
	SetupPassive
)

// This is done this way because of a linter.
const (
	setupActpassStr = "actpass"
	setupActiveStr  = "active"
	setupPassiveStr = "passive"
)

// NewSetup takes a string and converts it to Setup
func NewSetup(raw string) (Setup, error) {
	switch raw {
	case setupActpassStr:
		return SetupActpass, nil
	case setupActiveStr:
		return SetupActive, nil
	case setupPassiveStr:
		return SetupPassive, nil
	default:
		return 0, fmt.Errorf("%w: setup role %s", ErrUnknownType, raw)
	}
}

func (s Setup) String() string {
	switch s {
	case SetupActpass:
		return setupActpassStr
	case SetupActive:
		return setupActiveStr
	case SetupPassive:
		return setupPassiveStr
	default:
		return ErrUnknownType.Error()
	}
}
