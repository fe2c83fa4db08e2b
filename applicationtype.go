package jinglesdp

import "fmt"

// ApplicationType identifies what a content's application description
// carries: RTP media or an SCTP data channel.
type ApplicationType int

const (
	// ApplicationTypeRTP indicates audio or video carried over RTP.
	ApplicationTypeRTP ApplicationType = iota + 1

	// ApplicationTypeDataChannel indicates an SCTP data channel over DTLS.
	ApplicationTypeDataChannel
)

// This is done this way because of a linter.
const (
	applicationTypeRTPStr         = "rtp"
	applicationTypeDataChannelStr = "datachannel"
)

// NewApplicationType takes a string and converts it to ApplicationType
func NewApplicationType(raw string) (ApplicationType, error) {
	switch raw {
	case applicationTypeRTPStr:
		return ApplicationTypeRTP, nil
	case applicationTypeDataChannelStr:
		return ApplicationTypeDataChannel, nil
	default:
		return 0, fmt.Errorf("%w: application type %s", ErrUnknownType, raw)
	}
}

func (t ApplicationType) String() string {
	switch t {
	case ApplicationTypeRTP:
		return applicationTypeRTPStr
	case ApplicationTypeDataChannel:
		return applicationTypeDataChannelStr
	default:
		return ErrUnknownType.Error()
	}
}
