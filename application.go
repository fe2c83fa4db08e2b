package jinglesdp

import "strings"

// Application describes what a content carries: the codec list and RTP
// attributes for rtp contents, or the SCTP channel signaling for
// datachannel contents. Optional fields left at their zero value suppress
// the corresponding output lines.
type Application struct {
	Type ApplicationType

	// Media is the media kind of the m= line, "audio" or "video". Only
	// meaningful for rtp contents.
	Media string

	// SSRC is the application-level synchronization source id, used as the
	// fallback for sources that do not carry their own.
	SSRC string

	Mux   bool // a=rtcp-mux
	Rsize bool // a=rtcp-rsize

	Bandwidth        *Bandwidth
	Payloads         []Payload
	Feedback         []Feedback // media-level feedback, targets payload *
	HeaderExtensions []HeaderExtension
	SourceGroups     []SourceGroup
	Sources          []Source
	Encryption       []Crypto

	// GoogleConference emits the a=x-google-flag:conference attribute.
	GoogleConference bool
}

// Bandwidth is an optional b= line. Both fields must be set for the line to
// be emitted.
type Bandwidth struct {
	Type      string // e.g. "AS", "TIAS"
	Bandwidth string
}

// Payload is one codec entry of an rtp content. The id doubles as the RTP
// payload type on the m= line and in every attribute referencing the codec.
type Payload struct {
	ID        string
	Name      string
	Clockrate string

	// Channels is the encoding parameter suffix of the rtpmap line, omitted
	// when empty or "1".
	Channels string

	// Parameters render as the fmtp line; insertion order is preserved on
	// the wire.
	Parameters []Parameter

	Feedback []Feedback
}

// Parameter is an ordered key/value pair. An empty key renders the bare
// value, both in fmtp and ssrc lines.
type Parameter struct {
	Key   string
	Value string
}

// Feedback is one rtcp-fb entry. The "trr-int" type renders its Value
// (default "0") instead of a subtype.
type Feedback struct {
	Type    string
	Subtype string
	Value   string
}

// HeaderExtension is one a=extmap entry. A declared Senders mode is
// resolved against the active role and direction and appended to the id;
// the suffix is omitted when no mode was declared.
type HeaderExtension struct {
	ID      int
	URI     string
	Senders Senders
}

// Source is one SSRC description. Each parameter renders as its own a=ssrc
// line; when SSRC is empty the application-level ssrc is used.
type Source struct {
	SSRC       string
	Parameters []Parameter
}

// SourceGroup is one a=ssrc-group entry.
type SourceGroup struct {
	Semantics string
	Sources   []string
}

// Crypto is one SDES a=crypto entry.
type Crypto struct {
	Tag           string
	CipherSuite   string
	KeyParams     string
	SessionParams string
}

func (p Payload) rtpmapLine() string {
	line := "a=rtpmap:" + p.ID + " " + p.Name + "/" + p.Clockrate
	if p.Channels != "" && p.Channels != "1" {
		line += "/" + p.Channels
	}
	return line
}

func (p Payload) fmtpLine() string {
	params := make([]string, 0, len(p.Parameters))
	for _, param := range p.Parameters {
		if param.Key != "" {
			params = append(params, param.Key+"="+param.Value)
		} else {
			params = append(params, param.Value)
		}
	}
	return "a=fmtp:" + p.ID + " " + strings.Join(params, ";")
}

// line renders the rtcp-fb attribute for the given payload id, which may be
// the wildcard "*" for media-level feedback.
func (f Feedback) line(payloadID string) string {
	if f.Type == "trr-int" {
		value := f.Value
		if value == "" {
			value = "0"
		}
		return "a=rtcp-fb:" + payloadID + " trr-int " + value
	}
	line := "a=rtcp-fb:" + payloadID + " " + f.Type
	if f.Subtype != "" {
		line += " " + f.Subtype
	}
	return line
}
