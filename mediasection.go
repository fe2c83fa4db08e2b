package jinglesdp

import (
	"fmt"
	"strconv"
	"strings"
)

// MarshalMedia renders one content as a complete SDP media block, CRLF
// joined with a trailing CRLF. The line order is fixed; downstream SDP
// consumers are sensitive to it.
func (s *Serializer) MarshalMedia(content *Content, opts SerializeOptions) (string, error) {
	lines, err := s.mediaLines(content, opts.withDefaults())
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

func (s *Serializer) mediaLines(content *Content, opts SerializeOptions) ([]string, error) {
	app := &content.Application
	transport := content.Transport
	isData := app.Type == ApplicationTypeDataChannel

	if !isData && transport == nil {
		return nil, fmt.Errorf("%w: content %q", ErrMissingTransport, content.Name)
	}

	var lines []string

	mline := make([]string, 0, 3+len(app.Payloads))
	if isData {
		mline = append(mline, "application", "1", "DTLS/SCTP")
		if transport != nil {
			for _, m := range transport.SCTP {
				mline = append(mline, m.Number)
			}
		}
	} else {
		mline = append(mline, app.Media, "1", mediaProfile(app, transport))
		for _, payload := range app.Payloads {
			mline = append(mline, payload.ID)
		}
	}
	lines = append(lines, "m="+strings.Join(mline, " "))
	lines = append(lines, "c=IN IP4 0.0.0.0")

	if app.Bandwidth != nil && app.Bandwidth.Type != "" && app.Bandwidth.Bandwidth != "" {
		lines = append(lines, "b="+app.Bandwidth.Type+":"+app.Bandwidth.Bandwidth)
	}
	if !isData {
		lines = append(lines, "a=rtcp:1 IN IP4 0.0.0.0")
	}

	if transport != nil {
		if transport.UFrag != "" {
			lines = append(lines, "a=ice-ufrag:"+transport.UFrag)
		}
		if transport.Pwd != "" {
			lines = append(lines, "a=ice-pwd:"+transport.Pwd)
		}

		pushedSetup := false
		for _, fingerprint := range transport.Fingerprints {
			lines = append(lines, "a=fingerprint:"+fingerprint.Hash+" "+fingerprint.Value)
			if fingerprint.Setup != 0 && !pushedSetup {
				// one DTLS association per media block: the first declared
				// setup role wins
				lines = append(lines, "a=setup:"+fingerprint.Setup.String())
				pushedSetup = true
			}
		}

		for _, m := range transport.SCTP {
			lines = append(lines, "a=sctpmap:"+m.Number+" "+m.Protocol+" "+m.Streams)
		}
	}

	if !isData {
		senders := resolveSenders(opts.Role, opts.Direction, content.Senders)
		if senders == 0 {
			senders = SendersSendrecv
		}
		lines = append(lines, "a="+senders.String())
	}
	lines = append(lines, "a=mid:"+content.Name)

	if msid, ok := soleMSID(app.Sources); ok {
		lines = append(lines, "a=msid:"+msid)
	}

	if !isData {
		if app.Mux {
			lines = append(lines, "a=rtcp-mux")
		}
		if app.Rsize {
			lines = append(lines, "a=rtcp-rsize")
		}
	}

	for _, crypto := range app.Encryption {
		line := "a=crypto:" + crypto.Tag + " " + crypto.CipherSuite + " " + crypto.KeyParams
		if crypto.SessionParams != "" {
			line += " " + crypto.SessionParams
		}
		lines = append(lines, line)
	}
	if app.GoogleConference {
		lines = append(lines, "a=x-google-flag:conference")
	}

	if !isData {
		for _, payload := range app.Payloads {
			lines = append(lines, payload.rtpmapLine())
			if len(payload.Parameters) > 0 {
				lines = append(lines, payload.fmtpLine())
			}
			for _, feedback := range payload.Feedback {
				lines = append(lines, feedback.line(payload.ID))
			}
		}
	}
	for _, feedback := range app.Feedback {
		lines = append(lines, feedback.line("*"))
	}

	for _, hdr := range app.HeaderExtensions {
		ext := "a=extmap:" + strconv.Itoa(hdr.ID)
		if senders := resolveSenders(opts.Role, opts.Direction, hdr.Senders); senders != 0 {
			ext += "/" + senders.String()
		}
		lines = append(lines, ext+" "+hdr.URI)
	}

	for _, group := range app.SourceGroups {
		lines = append(lines, "a=ssrc-group:"+group.Semantics+" "+strings.Join(group.Sources, " "))
	}
	for _, source := range app.Sources {
		ssrc := source.SSRC
		if ssrc == "" {
			ssrc = app.SSRC
		}
		for _, param := range source.Parameters {
			line := "a=ssrc:" + ssrc + " " + param.Key
			if param.Value != "" {
				line += ":" + param.Value
			}
			lines = append(lines, line)
		}
	}

	if transport != nil {
		for _, candidate := range transport.Candidates {
			lines = append(lines, candidate.Marshal())
		}
	}

	return lines, nil
}

func mediaProfile(app *Application, transport *Transport) string {
	switch {
	case transport != nil && len(transport.Fingerprints) > 0:
		return "UDP/TLS/RTP/SAVPF"
	case len(app.Encryption) > 0:
		return "RTP/SAVPF"
	default:
		return "RTP/AVPF"
	}
}

// soleMSID collects the msid values declared across every source and
// reports one only when exactly one distinct stream id is present. Zero or
// conflicting declarations suppress the a=msid line.
func soleMSID(sources []Source) (string, bool) {
	seen := make(map[string]struct{})
	msid := ""
	for _, source := range sources {
		for _, param := range source.Parameters {
			if param.Key == "msid" {
				seen[param.Value] = struct{}{}
				msid = param.Value
			}
		}
	}
	if len(seen) != 1 {
		return "", false
	}
	return msid, true
}
