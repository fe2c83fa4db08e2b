// Package jinglesdp serializes a Jingle-style structured session description
// into the SDP text consumed by WebRTC peers.
//
// The model (Session, Content, Payload, Transport, Candidate) is supplied by
// a negotiation-shaping layer that has already decided codec lists, role and
// direction; this package only renders it. Parsing SDP back into the model
// is out of scope.
//
// Serialization is purely functional: the input is never mutated or
// retained, and a Serializer may be used concurrently on independent
// sessions.
package jinglesdp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pion/logging"
	"github.com/pion/randutil"
)

// Serializer renders sessions and contents as SDP text.
type Serializer struct {
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithLoggerFactory sets the logging.LoggerFactory the Serializer draws its
// logger from. Defaults to logging.NewDefaultLoggerFactory().
func WithLoggerFactory(loggerFactory logging.LoggerFactory) SerializerOption {
	return func(s *Serializer) {
		s.loggerFactory = loggerFactory
	}
}

// NewSerializer creates a Serializer with the provided options applied.
func NewSerializer(options ...SerializerOption) *Serializer {
	s := &Serializer{}
	for _, option := range options {
		option(s)
	}
	if s.loggerFactory == nil {
		s.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	s.log = s.loggerFactory.NewLogger("jinglesdp")
	return s
}

// SerializeOptions configures a single marshal call.
type SerializeOptions struct {
	// Role is the local signaling role. Defaults to RoleInitiator.
	Role Role

	// Direction tells whether the description travels toward or away from
	// the local party. Defaults to DirectionOutgoing.
	Direction Direction

	// SessionID overrides the session id of the o= line. When empty the
	// Session's own SID is used, or the current time when that is empty too.
	SessionID string

	// Time overrides the o= timestamp. Falls back to the Session's Time,
	// then to the current time.
	Time time.Time
}

func (o SerializeOptions) withDefaults() SerializeOptions {
	if o.Role == 0 {
		o.Role = RoleInitiator
	}
	if o.Direction == 0 {
		o.Direction = DirectionOutgoing
	}
	return o
}

// MarshalSession renders the whole session as an SDP blob: CRLF joined
// lines with a trailing CRLF, suitable as the sdp field of a session
// description handed to a WebRTC negotiation primitive.
//
// Bundle groups referencing contents the session does not declare and rtp
// contents without a Transport return an error; nothing is emitted in that
// case.
func (s *Serializer) MarshalSession(session *Session, opts SerializeOptions) (string, error) {
	opts = opts.withDefaults()

	declared := make(map[string]struct{}, len(session.Contents))
	for i := range session.Contents {
		declared[session.Contents[i].Name] = struct{}{}
	}
	for _, group := range session.Groups {
		for _, name := range group.Contents {
			if _, ok := declared[name]; !ok {
				return "", fmt.Errorf("%w: group %s member %q",
					ErrUnknownGroupContent, group.Semantics, name)
			}
		}
	}

	sid := opts.SessionID
	if sid == "" {
		sid = session.SID
	}
	if sid == "" {
		sid = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	sessTime := opts.Time
	if sessTime.IsZero() {
		sessTime = session.Time
	}
	if sessTime.IsZero() {
		sessTime = time.Now()
	}

	lines := []string{
		"v=0",
		"o=- " + sid + " " + strconv.FormatInt(sessTime.UnixMilli(), 10) + " IN IP4 0.0.0.0",
		"s=-",
		"t=0 0",
	}

	for i := range session.Contents {
		if len(session.Contents[i].Application.Sources) > 0 {
			lines = append(lines, "a=msid-semantic: WMS *")
			break
		}
	}

	for _, group := range session.Groups {
		lines = append(lines, "a=group:"+group.Semantics+" "+strings.Join(group.Contents, " "))
	}

	for i := range session.Contents {
		mediaLines, err := s.mediaLines(&session.Contents[i], opts)
		if err != nil {
			return "", err
		}
		lines = append(lines, mediaLines...)
	}

	s.log.Tracef("marshaled session %s: %d contents, %d lines",
		sid, len(session.Contents), len(lines))

	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// NewSessionID generates a session id for callers that have no
// signaling-provided sid: a 64-bit quantity with the high bit cleared and
// the remaining bits cryptographically random, as JSEP recommends.
func NewSessionID() (uint64, error) {
	id, err := randutil.CryptoUint64()
	return id &^ (uint64(1) << 63), err
}
