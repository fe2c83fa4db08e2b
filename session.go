package jinglesdp

import "time"

// Session is the top-level description handed to MarshalSession. All fields
// are read-only for the duration of a marshal call; the serializer retains
// no references afterwards.
type Session struct {
	// SID is the signaling session id, used in the o= line unless the
	// per-call options override it. When both are empty the current time is
	// used instead.
	SID string

	// Time is an optional timestamp for the o= line. When zero the per-call
	// option or the current time is used.
	Time time.Time

	Groups   []Group
	Contents []Content
}

// Group declares a set of contents sharing one underlying transport,
// rendered as an a=group line.
type Group struct {
	// Semantics is the grouping semantics token, typically "BUNDLE".
	Semantics string

	// Contents lists the names (mids) of the grouped contents. Every member
	// must be declared by the session.
	Contents []string
}

// Content is one negotiated media section: a name (mid), a role-relative
// sender declaration, an application description and its transport.
type Content struct {
	Name        string
	Senders     Senders // zero value renders as sendrecv
	Application Application
	Transport   *Transport
}
