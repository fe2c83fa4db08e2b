package jinglesdp

import "errors"

var (
	// ErrUnknownType indicates an enum value outside its known set.
	ErrUnknownType = errors.New("unknown")

	// ErrMissingTransport indicates rtp content without a Transport; the
	// ICE and DTLS lines of its media block cannot be produced.
	ErrMissingTransport = errors.New("rtp content has no transport")

	// ErrUnknownGroupContent indicates a bundle group naming a content that
	// the session does not declare.
	ErrUnknownGroupContent = errors.New("group references undeclared content")
)
