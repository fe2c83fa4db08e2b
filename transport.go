package jinglesdp

// Transport carries the ICE credentials, DTLS fingerprints, candidates and
// SCTP maps of one content. Empty optional fields suppress their lines.
type Transport struct {
	UFrag string // a=ice-ufrag
	Pwd   string // a=ice-pwd

	Fingerprints []Fingerprint
	Candidates   []Candidate
	SCTP         []SCTPMap
}

// Fingerprint is one DTLS certificate fingerprint. Every fingerprint gets
// its own a=fingerprint line; only the first declared Setup role produces an
// a=setup line, there is a single DTLS association per media block.
type Fingerprint struct {
	Hash  string // e.g. "sha-256"
	Value string // hex digest, emitted verbatim
	Setup Setup  // zero value declares no role
}

// SCTPMap is one a=sctpmap entry of a datachannel content. Its numbers stay
// strings, they are emitted verbatim on the m= and a=sctpmap lines.
type SCTPMap struct {
	Number   string
	Protocol string // e.g. "webrtc-datachannel"
	Streams  string
}
