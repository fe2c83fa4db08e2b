package jinglesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_Marshal(t *testing.T) {
	testCases := []struct {
		name      string
		candidate Candidate
		expected  string
	}{
		{
			"host UDP",
			Candidate{
				Foundation: "1",
				Component:  1,
				Protocol:   ProtocolUDP,
				Priority:   2130706431,
				IP:         "10.0.1.1",
				Port:       8998,
				Type:       CandidateTypeHost,
			},
			"a=candidate:1 1 UDP 2130706431 10.0.1.1 8998 typ host generation 0",
		},
		{
			"srflx with related address",
			Candidate{
				Foundation:     "2",
				Component:      1,
				Protocol:       ProtocolUDP,
				Priority:       1694498815,
				IP:             "192.0.2.3",
				Port:           45664,
				Type:           CandidateTypeSrflx,
				RelatedAddress: "10.0.1.1",
				RelatedPort:    8998,
			},
			"a=candidate:2 1 UDP 1694498815 192.0.2.3 45664 typ srflx raddr 10.0.1.1 rport 8998 generation 0",
		},
		{
			"srflx without related address",
			Candidate{
				Foundation: "2",
				Component:  1,
				Protocol:   ProtocolUDP,
				Priority:   1694498815,
				IP:         "192.0.2.3",
				Port:       45664,
				Type:       CandidateTypeSrflx,
			},
			"a=candidate:2 1 UDP 1694498815 192.0.2.3 45664 typ srflx generation 0",
		},
		{
			"host ignores related address",
			Candidate{
				Foundation:     "1",
				Component:      1,
				Protocol:       ProtocolUDP,
				Priority:       2130706431,
				IP:             "10.0.1.1",
				Port:           8998,
				Type:           CandidateTypeHost,
				RelatedAddress: "192.0.2.3",
				RelatedPort:    1234,
			},
			"a=candidate:1 1 UDP 2130706431 10.0.1.1 8998 typ host generation 0",
		},
		{
			"relay with related address and generation",
			Candidate{
				Foundation:     "3",
				Component:      2,
				Protocol:       ProtocolUDP,
				Priority:       16777215,
				IP:             "198.51.100.7",
				Port:           3478,
				Type:           CandidateTypeRelay,
				RelatedAddress: "192.0.2.3",
				RelatedPort:    45664,
				Generation:     2,
			},
			"a=candidate:3 2 UDP 16777215 198.51.100.7 3478 typ relay raddr 192.0.2.3 rport 45664 generation 2",
		},
		{
			"tcp with tcptype",
			Candidate{
				Foundation: "4",
				Component:  1,
				Protocol:   ProtocolTCP,
				Priority:   1518280447,
				IP:         "10.0.1.1",
				Port:       9,
				Type:       CandidateTypeHost,
				TCPType:    "active",
			},
			"a=candidate:4 1 TCP 1518280447 10.0.1.1 9 typ host tcptype active generation 0",
		},
		{
			"udp ignores tcptype",
			Candidate{
				Foundation: "5",
				Component:  1,
				Protocol:   ProtocolUDP,
				Priority:   2130706431,
				IP:         "10.0.1.1",
				Port:       8998,
				Type:       CandidateTypeHost,
				TCPType:    "active",
			},
			"a=candidate:5 1 UDP 2130706431 10.0.1.1 8998 typ host generation 0",
		},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expected,
			testCase.candidate.Marshal(),
			"testCase: %d %s", i, testCase.name,
		)
	}
}
