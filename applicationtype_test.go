package jinglesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApplicationType(t *testing.T) {
	testCases := []struct {
		typeString   string
		shouldFail   bool
		expectedType ApplicationType
	}{
		{ErrUnknownType.Error(), true, ApplicationType(0)},
		{"rtp", false, ApplicationTypeRTP},
		{"datachannel", false, ApplicationTypeDataChannel},
	}

	for i, testCase := range testCases {
		actual, err := NewApplicationType(testCase.typeString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedType,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestApplicationType_String(t *testing.T) {
	testCases := []struct {
		applicationType ApplicationType
		expectedString  string
	}{
		{ApplicationType(0), ErrUnknownType.Error()},
		{ApplicationTypeRTP, "rtp"},
		{ApplicationTypeDataChannel, "datachannel"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.applicationType.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}
