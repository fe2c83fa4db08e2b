package jinglesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		roleString   string
		shouldFail   bool
		expectedRole Role
	}{
		{ErrUnknownType.Error(), true, Role(0)},
		{"initiator", false, RoleInitiator},
		{"responder", false, RoleResponder},
	}

	for i, testCase := range testCases {
		actual, err := NewRole(testCase.roleString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedRole,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestRole_String(t *testing.T) {
	testCases := []struct {
		role           Role
		expectedString string
	}{
		{Role(0), ErrUnknownType.Error()},
		{RoleInitiator, "initiator"},
		{RoleResponder, "responder"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.role.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}
