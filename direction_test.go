package jinglesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDirection(t *testing.T) {
	testCases := []struct {
		directionString   string
		shouldFail        bool
		expectedDirection Direction
	}{
		{ErrUnknownType.Error(), true, Direction(0)},
		{"incoming", false, DirectionIncoming},
		{"outgoing", false, DirectionOutgoing},
	}

	for i, testCase := range testCases {
		actual, err := NewDirection(testCase.directionString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedDirection,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestDirection_String(t *testing.T) {
	testCases := []struct {
		direction      Direction
		expectedString string
	}{
		{Direction(0), ErrUnknownType.Error()},
		{DirectionIncoming, "incoming"},
		{DirectionOutgoing, "outgoing"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.direction.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}
