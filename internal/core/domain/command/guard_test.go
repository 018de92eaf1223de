package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecision(t *testing.T) {
	testCases := []struct {
		description   string
		decision      Decision
		wantPermits   bool
		wantDenied    bool
		wantUndecided bool
		wantReason    string
	}{
		{
			description:   "zero value is undecided",
			decision:      Decision{},
			wantUndecided: true,
		},
		{
			description: "authorized",
			decision:    Authorized(),
			wantPermits: true,
		},
		{
			description: "denied with reason",
			decision:    Denied("not allowed"),
			wantDenied:  true,
			wantReason:  "not allowed",
		},
		{
			description: "denied without reason",
			decision:    Denied(""),
			wantDenied:  true,
		},
		{
			description: "deny then allow stays denied",
			decision:    Decision{}.Deny("not allowed").Allow(),
			wantDenied:  true,
			wantReason:  "not allowed",
		},
		{
			description: "allow then deny is denied",
			decision:    Authorized().Deny("changed my mind"),
			wantDenied:  true,
			wantReason:  "changed my mind",
		},
		{
			description: "first reason is kept",
			decision:    Denied("first").Deny("second"),
			wantDenied:  true,
			wantReason:  "first",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.wantPermits, testCase.decision.Permits())
			assert.Equal(t, testCase.wantDenied, testCase.decision.IsDenied())
			assert.Equal(t, testCase.wantUndecided, testCase.decision.IsUndecided())
			assert.Equal(t, testCase.wantReason, testCase.decision.Reason())
		})
	}
}
