package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionID(t *testing.T) {
	testCases := []struct {
		description string
		token       string
		wantID      string
		wantOK      bool
	}{
		{description: "plain mention", token: "<@123>", wantID: "123", wantOK: true},
		{description: "nickname mention", token: "<@!abc123>", wantID: "abc123", wantOK: true},
		{description: "missing closing bracket", token: "<@123", wantOK: false},
		{description: "missing prefix", token: "123>", wantOK: false},
		{description: "empty mention", token: "<@!>", wantOK: false},
		{description: "plain word", token: "weston", wantOK: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			id, ok := MentionID(testCase.token)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.wantID, id)
		})
	}
}

func TestMentionRoundTrip(t *testing.T) {
	id, ok := MentionID(Mention("42"))

	assert.True(t, ok)
	assert.Equal(t, "42", id)
}

func TestMessageHasRole(t *testing.T) {
	msg := &Message{Roles: []string{"Farmer", "member"}}

	assert.True(t, msg.HasRole("farmer"))
	assert.True(t, msg.HasRole("MEMBER"))
	assert.False(t, msg.HasRole("admin"))
	assert.False(t, (&Message{}).HasRole("farmer"))
}

func TestMemberName(t *testing.T) {
	assert.Equal(t, "Benny", (&Member{Username: "benny99", DisplayName: "Benny"}).Name())
	assert.Equal(t, "benny99", (&Member{Username: "benny99"}).Name())
}
