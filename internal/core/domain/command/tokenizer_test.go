package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		description string
		text        string
		prelude     string
		wantOK      bool
		wantName    string
		wantArgs    []string
	}{
		{
			description: "with prelude",
			text:        "!ping hello there",
			prelude:     "!",
			wantOK:      true,
			wantName:    "ping",
			wantArgs:    []string{"hello", "there"},
		},
		{
			description: "without prelude keeps leading characters",
			text:        "!ping hello there",
			wantOK:      true,
			wantName:    "!ping",
			wantArgs:    []string{"hello", "there"},
		},
		{
			description: "no args",
			text:        "!ping",
			prelude:     "!",
			wantOK:      true,
			wantName:    "ping",
		},
		{
			description: "trailing whitespace",
			text:        "!ping   ",
			prelude:     "!",
			wantOK:      true,
			wantName:    "ping",
		},
		{
			description: "whitespace runs",
			text:        "!pet  benny \t 3\n",
			prelude:     "!",
			wantOK:      true,
			wantName:    "pet",
			wantArgs:    []string{"benny", "3"},
		},
		{
			description: "space between prelude and keyword",
			text:        "! ping",
			prelude:     "!",
			wantOK:      true,
			wantName:    "ping",
		},
		{
			description: "only one prelude is stripped",
			text:        "!!ping",
			prelude:     "!",
			wantOK:      true,
			wantName:    "!ping",
		},
		{
			description: "missing prelude",
			text:        "ping hello there",
			prelude:     "!",
		},
		{
			description: "leading whitespace counts against prelude",
			text:        "  !ping hello there",
			prelude:     "!",
		},
		{
			description: "prelude containing whitespace",
			text:        " !ping hello there",
			prelude:     " !",
			wantOK:      true,
			wantName:    "ping",
			wantArgs:    []string{"hello", "there"},
		},
		{
			description: "prelude only",
			text:        "!",
			prelude:     "!",
		},
		{
			description: "blank message",
			text:        "   ",
		},
		{
			description: "multi-character prelude",
			text:        "bot, roll 20",
			prelude:     "bot,",
			wantOK:      true,
			wantName:    "roll",
			wantArgs:    []string{"20"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			inv, ok := Tokenize(testCase.text, testCase.prelude)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.wantName, inv.Name)
			if len(testCase.wantArgs) == 0 {
				assert.Empty(t, inv.Args)
			} else {
				assert.Equal(t, testCase.wantArgs, inv.Args)
			}
		})
	}
}
