package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		description string
		args        []Arg
		want        error
	}{
		{
			description: "no args",
		},
		{
			description: "required then optional",
			args:        []Arg{{Name: "a", Required: true}, {Name: "b"}},
		},
		{
			description: "required then rest",
			args:        []Arg{{Name: "user", Required: true}, {Name: "text", Required: true, Rest: true}},
		},
		{
			description: "optional then optional rest",
			args:        []Arg{{Name: "a"}, {Name: "b", Rest: true}},
		},
		{
			description: "arg after rest",
			args:        []Arg{{Name: "text", Required: true, Rest: true}, {Name: "b"}},
			want:        ErrArgPosition,
		},
		{
			description: "required after optional",
			args:        []Arg{{Name: "a"}, {Name: "b", Required: true}},
			want:        ErrArgPosition,
		},
		{
			description: "required rest after optional",
			args:        []Arg{{Name: "a"}, {Name: "b", Required: true, Rest: true}},
			want:        ErrArgPosition,
		},
		{
			description: "duplicate names",
			args:        []Arg{{Name: "a", Required: true}, {Name: "a"}},
			want:        ErrDuplicateArg,
		},
		{
			description: "typed rest arg",
			args:        []Arg{{Name: "a", Rest: true, Type: TypeInt}},
			want:        ErrRestArgTypeNotAllowed,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := Validate(&Command{Name: "test", Args: testCase.args})

			if testCase.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, testCase.want)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	err := Validate(&Command{Name: "test", Args: []Arg{{Name: "text", Rest: true}, {Name: "extra"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positioned after rest arg")

	err = Validate(&Command{Name: "test", Args: []Arg{{Name: "opt"}, {Name: "req", Required: true}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required arg req positioned after optional arg")
}
