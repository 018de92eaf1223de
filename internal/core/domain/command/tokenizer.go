package command

import "strings"

// Invocation is a tokenized command message: the keyword and its raw argument tokens.
type Invocation struct {
	Name string
	Args []string
}

// Tokenize strips one leading prelude from text and splits the rest on whitespace. It reports false
// when text does not start with the prelude or holds no tokens after it. An empty prelude makes every
// non-blank message a command attempt.
func Tokenize(text, prelude string) (Invocation, bool) {
	rest, ok := strings.CutPrefix(text, prelude)
	if !ok {
		return Invocation{}, false
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return Invocation{}, false
	}

	return Invocation{Name: tokens[0], Args: tokens[1:]}, true
}
