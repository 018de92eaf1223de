package command

import (
	"fmt"
	"strings"
	"unicode"
)

const restPrefix = "..."

// Parse turns a definition such as "play|p <url> [times:Int] [...note]" into a Command. Args keep
// the left-to-right order of the definition. Parse does not validate arg positions; see Validate.
func Parse(definition string) (*Command, error) {
	nameSegment, argSegment := definition, ""
	if i := strings.IndexFunc(definition, unicode.IsSpace); i >= 0 {
		nameSegment, argSegment = definition[:i], definition[i:]
	}

	names := strings.Split(nameSegment, "|")
	if names[0] == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingCommandName, definition)
	}

	cmd := &Command{Name: names[0]}
	for _, alias := range names[1:] {
		if alias != "" {
			cmd.Aliases = append(cmd.Aliases, alias)
		}
	}

	for _, token := range strings.Fields(argSegment) {
		arg, err := parseArg(token)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", cmd.Name, err)
		}
		cmd.Args = append(cmd.Args, arg)
	}

	return cmd, nil
}

func parseArg(token string) (Arg, error) {
	var arg Arg

	last := len(token) - 1
	switch {
	case last > 0 && token[0] == '<' && token[last] == '>':
		arg.Required = true
	case last > 0 && token[0] == '[' && token[last] == ']':
	default:
		return Arg{}, fmt.Errorf("%w: %s", ErrInvalidArgDelimiters, token)
	}

	body := token[1:last]
	if name, ok := strings.CutPrefix(body, restPrefix); ok {
		if strings.Contains(name, ":") {
			return Arg{}, fmt.Errorf("%w: %s", ErrRestArgTypeNotAllowed, token)
		}
		arg.Name = name
		arg.Rest = true
	} else {
		arg.Name, arg.Type, _ = strings.Cut(body, ":")
	}

	if arg.Name == "" {
		return Arg{}, fmt.Errorf("%w: %s", ErrMissingArgName, token)
	}

	return arg, nil
}
