package command

import "fmt"

// Validate checks arg positions and rejects duplicate arg names.
func Validate(cmd *Command) error {
	optionalSeen := false
	restSeen := false
	names := make(map[string]struct{}, len(cmd.Args))

	for _, arg := range cmd.Args {
		if restSeen {
			return fmt.Errorf("%w: arg %s positioned after rest arg", ErrArgPosition, arg.Name)
		}

		if optionalSeen && arg.Required {
			return fmt.Errorf("%w: required arg %s positioned after optional arg", ErrArgPosition, arg.Name)
		}

		if arg.Rest && arg.Type != "" {
			return fmt.Errorf("%w: %s", ErrRestArgTypeNotAllowed, arg.Name)
		}

		if _, ok := names[arg.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateArg, arg.Name)
		}

		names[arg.Name] = struct{}{}
		restSeen = restSeen || arg.Rest
		optionalSeen = optionalSeen || !arg.Required
	}

	return nil
}
