package command

import (
	"context"
	"fmt"
	"solaire/internal/core/domain"
	"strings"
)

// Resolver binds invocation tokens to a command's arg slots.
type Resolver struct {
	types *TypeTable
}

func NewResolver(types *TypeTable) *Resolver {
	return &Resolver{types: types}
}

// Resolve walks args and tokens left to right. A rest arg takes every remaining token joined by a
// single space. The first token that fails coercion is reported as *InvalidArgValue; a required arg
// left without a token is reported as *MissingRequiredArg. Tokens beyond the last arg are ignored.
func (r *Resolver) Resolve(ctx context.Context, message *domain.Message, cmd *Command, tokens []string) (Args, error) {
	args := make(Args, len(cmd.Args))
	next := 0

	for _, arg := range cmd.Args {
		if next >= len(tokens) {
			if arg.Required {
				return nil, &MissingRequiredArg{Arg: arg}
			}
			continue
		}

		if arg.Rest {
			args[arg.Name] = strings.Join(tokens[next:], " ")
			next = len(tokens)
			continue
		}

		value, err := r.coerce(ctx, message, arg, tokens[next])
		if err != nil {
			return nil, &InvalidArgValue{Arg: arg, ProvidedValue: tokens[next], Err: err}
		}

		args[arg.Name] = value
		next++
	}

	return args, nil
}

// coerce runs the arg's coercer. A panicking coercer is reported as ErrCoercerPanicked.
func (r *Resolver) coerce(ctx context.Context, message *domain.Message, arg Arg, raw string) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			value, err = nil, fmt.Errorf("%w: %s: %v", ErrCoercerPanicked, arg.Type, p)
		}
	}()

	if arg.Type == "" {
		return raw, nil
	}

	coercer, ok := r.types.Lookup(arg.Type)
	if !ok {
		return nil, ErrUnknownArgType
	}

	return coercer(ctx, message, raw)
}
