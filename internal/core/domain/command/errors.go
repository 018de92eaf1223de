package command

import (
	"errors"
	"fmt"
	"time"
)

// Registration-time errors. They are returned wrapped, match with errors.Is.
var (
	ErrMissingCommandName    = errors.New("missing command name")
	ErrInvalidArgDelimiters  = errors.New("invalid arg delimiters")
	ErrRestArgTypeNotAllowed = errors.New("rest arg cannot declare a type")
	ErrMissingArgName        = errors.New("missing arg name")
	ErrArgPosition           = errors.New("invalid arg position")
	ErrDuplicateArg          = errors.New("duplicate arg name")
	ErrUnknownArgType        = errors.New("unknown arg type")
	ErrMissingExecute        = errors.New("missing execute function")
)

// ErrCoercerPanicked is wrapped by InvalidArgValue when a type's coercer panics.
var ErrCoercerPanicked = errors.New("coercer panicked")

type ErrorKind string

const (
	KindCooldownInEffect        ErrorKind = "cooldown-in-effect"
	KindMissingRequiredArg      ErrorKind = "missing-required-arg"
	KindInvalidArgValue         ErrorKind = "invalid-arg-value"
	KindBlockedByGuard          ErrorKind = "blocked-by-guard"
	KindUnhandledExecutionError ErrorKind = "unhandled-command-execution-error"
)

// InvocationError is a dispatch-time failure. It is reported in a dispatch result and never
// propagated as a plain error.
type InvocationError interface {
	error
	Kind() ErrorKind
}

type CooldownInEffect struct {
	Remaining time.Duration
}

func (e *CooldownInEffect) Error() string {
	return fmt.Sprintf("command is on cooldown for another %s", e.Remaining.Round(time.Millisecond))
}

func (e *CooldownInEffect) Kind() ErrorKind { return KindCooldownInEffect }

type MissingRequiredArg struct {
	Arg Arg
}

func (e *MissingRequiredArg) Error() string {
	return fmt.Sprintf("missing required argument %s", e.Arg.Name)
}

func (e *MissingRequiredArg) Kind() ErrorKind { return KindMissingRequiredArg }

type InvalidArgValue struct {
	Arg           Arg
	ProvidedValue string
	Err           error
}

func (e *InvalidArgValue) Error() string {
	return fmt.Sprintf("invalid value %q for argument %s", e.ProvidedValue, e.Arg.Name)
}

func (e *InvalidArgValue) Kind() ErrorKind { return KindInvalidArgValue }

func (e *InvalidArgValue) Unwrap() error { return e.Err }

// BlockedByGuard carries the guard's reason, empty when the guard gave none.
type BlockedByGuard struct {
	Reason string
}

func (e *BlockedByGuard) Error() string {
	if e.Reason == "" {
		return "blocked by guard"
	}

	return "blocked by guard: " + e.Reason
}

func (e *BlockedByGuard) Kind() ErrorKind { return KindBlockedByGuard }

type UnhandledExecutionError struct {
	Err error
}

func (e *UnhandledExecutionError) Error() string {
	return fmt.Sprintf("command execution failed: %v", e.Err)
}

func (e *UnhandledExecutionError) Kind() ErrorKind { return KindUnhandledExecutionError }

func (e *UnhandledExecutionError) Unwrap() error { return e.Err }
