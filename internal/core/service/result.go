package service

import (
	"solaire/internal/core/domain"
	"solaire/internal/core/domain/command"

	"github.com/gofrs/uuid/v5"
)

type ResultKind string

const (
	NoCommandInvoked      ResultKind = "no-command-invoked"
	CommandInvokedSuccess ResultKind = "command-invoked-success"
	CommandInvokedFailure ResultKind = "command-invoked-failure"
)

// Result is the outcome of dispatching one message. Kind tells which fields are meaningful:
// PreludeMatched only for NoCommandInvoked, Command for both invoked kinds, Err only for
// CommandInvokedFailure.
type Result struct {
	ID             uuid.UUID
	Kind           ResultKind
	Success        bool
	CommandInvoked bool
	PreludeMatched bool
	Command        *command.Command
	Err            command.InvocationError
	Message        *domain.Message
}

func noCommand(id uuid.UUID, message *domain.Message, preludeMatched bool) *Result {
	return &Result{
		ID:             id,
		Kind:           NoCommandInvoked,
		Success:        true,
		PreludeMatched: preludeMatched,
		Message:        message,
	}
}

func invoked(id uuid.UUID, message *domain.Message, cmd *command.Command) *Result {
	return &Result{
		ID:             id,
		Kind:           CommandInvokedSuccess,
		Success:        true,
		CommandInvoked: true,
		Command:        cmd,
		Message:        message,
	}
}

func failed(id uuid.UUID, message *domain.Message, cmd *command.Command, err command.InvocationError) *Result {
	return &Result{
		ID:             id,
		Kind:           CommandInvokedFailure,
		CommandInvoked: true,
		Command:        cmd,
		Err:            err,
		Message:        message,
	}
}

func newInvocationID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil
	}

	return id
}
