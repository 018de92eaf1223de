package service

import (
	"context"
	"solaire/internal/core/domain/command"

	"github.com/rs/zerolog"
)

// evaluateGuard returns nil when the guard permits the command. A denial wins over an authorization;
// a guard that decides nothing, or panics, blocks the command.
func evaluateGuard(ctx context.Context, l zerolog.Logger, cmd *command.Command,
	payload *command.Payload) *command.BlockedByGuard {
	decision := runGuard(ctx, l, cmd, payload)

	if decision.IsDenied() {
		return &command.BlockedByGuard{Reason: decision.Reason()}
	}

	if decision.IsUndecided() {
		l.Warn().Msg("guard did not authorize or deny, defaulting to no access")
		return &command.BlockedByGuard{}
	}

	return nil
}

func runGuard(ctx context.Context, l zerolog.Logger, cmd *command.Command,
	payload *command.Payload) (decision command.Decision) {
	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Msg("guard panicked")
			decision = command.Denied("")
		}
	}()

	return cmd.Guard(ctx, payload)
}
