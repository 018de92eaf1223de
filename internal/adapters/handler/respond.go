package handler

import (
	"context"
	"errors"
	"solaire/internal/core/domain"
	"solaire/internal/core/domain/command"
	"solaire/internal/core/port"
	"solaire/internal/core/service"

	"github.com/rs/zerolog/log"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, message *domain.Message, sender port.TextSender) *service.Result
}

const executionFailed = "Something went wrong while running this command."

// respond tells the user about failures the command itself could not report. Argument errors are
// answered by the dispatcher and cooldowns stay silent.
func respond(ctx context.Context, sender port.TextSender, result *service.Result) {
	if result.Success || result.Err == nil {
		return
	}

	var text string

	var blocked *command.BlockedByGuard
	var unhandled *command.UnhandledExecutionError
	switch {
	case errors.As(result.Err, &blocked):
		text = blocked.Reason
	case errors.As(result.Err, &unhandled):
		text = executionFailed
	}

	if text == "" {
		return
	}

	if err := sender.SendMessageReply(ctx, result.Message, text); err != nil {
		log.Error().Err(err).Str("invocationId", result.ID.String()).Msg(domain.ErrSendingReplyFailed.Error())
	}
}
