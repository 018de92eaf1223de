package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogResult is a Listener that writes one record per finished command.
func LogResult(_ context.Context, result *Result) {
	e := log.Info()
	if !result.Success {
		e = log.Warn()
	}

	e = e.Str("invocationId", result.ID.String()).
		Str("kind", string(result.Kind))

	if result.Command != nil {
		e = e.Str("command", result.Command.Name)
	}

	if result.Message != nil {
		e = e.Str("transport", string(result.Message.Transport)).
			Str("author", result.Message.Username)
	}

	if result.Err != nil {
		e = e.Str("errorKind", string(result.Err.Kind())).Err(result.Err)
	}

	e.Msg("command finished")
}
