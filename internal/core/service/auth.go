package service

import (
	"context"
	"errors"
	"fmt"
	"solaire/internal/core/domain/command"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Authorizer guards commands behind an allowlist of user IDs.
type Authorizer struct {
	allowlist []string
	admin     string
}

func NewAuthorizer() (*Authorizer, error) {
	var list []string

	err := viper.UnmarshalKey("guard.admin_ids", &list)
	if err != nil {
		return nil, errors.New("failed to load admin IDs")
	}

	return &Authorizer{
		allowlist: list,
		admin:     viper.GetString("guard.admin_contact"),
	}, nil
}

const forbidden = "You are not authorized to use this command. Please contact %s with this ID to get access: %s"

func (a *Authorizer) IsAuthorized(userID string) bool {
	for _, id := range a.allowlist {
		if id == userID {
			return true
		}
	}

	return false
}

// Guard is a command.GuardFunc admitting only allowlisted authors.
func (a *Authorizer) Guard(_ context.Context, payload *command.Payload) command.Decision {
	if a.IsAuthorized(payload.Message.AuthorID) {
		return command.Authorized()
	}

	log.Debug().Str("userId", payload.Message.AuthorID).Msg("user not on allowlist")

	return command.Denied(fmt.Sprintf(forbidden, a.admin, payload.Message.AuthorID))
}
