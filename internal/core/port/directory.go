package port

import (
	"context"
	"solaire/internal/core/domain"
)

type MemberDirectory interface {
	// ResolveMember looks up a user in the directory scoped to the message's guild. It returns an error
	// wrapping domain.ErrMemberNotFound when the user cannot be found.
	ResolveMember(ctx context.Context, message *domain.Message, userID string) (*domain.Member, error)
}
