package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"solaire/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type MemberFetcher interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
}

// Discord resolves members of the guild a message was posted in. Messages from other transports, or
// from direct messages, have no guild and never resolve.
type Discord struct {
	session MemberFetcher
}

func NewDiscord(session MemberFetcher) *Discord {
	return &Discord{session: session}
}

func (d *Discord) ResolveMember(ctx context.Context, message *domain.Message, userID string) (*domain.Member, error) {
	if d.session == nil || message.Transport != domain.Discord || message.GuildID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, userID)
	}

	m, err := d.session.GuildMember(message.GuildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, userID)
		}

		log.Error().Err(err).Str("guildId", message.GuildID).Str("userId", userID).Msg("failed to fetch guild member")
		return nil, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	return toMember(userID, m), nil
}

func toMember(userID string, m *discordgo.Member) *domain.Member {
	member := &domain.Member{
		ID:          userID,
		DisplayName: m.Nick,
		RoleIDs:     m.Roles,
	}

	if m.User != nil {
		member.ID = m.User.ID
		member.Username = m.User.Username
		if member.DisplayName == "" {
			member.DisplayName = m.User.GlobalName
		}
	}

	return member
}
