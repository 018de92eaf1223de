package handler

import (
	"context"
	"solaire/internal/core/domain"
	"solaire/internal/core/port"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Discord struct {
	dispatcher Dispatcher
	sender     port.TextSender
	timeout    time.Duration
}

func NewDiscord(dispatcher Dispatcher, sender port.TextSender, timeout time.Duration) *Discord {
	return &Discord{dispatcher: dispatcher, sender: sender, timeout: timeout}
}

// Handle is registered with Session.AddHandler. Messages from bots, the session's own user included,
// are ignored.
func (h *Discord) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	msg := discordMessage(s.State, m)

	log.Debug().Str("message", msg.Text).Msg("received discord message")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		result := h.dispatcher.Dispatch(ctx, msg, h.sender)
		respond(ctx, h.sender, result)
	}()
}

func discordMessage(state *discordgo.State, m *discordgo.MessageCreate) *domain.Message {
	msg := &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorID:  m.Author.ID,
		Username:  m.Author.Username,
		Text:      m.Content,
		Transport: domain.Discord,
	}

	if m.Member != nil {
		msg.Roles = roleNames(state, m.GuildID, m.Member.Roles)
	}

	return msg
}

// roleNames maps role IDs to names through the state cache. Roles missing from the cache are skipped.
func roleNames(state *discordgo.State, guildID string, roleIDs []string) []string {
	if state == nil {
		return nil
	}

	names := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		role, err := state.Role(guildID, id)
		if err != nil {
			log.Debug().Err(err).Str("roleId", id).Msg("role not in state cache")
			continue
		}

		names = append(names, role.Name)
	}

	return names
}
