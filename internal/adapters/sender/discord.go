package sender

import (
	"context"
	"fmt"
	"solaire/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type DiscordSession interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordSender struct {
	session DiscordSession
	limiter *rate.Limiter
}

func NewDiscord(session DiscordSession, repliesPerSecond float64) *DiscordSender {
	return &DiscordSender{session: session, limiter: newLimiter(repliesPerSecond)}
}

func (s *DiscordSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	reference := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChannelID,
		GuildID:   message.GuildID,
	}

	for _, chunk := range splitMessage(text, DiscordMessageLimit) {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		_, err := s.session.ChannelMessageSendReply(message.ChannelID, chunk, reference, discordgo.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Str("channelId", message.ChannelID).Msg("failed to send discord reply")
			return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
	}

	return nil
}
