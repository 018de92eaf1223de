package sender

import (
	"context"
	"fmt"
	"solaire/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

//go:generate mockery --name TelegramBot

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type TelegramSender struct {
	bot     TelegramBot
	limiter *rate.Limiter
}

func NewTelegram(bot TelegramBot, repliesPerSecond float64) *TelegramSender {
	return &TelegramSender{bot: bot, limiter: newLimiter(repliesPerSecond)}
}

func (s *TelegramSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	chatID, err := strconv.ParseInt(message.ChannelID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid chat id %q", domain.ErrSendingReplyFailed, message.ChannelID)
	}

	messageID, err := strconv.Atoi(message.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid message id %q", domain.ErrSendingReplyFailed, message.ID)
	}

	for _, chunk := range splitMessage(text, TelegramMessageLimit) {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID: messageID,
				ChatID:    chatID,
			},
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", chatID).Msg("failed to send telegram reply")
			return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
	}

	return nil
}
