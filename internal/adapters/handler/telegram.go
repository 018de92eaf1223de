package handler

import (
	"context"
	"solaire/internal/core/domain"
	"solaire/internal/core/port"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Telegram struct {
	dispatcher Dispatcher
	sender     port.TextSender
	timeout    time.Duration
}

func NewTelegram(dispatcher Dispatcher, sender port.TextSender, timeout time.Duration) *Telegram {
	return &Telegram{dispatcher: dispatcher, sender: sender, timeout: timeout}
}

// Handle matches the go-telegram bot.HandlerFunc signature. Dispatch runs in its own goroutine so a
// slow command never holds up the update loop.
func (h *Telegram) Handle(_ context.Context, _ *bot.Bot, update *models.Update) {
	msg := telegramMessage(update)
	if msg == nil {
		return
	}

	log.Debug().Str("message", msg.Text).Msg("received telegram message")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		result := h.dispatcher.Dispatch(ctx, msg, h.sender)
		respond(ctx, h.sender, result)
	}()
}

func telegramMessage(update *models.Update) *domain.Message {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	text := update.Message.Text
	if text == "" {
		text = update.Message.Caption
	}

	return &domain.Message{
		ID:        strconv.Itoa(update.Message.ID),
		ChannelID: strconv.FormatInt(update.Message.Chat.ID, 10),
		AuthorID:  strconv.FormatInt(update.Message.From.ID, 10),
		Username:  getUserNameOrFirstName(update.Message.From),
		Text:      text,
		Transport: domain.Telegram,
	}
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
