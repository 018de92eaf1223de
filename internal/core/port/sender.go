package port

import (
	"context"
	"solaire/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends text as a reply to the given message on the transport it arrived on.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) error
}
