package commands

import (
	"context"
	"solaire/internal/core/domain"
	"solaire/internal/core/domain/command"
	"testing"

	"github.com/stretchr/testify/require"
)

type MockTextSender struct {
	err      error
	Messages []string
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, message string) error {
	m.Messages = append(m.Messages, message)
	return m.err
}

func (m *MockTextSender) Last() string {
	if len(m.Messages) == 0 {
		return ""
	}

	return m.Messages[len(m.Messages)-1]
}

func newPayload(ts *MockTextSender, args command.Args) *command.Payload {
	return &command.Payload{
		Args: args,
		Message: &domain.Message{
			ID:        "1",
			ChannelID: "c1",
			AuthorID:  "u1",
			Username:  "joe",
		},
		Sender: ts,
	}
}

func lookup(t *testing.T, defs []command.Definition, keyword string) *command.Command {
	t.Helper()

	registry, err := command.NewRegistry(defs...)
	require.NoError(t, err)

	cmd, ok := registry.Lookup(keyword)
	require.True(t, ok, "command %s not registered", keyword)

	return cmd
}
