package commands

import (
	"context"
	"fmt"
	"solaire/internal/core/domain/command"
	"solaire/internal/core/port"
)

type AskHandler struct {
	generator port.TextGenerator
}

func NewAskHandler(generator port.TextGenerator) *AskHandler {
	return &AskHandler{generator: generator}
}

func (a *AskHandler) Definition() command.Definition {
	return command.Definition{
		Spec:        "ask|a <...question>",
		Description: "Ask the language model a question.",
		Execute:     a.ask,
	}
}

func (a *AskHandler) ask(ctx context.Context, p *command.Payload) error {
	question, _ := p.Args.String("question")

	answer, err := a.generator.GenerateFromPrompt(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to generate answer: %w", err)
	}

	return p.Reply(ctx, answer)
}
