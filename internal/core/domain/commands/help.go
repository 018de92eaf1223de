package commands

import (
	"context"
	"errors"
	"fmt"
	"solaire/internal/core/domain/command"
	"strings"
)

var ErrNoRegistry = errors.New("no registry bound")

// HelpHandler describes the commands of a registry. The registry is bound after it is built, since
// the help command is itself part of it.
type HelpHandler struct {
	prelude  string
	registry *command.Registry
}

func NewHelpHandler(prelude string) *HelpHandler {
	return &HelpHandler{prelude: prelude}
}

func (h *HelpHandler) Bind(registry *command.Registry) {
	h.registry = registry
}

func (h *HelpHandler) Definition() command.Definition {
	return command.Definition{
		Spec:        "help|h [command]",
		Description: "List commands, or show how to use one.",
		Execute:     h.help,
	}
}

func (h *HelpHandler) help(ctx context.Context, p *command.Payload) error {
	if h.registry == nil {
		return ErrNoRegistry
	}

	if keyword, ok := p.Args.String("command"); ok {
		cmd, found := h.registry.Lookup(keyword)
		if !found {
			return p.Reply(ctx, fmt.Sprintf("No command named %s.", keyword))
		}

		return p.Reply(ctx, h.describe(cmd))
	}

	sb := &strings.Builder{}
	for _, cmd := range h.registry.Commands() {
		fmt.Fprintf(sb, "%s  %s\n", cmd.Usage(h.prelude), cmd.Description)
	}

	return p.Reply(ctx, strings.TrimRight(sb.String(), "\n"))
}

func (h *HelpHandler) describe(cmd *command.Command) string {
	sb := &strings.Builder{}
	sb.WriteString(cmd.Usage(h.prelude))

	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(sb, "\naliases: %s", strings.Join(cmd.Aliases, ", "))
	}

	if cmd.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(cmd.Description)
	}

	return sb.String()
}
