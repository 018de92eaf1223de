package command

import (
	"context"
	"solaire/internal/core/domain"
	"solaire/internal/core/port"
	"strings"
)

// Arg is a single argument slot of a command, in positional binding order.
type Arg struct {
	Name     string
	Required bool
	// Rest marks an argument that consumes every remaining token. It is always the last argument and
	// never carries a type.
	Rest bool
	Type string
}

// String renders the argument the way it is written in a definition.
func (a Arg) String() string {
	var body string
	switch {
	case a.Rest:
		body = "..." + a.Name
	case a.Type != "":
		body = a.Name + ":" + a.Type
	default:
		body = a.Name
	}

	if a.Required {
		return "<" + body + ">"
	}

	return "[" + body + "]"
}

// Payload is what guards and command bodies receive.
type Payload struct {
	Args    Args
	Message *domain.Message
	Sender  port.TextSender
}

// Reply answers the invoking message on the transport it came from.
func (p *Payload) Reply(ctx context.Context, text string) error {
	if p.Sender == nil {
		return domain.ErrSendingReplyFailed
	}

	return p.Sender.SendMessageReply(ctx, p.Message, text)
}

type ExecuteFunc func(ctx context.Context, payload *Payload) error

type GuardFunc func(ctx context.Context, payload *Payload) Decision

// Command is a parsed, validated command. It is immutable once the registry holding it is built.
type Command struct {
	Name        string
	Aliases     []string
	Args        []Arg
	Description string
	Execute     ExecuteFunc
	Guard       GuardFunc
}

// Keywords returns the canonical name followed by every alias.
func (c *Command) Keywords() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// String renders the command back into definition syntax.
func (c *Command) String() string {
	sb := &strings.Builder{}
	sb.WriteString(strings.Join(c.Keywords(), "|"))

	for _, arg := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}

	return sb.String()
}

// Usage renders the invocation syntax with the given prelude, without aliases.
func (c *Command) Usage(prelude string) string {
	sb := &strings.Builder{}
	sb.WriteString(prelude)
	sb.WriteString(c.Name)

	for _, arg := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}

	return sb.String()
}
