package service

import (
	"context"
	"errors"
	"fmt"
	"solaire/internal/core/domain"
	"solaire/internal/core/domain/command"
	"solaire/internal/core/port"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrCommandPanicked = errors.New("command panicked")

type Options struct {
	// Prelude is the literal text a message must start with to be treated as a command.
	Prelude string
	// Cooldown is the minimum time between successful runs of the same command. Zero disables it.
	Cooldown time.Duration
	// StrictCooldown also blocks a command while an earlier dispatch of it is still running.
	StrictCooldown bool
	// ReplyOnArgError answers the user with the resolution error when args are missing or invalid.
	ReplyOnArgError bool
}

// Listener is notified after every dispatch that invoked a command.
type Listener func(ctx context.Context, result *Result)

// Dispatcher routes messages to registered commands. It is safe for concurrent use; dispatches of
// different messages may overlap.
type Dispatcher struct {
	registry  *command.Registry
	resolver  *command.Resolver
	cooldowns *CooldownTracker
	options   Options
	listeners []Listener
	mutex     sync.RWMutex
}

// NewDispatcher fails when a registered command declares an arg type the type table cannot coerce.
func NewDispatcher(registry *command.Registry, types *command.TypeTable, options Options) (*Dispatcher, error) {
	for _, cmd := range registry.Commands() {
		if err := types.Check(cmd); err != nil {
			return nil, err
		}
	}

	return &Dispatcher{
		registry:  registry,
		resolver:  command.NewResolver(types),
		cooldowns: NewCooldownTracker(options.Cooldown, options.StrictCooldown),
		options:   options,
	}, nil
}

func (d *Dispatcher) OnCommandFinished(listener Listener) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.listeners = append(d.listeners, listener)
}

// Dispatch processes one message and reports the outcome. Failures are carried in the result and
// never returned; sender is used for replies and may be nil.
func (d *Dispatcher) Dispatch(ctx context.Context, message *domain.Message, sender port.TextSender) *Result {
	id := newInvocationID()

	invocation, ok := command.Tokenize(message.Text, d.options.Prelude)
	if !ok {
		return noCommand(id, message, false)
	}

	cmd, ok := d.registry.Lookup(invocation.Name)
	if !ok {
		log.Debug().Str("keyword", invocation.Name).Msg("no command for keyword")
		return noCommand(id, message, true)
	}

	l := log.With().
		Str("invocationId", id.String()).
		Str("command", cmd.Name).
		Str("channelId", message.ChannelID).
		Str("messageId", message.ID).
		Logger()

	l.Debug().Strs("args", invocation.Args).Msg("handling command")

	result := d.run(ctx, l, id, cmd, invocation, message, sender)
	d.notify(ctx, result)

	return result
}

func (d *Dispatcher) run(ctx context.Context, l zerolog.Logger, id uuid.UUID, cmd *command.Command,
	invocation command.Invocation, message *domain.Message, sender port.TextSender) *Result {
	if remaining, ok := d.cooldowns.Acquire(cmd); !ok {
		l.Debug().Dur("remaining", remaining).Msg("cooldown in effect")
		return failed(id, message, cmd, &command.CooldownInEffect{Remaining: remaining})
	}

	succeeded := false
	defer func() {
		d.cooldowns.Release(cmd, succeeded)
	}()

	args, err := d.resolver.Resolve(ctx, message, cmd, invocation.Args)
	if err != nil {
		invocationErr := asInvocationError(err)
		l.Debug().Err(err).Msg("failed to resolve args")
		d.replyArgError(ctx, l, cmd, message, sender, invocationErr)
		return failed(id, message, cmd, invocationErr)
	}

	payload := &command.Payload{Args: args, Message: message, Sender: sender}

	if cmd.Guard != nil {
		if blocked := evaluateGuard(ctx, l, cmd, payload); blocked != nil {
			l.Debug().Str("reason", blocked.Reason).Msg("blocked by guard")
			return failed(id, message, cmd, blocked)
		}
	}

	if err := execute(ctx, cmd, payload); err != nil {
		l.Warn().Err(err).Msg("command execution failed")
		return failed(id, message, cmd, &command.UnhandledExecutionError{Err: err})
	}

	succeeded = true

	return invoked(id, message, cmd)
}

func (d *Dispatcher) replyArgError(ctx context.Context, l zerolog.Logger, cmd *command.Command,
	message *domain.Message, sender port.TextSender, err command.InvocationError) {
	if !d.options.ReplyOnArgError || sender == nil {
		return
	}

	text := fmt.Sprintf("%s\nusage: %s", err.Error(), cmd.Usage(d.options.Prelude))
	if err := sender.SendMessageReply(ctx, message, text); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
	}
}

func (d *Dispatcher) notify(ctx context.Context, result *Result) {
	if !result.CommandInvoked {
		return
	}

	d.mutex.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mutex.RUnlock()

	for _, listener := range listeners {
		callListener(ctx, listener, result)
	}
}

func callListener(ctx context.Context, listener Listener, result *Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("invocationId", result.ID.String()).Msg("listener panicked")
		}
	}()

	listener(ctx, result)
}

func execute(ctx context.Context, cmd *command.Command, payload *command.Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCommandPanicked, r)
		}
	}()

	return cmd.Execute(ctx, payload)
}

func asInvocationError(err error) command.InvocationError {
	var invocationErr command.InvocationError
	if errors.As(err, &invocationErr) {
		return invocationErr
	}

	return &command.UnhandledExecutionError{Err: err}
}
