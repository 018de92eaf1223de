package command

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Definition binds a definition string to the functions that implement it.
type Definition struct {
	Spec        string
	Description string
	Execute     ExecuteFunc
	Guard       GuardFunc
}

// Registry holds validated commands in registration order. It is read-only once built.
type Registry struct {
	commands []*Command
	keywords map[string]*Command
}

// NewRegistry parses and validates every definition. A single failure aborts construction, so a
// registry never exists with an invalid command.
func NewRegistry(definitions ...Definition) (*Registry, error) {
	r := &Registry{
		commands: make([]*Command, 0, len(definitions)),
		keywords: make(map[string]*Command),
	}

	for _, def := range definitions {
		cmd, err := Parse(def.Spec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", def.Spec, err)
		}

		if err := Validate(cmd); err != nil {
			return nil, fmt.Errorf("invalid command %s: %w", cmd.Name, err)
		}

		if def.Execute == nil {
			return nil, fmt.Errorf("command %s: %w", cmd.Name, ErrMissingExecute)
		}

		cmd.Description = def.Description
		cmd.Execute = def.Execute
		cmd.Guard = def.Guard

		r.add(cmd)
	}

	return r, nil
}

func (r *Registry) add(cmd *Command) {
	log.Info().Str("command", cmd.Name).Strs("aliases", cmd.Aliases).Msg("adding command to registry")

	for _, keyword := range cmd.Keywords() {
		// first registration wins, same as scanning the list in order
		if owner, ok := r.keywords[keyword]; ok {
			log.Warn().
				Str("keyword", keyword).
				Str("command", cmd.Name).
				Str("owner", owner.Name).
				Msg("keyword already taken, it will keep invoking the earlier command")
			continue
		}
		r.keywords[keyword] = cmd
	}

	r.commands = append(r.commands, cmd)
}

// Lookup returns the first registered command whose name or alias equals keyword.
func (r *Registry) Lookup(keyword string) (*Command, bool) {
	log.Debug().Str("keyword", keyword).Msg("fetching command from registry")

	cmd, ok := r.keywords[keyword]
	return cmd, ok
}

// Commands returns all commands in registration order.
func (r *Registry) Commands() []*Command {
	list := make([]*Command, len(r.commands))
	copy(list, r.commands)

	return list
}
