package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

type Cmd func() error

type Commands struct {
	log      zerolog.Logger
	commands map[string]Cmd
}

func NewCommands(log zerolog.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]Cmd)}
}

func (c *Commands) Register(name string, command Cmd) {
	c.commands[name] = command
}

// Names returns the registered command names in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve finds the command called name, or the only command name starts with.
func (c *Commands) Resolve(name string) (string, error) {
	if _, ok := c.commands[name]; ok {
		return name, nil
	}

	var found []string
	for candidate := range c.commands {
		if strings.HasPrefix(candidate, name) {
			found = append(found, candidate)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	case 1:
		return found[0], nil
	default:
		slices.Sort(found)
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousCommand, name, strings.Join(found, ", "))
	}
}

func (c *Commands) Exec(command string) error {
	name, err := c.Resolve(command)
	if err != nil {
		c.log.Debug().Err(err).Msg("command not found")
		return err
	}
	c.log.Debug().Str("command", name).Msg("exec")
	return c.commands[name]()
}
