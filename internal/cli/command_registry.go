package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/blairfrandeen/titr/internal/errors"
)

// errQuit is the sentinel a command returns to end the console loop.
var errQuit = errors.New("quit")

// Command represents a console command
type Command interface {
	Execute(ctx context.Context, args []string) error
	Usage() string
}

// CommandRegistry manages all available commands and their aliases
type CommandRegistry struct {
	commands map[string]Command
	aliases  map[string]string
	order    []string
}

// NewCommandRegistry creates a registry with all commands registered
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}

	registry.Register("preview", NewPreviewCommand(app), "p")
	registry.Register("date", NewDateCommand(app))
	registry.Register("default", NewDefaultCommand(app), "def")
	registry.Register("remove", NewRemoveCommand(app), "rm")
	registry.Register("edit", NewEditCommand(app))
	registry.Register("undo", NewUndoCommand(app), "z")
	registry.Register("clear", NewClearCommand(app))
	registry.Register("scale", NewScaleCommand(app), "s")
	registry.Register("outlook", NewOutlookCommand(app), "o")
	registry.Register("clip", NewClipCommand(app))
	registry.Register("commit", NewCommitCommand(app), "c", "write", "w")
	registry.Register("list", NewListCommand(app), "ls")
	registry.Register("timecard", NewTimecardCommand(app), "tc")
	registry.Register("deepwork", NewDeepWorkCommand(app), "dw")
	registry.Register("help", NewHelpCommand(app, registry), "h", "?")
	registry.Register("quit", NewQuitCommand(app), "q")

	return registry
}

// Register adds a command and its aliases to the registry
func (r *CommandRegistry) Register(name string, command Command, aliases ...string) {
	r.commands[name] = command
	r.order = append(r.order, name)
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
}

// Execute runs the named command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	name := strings.ToLower(commandName)
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	command, exists := r.commands[name]
	if !exists {
		return apperrors.NewInputError(fmt.Sprintf("unknown command %q; type help", commandName))
	}
	return command.Execute(ctx, args)
}

// Usage returns one usage line per command, in registration order.
func (r *CommandRegistry) Usage() []string {
	lines := make([]string, 0, len(r.commands))
	for _, name := range r.order {
		aliases := r.aliasesFor(name)
		label := name
		if len(aliases) > 0 {
			label = fmt.Sprintf("%s (%s)", name, strings.Join(aliases, ", "))
		}
		lines = append(lines, fmt.Sprintf("  %-22s %s", label, r.commands[name].Usage()))
	}
	return lines
}

func (r *CommandRegistry) aliasesFor(name string) []string {
	var aliases []string
	for alias, canonical := range r.aliases {
		if canonical == name {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}
