// Package commands is the viewer's slash-command registry. Terminal lines
// beginning with "/" are dispatched here; everything else is treated as a
// scene prompt.
package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

const prefix = "/"

// Command is a subcommand with its own flags and a Run function. Flags are
// defined on FlagSet before registration; Run reads flag state after Parse.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "/" (e.g. "grid").
// summary is a one-line help string. fs may be nil for commands without flags.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Parse interprets line as a terminal line. If it starts with "/", the rest
// is split on spaces and returned with ok true; otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as its arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command, try /help")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, try /help", args[0])
	}
	rest := args[1:]
	if cmd.FlagSet != nil {
		if err := cmd.FlagSet.Parse(rest); err != nil {
			return err
		}
		rest = cmd.FlagSet.Args()
	}
	return cmd.Run(rest)
}

// Help returns one line per registered command, sorted by name.
func (r *Registry) Help() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("/%s - %s", name, r.cmds[name].Summary)
	}
	return lines
}
