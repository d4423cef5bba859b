package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(p.output)
}

// WriteUsage lists commands in name order. Aliases are listed once, with their command.
func (p *Executor) WriteUsage(w io.Writer) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		writeCommandUsage(w, 0, name, command)
	}
}

func writeCommandUsage(w io.Writer, depth int, name string, command *Command) {
	indent := strings.Repeat("  ", depth)
	line := indent + name
	if len(command.Aliases) > 0 {
		line += " (" + strings.Join(command.Aliases, ", ") + ")"
	}
	if args := command.argsUsage(); args != "" {
		line += " " + args
	}
	if command.Description != "" {
		line += "\t" + command.Description
	}
	fmt.Fprintln(w, line)
	for _, sub := range slices.Sorted(maps.Keys(command.Subs)) {
		if command.Subs[sub] == nil {
			continue
		}
		writeCommandUsage(w, depth+1, sub, command.Subs[sub])
	}
}
