package cmds

import (
	"fmt"
	"os"
	"slices"
	"sort"
)

func (p *Executor) PrintUsage() {
	type entry struct {
		name    string
		command *Command
	}
	var entries []entry
	for name, command := range p.commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		entries = append(entries, entry{name, command})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	fmt.Fprintln(os.Stderr, "commands:")
	for _, e := range entries {
		line := "  " + e.name
		for _, alias := range e.command.Aliases {
			line += " | " + alias
		}
		if e.command.Description != "" {
			line += "\n      " + e.command.Description
		}
		fmt.Fprintln(os.Stderr, line)
	}
}
