package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	var lines []string
	seen := make(map[*Command]bool)
	for name, command := range e.commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		collectUsage(&lines, name, command, 0)
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}

func collectUsage(lines *[]string, name string, command *Command, depth int) {
	line := strings.Repeat("  ", depth) + name
	if len(command.Aliases) > 0 {
		line += " (" + strings.Join(command.Aliases, ", ") + ")"
	}
	if command.Description != "" {
		line += "\t" + command.Description
	}
	*lines = append(*lines, line)
	for subname, sub := range command.Subs {
		collectUsage(lines, subname, sub, depth+1)
	}
}
