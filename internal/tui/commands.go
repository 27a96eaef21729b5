package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

const maxCommandDistance = 2

type command struct {
	Name    string
	Aliases []string
	Run     func(a *App) tea.Cmd
}

var commands = []command{
	{Name: "ce", Aliases: []string{"clear"}, Run: func(a *App) tea.Cmd {
		a.engine.ClearEntry()
		return nil
	}},
	{Name: "ac", Aliases: []string{"allclear", "reset"}, Run: func(a *App) tea.Cmd {
		a.engine.AllClear()
		return nil
	}},
	{Name: "neg", Aliases: []string{"negate", "sign"}, Run: func(a *App) tea.Cmd {
		a.engine.ToggleSign()
		return nil
	}},
	{Name: "eq", Aliases: []string{"equals"}, Run: func(a *App) tea.Cmd {
		a.engine.Equals()
		return nil
	}},
	{Name: "tape", Run: func(a *App) tea.Cmd {
		a.toggleTape()
		return nil
	}},
	{Name: "clear-tape", Aliases: []string{"cleartape"}, Run: func(a *App) tea.Cmd {
		return a.clearTapeCmd()
	}},
	{Name: "quit", Aliases: []string{"exit", "q"}, Run: func(a *App) tea.Cmd {
		return tea.Quit
	}},
}

// resolveCommand finds the command named by word. Exact names and aliases
// win; otherwise the closest name within maxCommandDistance edits is used,
// preferring names that share the first letter.
func resolveCommand(word string) (command, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return command{}, false
	}

	best, bestDist, bestSameInitial := -1, maxCommandDistance+1, false
	for i, c := range commands {
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			if name == word {
				return c, true
			}
			dist := levenshtein.ComputeDistance(word, name)
			if dist > maxCommandDistance || dist >= len(name) {
				continue
			}
			sameInitial := name[0] == word[0]
			if dist < bestDist || (dist == bestDist && sameInitial && !bestSameInitial) {
				best, bestDist, bestSameInitial = i, dist, sameInitial
			}
		}
	}
	if best < 0 {
		return command{}, false
	}
	return commands[best], true
}
