package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/service"
)

var keypadRows = [][]string{
	{"AC", "C", "±", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "="},
}

func (a *App) View() string {
	sections := []string{a.renderDisplay()}
	if a.cfg.UI.ShowKeypad {
		sections = append(sections, a.renderKeypad())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.showTape {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", a.renderTape())
	}

	var footer string
	switch {
	case a.prompting:
		footer = promptStyle.Render(":"+a.input+"█") + "\n" + a.renderFooter(a.keys.promptBindings())
	case a.status != "":
		footer = statusStyle.Render(a.status) + "\n" + a.renderFooter(a.keys.footerBindings())
	default:
		footer = a.renderFooter(a.keys.footerBindings())
	}
	return body + "\n" + footer
}

func (a *App) renderDisplay() string {
	w := a.cfg.UI.Width
	d := a.display
	primary := primaryStyle
	if d.Error {
		primary = errorStyle
	}
	content := secondaryStyle.Render(ansi.Truncate(d.Secondary, w, "…")) + "\n" +
		primary.Render(ansi.Truncate(d.Primary, w, "…"))
	return displayStyle.Width(w + 2).Render(content)
}

func (a *App) renderKeypad() string {
	// four buttons and three gaps span the display box
	bw := (a.cfg.UI.Width + 1) / 4
	active, hasActive := a.engine.ActiveOperator()

	lines := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for i, label := range row {
			width := bw
			if len(row) == 3 && i == 0 {
				width = 2*bw + 1
			}
			style := buttonStyle
			switch {
			case label == a.pressed:
				style = pressedButtonStyle
			case hasActive && label == active.String():
				style = activeButtonStyle
			case isOperatorLabel(label):
				style = operatorButtonStyle
			}
			cells = append(cells, style.Width(width).Render(label))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return " " + strings.Join(lines, "\n ")
}

func isOperatorLabel(label string) bool {
	if label == "=" {
		return true
	}
	_, ok := calc.ParseOperator(label)
	return ok
}

func (a *App) renderTape() string {
	lines := []string{titleStyle.Render("Tape")}
	if len(a.entries) == 0 {
		lines = append(lines, secondaryStyle.Render("(empty)"))
	}
	for _, e := range a.entries {
		line := service.Line(e)
		if e.Failed {
			line = tapeFailedStyle.Render(line)
		} else {
			line = strings.TrimSuffix(line, e.Result) + tapeResultStyle.Render(e.Result)
		}
		lines = append(lines, line)
	}
	return tapeStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}
