package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
)

// pressFeedback is how long a pressed keypad button stays lit.
const pressFeedback = 150 * time.Millisecond

// App is the presentation layer around the calculator engine.
type App struct {
	ctx    context.Context
	cfg    config.Config
	keys   keyMap
	engine *calc.Engine
	tape   *service.TapeService

	display  calc.DisplayState
	entries  []repository.TapeEntry
	showTape bool
	pressed  string
	pressSeq int
	width    int
	status   string

	// command line
	prompting bool
	input     string

	// commands produced by engine hooks, returned from the current Update
	queued []tea.Cmd
}

// New builds the app and its engine. tape may be nil when the tape is disabled.
func New(ctx context.Context, cfg config.Config, tape *service.TapeService) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		keys:     newKeyMap(),
		tape:     tape,
		showTape: cfg.UI.ShowTape && tape != nil,
	}
	a.engine = calc.New(calc.Hooks{Render: a.render, Evaluated: a.evaluated})
	return a
}

func (a *App) Init() tea.Cmd {
	if a.tape == nil {
		return nil
	}
	return a.loadTapeCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		if a.prompting {
			return a.handlePromptKey(m)
		}
		return a.handleKey(m)
	case releaseMsg:
		if m.seq == a.pressSeq {
			a.pressed = ""
		}
	case tapeMsg:
		a.entries = []repository.TapeEntry(m)
	case tapeClearedMsg:
		a.entries = nil
		a.status = "tape cleared"
	case statusMsg:
		a.status = string(m)
	case errMsg:
		log.Printf("error: %v", m.error)
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.String()
	if a.cfg.Log.Debug {
		log.Printf("key %q", k)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Command):
		a.prompting = true
		a.input = ""
		return a, nil
	case key.Matches(m, a.keys.Tape):
		a.toggleTape()
		return a, nil
	case key.Matches(m, a.keys.Digit):
		a.engine.EnterDigit(k[0])
	case key.Matches(m, a.keys.Decimal):
		a.engine.EnterDecimal()
	case key.Matches(m, a.keys.Operator):
		op, _ := calc.ParseOperator(k)
		a.engine.SetOperator(op)
	case key.Matches(m, a.keys.Equals):
		a.engine.Equals()
	case key.Matches(m, a.keys.AllClear):
		a.engine.AllClear()
	case key.Matches(m, a.keys.ClearEntry):
		a.engine.ClearEntry()
	case key.Matches(m, a.keys.Negate):
		a.engine.ToggleSign()
	default:
		return a, nil
	}
	a.status = ""
	return a, tea.Batch(append(a.flush(), a.press(k))...)
}

func (a *App) handlePromptKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.PromptCancel):
		a.prompting = false
		a.input = ""
	case key.Matches(m, a.keys.PromptRun):
		word := a.input
		a.prompting = false
		a.input = ""
		return a.runCommand(word)
	case key.Matches(m, a.keys.PromptErase):
		if r := []rune(a.input); len(r) > 0 {
			a.input = string(r[:len(r)-1])
		}
	default:
		if m.Type == tea.KeyRunes {
			a.input += string(m.Runes)
		}
	}
	return a, nil
}

func (a *App) runCommand(word string) (tea.Model, tea.Cmd) {
	c, ok := resolveCommand(word)
	if !ok {
		a.status = "unknown command: " + word
		return a, nil
	}
	a.status = ""
	cmd := c.Run(a)
	return a, tea.Batch(append(a.flush(), cmd)...)
}

// render is the engine's render hook.
func (a *App) render(d calc.DisplayState) {
	a.display = d
	if a.cfg.Log.Debug {
		log.Printf("display primary=%q secondary=%q error=%t", d.Primary, d.Secondary, d.Error)
	}
}

// evaluated is the engine's evaluation hook. The tape write is synchronous
// so entries keep evaluation order; the pane refresh runs as a command.
func (a *App) evaluated(ev calc.Evaluation) {
	if a.cfg.Log.Debug {
		log.Printf("eval %s %s %s = %s", ev.Left, ev.Operator, ev.Right, ev.Result)
	}
	if a.tape == nil {
		return
	}
	if _, err := a.tape.Record(a.ctx, ev); err != nil {
		a.queued = append(a.queued, func() tea.Msg { return errMsg{err} })
		return
	}
	a.queued = append(a.queued, a.loadTapeCmd())
}

func (a *App) flush() []tea.Cmd {
	cmds := a.queued
	a.queued = nil
	return cmds
}

func (a *App) press(k string) tea.Cmd {
	a.pressed = button(k)
	a.pressSeq++
	seq := a.pressSeq
	return tea.Tick(pressFeedback, func(time.Time) tea.Msg { return releaseMsg{seq: seq} })
}

func (a *App) toggleTape() {
	if a.tape == nil {
		a.status = "tape disabled"
		return
	}
	a.showTape = !a.showTape
}

func (a *App) loadTapeCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.tape.Recent(a.ctx, a.cfg.UI.TapeRows)
		if err != nil {
			return errMsg{err}
		}
		return tapeMsg(entries)
	}
}

func (a *App) clearTapeCmd() tea.Cmd {
	if a.tape == nil {
		return func() tea.Msg { return statusMsg("tape disabled") }
	}
	return func() tea.Msg {
		if err := a.tape.Clear(a.ctx); err != nil {
			return errMsg{err}
		}
		return tapeClearedMsg{}
	}
}

type tapeMsg []repository.TapeEntry

type tapeClearedMsg struct{}

type releaseMsg struct{ seq int }

type statusMsg string

type errMsg struct{ error }
