package calc

import "strings"

const (
	// DefaultStartValue is the entry shown after construction and AllClear.
	DefaultStartValue = "0"
	// MaxEntryLength caps the typed entry, sign included.
	MaxEntryLength = 12
)

// DisplayState is the two-line display derived from engine state.
type DisplayState struct {
	Primary   string
	Secondary string
	Error     bool
}

// Evaluation describes one computation performed by Equals.
type Evaluation struct {
	Left     string
	Operator Operator
	Right    string
	Result   string
	Err      error
}

// Hooks are the engine's only outbound calls. Either may be nil.
type Hooks struct {
	// Render runs at the end of every command with the fresh display.
	Render func(DisplayState)
	// Evaluated runs once per computation, including the implicit one
	// SetOperator performs when chaining.
	Evaluated func(Evaluation)
}

// Engine is the calculator state machine. It is not safe for concurrent use;
// callers serialize commands.
type Engine struct {
	hooks Hooks

	// operand slots; "" means unset
	left  string
	right string

	pending         Operator
	entry           string
	startingEntry   bool
	rightValueReady bool
	err             error
}

// New returns an engine in the all-clear state and renders it once.
func New(hooks Hooks) *Engine {
	e := &Engine{hooks: hooks}
	e.reset()
	e.render()
	return e
}

// EnterDigit appends a digit to the current entry, or starts a new entry
// when the previous one is complete. Non-digits are ignored.
func (e *Engine) EnterDigit(d byte) {
	if d >= '0' && d <= '9' {
		e.enter(d)
	}
	e.render()
}

// EnterDecimal adds a decimal point unless the entry already has one.
func (e *Engine) EnterDecimal() {
	e.enter('.')
	e.render()
}

// SetOperator selects the pending operation. If a right operand is already
// being typed, the pending operation is evaluated first.
func (e *Engine) SetOperator(op Operator) {
	defer e.render()
	if !op.Valid() || e.failed() {
		return
	}
	if e.rightValueReady && !e.startingEntry {
		e.equals()
		if e.failed() {
			return
		}
	}
	e.left = e.entry
	e.pending = op
	e.startingEntry = true
	e.rightValueReady = true
}

// Equals evaluates the pending operation. Pressed again after a result, it
// reapplies the same operator and right operand to the shown value.
func (e *Engine) Equals() {
	e.equals()
	e.render()
}

// ClearEntry resets the operand being typed. With nothing typed yet, or in
// an error state, it is a full AllClear.
func (e *Engine) ClearEntry() {
	if e.failed() || e.startingEntry {
		e.AllClear()
		return
	}
	e.entry = DefaultStartValue
	e.startingEntry = true
	e.render()
}

// AllClear returns the engine to its initial state.
func (e *Engine) AllClear() {
	e.reset()
	e.render()
}

// ToggleSign flips the sign of the current entry.
func (e *Engine) ToggleSign() {
	defer e.render()
	if e.failed() {
		return
	}
	if strings.HasPrefix(e.entry, "-") {
		e.entry = e.entry[1:]
		return
	}
	e.entry = "-" + e.entry
	e.startingEntry = false
}

// Display projects the current state onto the two display lines.
func (e *Engine) Display() DisplayState {
	if e.failed() {
		return DisplayState{Primary: ErrorText(e.err), Secondary: e.secondary(), Error: true}
	}
	return DisplayState{Primary: e.entry, Secondary: e.secondary()}
}

// ActiveOperator reports the operator waiting for its right operand.
func (e *Engine) ActiveOperator() (Operator, bool) {
	if e.failed() || !e.rightValueReady {
		return OpNone, false
	}
	return e.pending, true
}

// Err returns the error that put the engine in its error state, if any.
func (e *Engine) Err() error { return e.err }

func (e *Engine) failed() bool { return e.err != nil }

func (e *Engine) reset() {
	e.left = ""
	e.right = ""
	e.pending = OpNone
	e.entry = DefaultStartValue
	e.startingEntry = true
	e.rightValueReady = false
	e.err = nil
}

func (e *Engine) enter(ch byte) {
	if e.failed() {
		return
	}
	existing := e.entry
	if e.startingEntry {
		existing = ""
	}
	if len(existing) >= MaxEntryLength {
		return
	}
	if ch == '.' && strings.Contains(existing, ".") {
		return
	}
	e.entry = normalizeEntry(existing + string(ch))
	e.startingEntry = false
}

func (e *Engine) equals() {
	if e.pending == OpNone || e.failed() {
		return
	}
	if e.rightValueReady {
		e.right = e.entry
	} else {
		e.left = e.entry
	}

	value, err := Operate(e.pending, e.left, e.right)
	e.startingEntry = true
	e.rightValueReady = false

	ev := Evaluation{Left: e.left, Operator: e.pending, Right: e.right, Err: err}
	if err != nil {
		e.err = err
		ev.Result = ErrorText(err)
	} else {
		e.entry = FormatNumber(value)
		ev.Result = e.entry
	}
	if e.hooks.Evaluated != nil {
		e.hooks.Evaluated(ev)
	}
}

func (e *Engine) secondary() string {
	if e.left == "" || (!e.rightValueReady && !e.startingEntry) {
		return ""
	}
	if e.rightValueReady {
		return e.left + " " + e.pending.String()
	}
	return e.left + " " + e.pending.String() + " " + e.right + " ="
}

func (e *Engine) render() {
	if e.hooks.Render != nil {
		e.hooks.Render(e.Display())
	}
}

// normalizeEntry enforces the numeral rules on a freshly extended entry:
// a bare leading '.' gains a zero and a redundant leading zero is dropped.
// An optional '-' is kept in front.
func normalizeEntry(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		s = s[1:]
	}
	return sign + s
}
