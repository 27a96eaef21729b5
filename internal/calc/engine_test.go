package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// press feeds a key sequence to the engine. Digits, '.', operators and '='
// map to their commands; 'C' is ClearEntry, 'A' AllClear and 'N' ToggleSign.
func press(t *testing.T, e *Engine, keys string) {
	t.Helper()
	for _, r := range keys {
		switch {
		case r >= '0' && r <= '9':
			e.EnterDigit(byte(r))
		case r == '.':
			e.EnterDecimal()
		case r == '=':
			e.Equals()
		case r == 'C':
			e.ClearEntry()
		case r == 'A':
			e.AllClear()
		case r == 'N':
			e.ToggleSign()
		default:
			op, ok := ParseOperator(string(r))
			require.True(t, ok, "unknown key %q", r)
			e.SetOperator(op)
		}
	}
}

func newEngine() *Engine { return New(Hooks{}) }

func TestNewStartsCleared(t *testing.T) {
	t.Parallel()

	var renders []DisplayState
	e := New(Hooks{Render: func(d DisplayState) { renders = append(renders, d) }})
	require.Equal(t, []DisplayState{{Primary: "0"}}, renders)
	require.Equal(t, DisplayState{Primary: "0"}, e.Display())
	_, active := e.ActiveOperator()
	require.False(t, active)
}

func TestEntryFormatting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		keys string
		want string
	}{
		{"7", "7"},
		{"007", "7"},
		{"0", "0"},
		{".", "0."},
		{"0.5", "0.5"},
		{"1.2.3", "1.23"},
		{"..5", "0.5"},
		{"1234567890123", "123456789012"},
		{"1.23456789012", "1.2345678901"},
		{"N5", "-5"},
		{"N05", "-5"},
		{"N.", "-0."},
		{"5N", "-5"},
		{"5NN", "5"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.keys, func(t *testing.T) {
			t.Parallel()
			e := newEngine()
			press(t, e, tc.keys)
			require.Equal(t, tc.want, e.Display().Primary)
		})
	}
}

func TestEntryNeverBreaksNumeralRules(t *testing.T) {
	t.Parallel()

	e := newEngine()
	for _, r := range strings.Repeat("0.9.0.1", 5) {
		press(t, e, string(r))
		text := e.Display().Primary
		require.LessOrEqual(t, len(text), MaxEntryLength)
		require.LessOrEqual(t, strings.Count(text, "."), 1)
		require.False(t, strings.HasPrefix(text, "00"))
	}
}

func TestDigitAfterResultStartsFresh(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "2+3=")
	require.Equal(t, "5", e.Display().Primary)
	press(t, e, "7")
	require.Equal(t, DisplayState{Primary: "7"}, e.Display())
}

func TestChaining(t *testing.T) {
	t.Parallel()

	var evals []Evaluation
	e := New(Hooks{Evaluated: func(ev Evaluation) { evals = append(evals, ev) }})

	press(t, e, "2+")
	require.Equal(t, DisplayState{Primary: "2", Secondary: "2 +"}, e.Display())
	op, active := e.ActiveOperator()
	require.True(t, active)
	require.Equal(t, OpAdd, op)

	press(t, e, "3")
	require.Equal(t, DisplayState{Primary: "3", Secondary: "2 +"}, e.Display())

	press(t, e, "+")
	require.Equal(t, DisplayState{Primary: "5", Secondary: "5 +"}, e.Display())
	require.Len(t, evals, 1)
	require.Equal(t, Evaluation{Left: "2", Operator: OpAdd, Right: "3", Result: "5"}, evals[0])
}

func TestOperatorSwapWithoutRightOperand(t *testing.T) {
	t.Parallel()

	var evals int
	e := New(Hooks{Evaluated: func(Evaluation) { evals++ }})
	press(t, e, "8+*")
	require.Equal(t, DisplayState{Primary: "8", Secondary: "8 ×"}, e.Display())
	require.Zero(t, evals)
	press(t, e, "2=")
	require.Equal(t, "16", e.Display().Primary)
}

func TestRepeatedEqualsCompounds(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "4+2=")
	require.Equal(t, DisplayState{Primary: "6", Secondary: "4 + 2 ="}, e.Display())
	press(t, e, "=")
	require.Equal(t, DisplayState{Primary: "8", Secondary: "6 + 2 ="}, e.Display())
	press(t, e, "=")
	require.Equal(t, "10", e.Display().Primary)
	_, active := e.ActiveOperator()
	require.False(t, active)
}

func TestEqualsAfterNewLeftReusesOperation(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "4*3=")
	press(t, e, "5")
	require.Equal(t, DisplayState{Primary: "5"}, e.Display())
	press(t, e, "=")
	require.Equal(t, DisplayState{Primary: "15", Secondary: "5 × 3 ="}, e.Display())
}

func TestEqualsWithoutOperatorIsNoop(t *testing.T) {
	t.Parallel()

	var evals int
	e := New(Hooks{Evaluated: func(Evaluation) { evals++ }})
	press(t, e, "12==")
	require.Equal(t, DisplayState{Primary: "12"}, e.Display())
	require.Zero(t, evals)
}

func TestEqualsRightOperandDefaultsToLeft(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "3*=")
	require.Equal(t, DisplayState{Primary: "9", Secondary: "3 × 3 ="}, e.Display())
}

func TestRoundingThroughEngine(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, ".1+.2=")
	require.Equal(t, "0.3", e.Display().Primary)
}

func TestDivideByZeroBlocksInput(t *testing.T) {
	t.Parallel()

	var evals []Evaluation
	e := New(Hooks{Evaluated: func(ev Evaluation) { evals = append(evals, ev) }})
	press(t, e, "5/0=")

	want := DisplayState{Primary: "Don't be silly", Secondary: "5 ÷ 0 =", Error: true}
	require.Equal(t, want, e.Display())
	require.ErrorIs(t, e.Err(), ErrDivideByZero)
	require.Len(t, evals, 1)
	require.ErrorIs(t, evals[0].Err, ErrDivideByZero)

	press(t, e, "7.+=N")
	require.Equal(t, want, e.Display())
	require.Len(t, evals, 1)
	_, active := e.ActiveOperator()
	require.False(t, active)

	press(t, e, "A")
	require.Equal(t, DisplayState{Primary: "0"}, e.Display())
	require.NoError(t, e.Err())
	press(t, e, "7")
	require.Equal(t, "7", e.Display().Primary)
}

func TestChainedErrorStopsOperator(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "9/0-")
	d := e.Display()
	require.True(t, d.Error)
	require.Equal(t, "Don't be silly", d.Primary)
	require.Equal(t, "9 ÷ 0 =", d.Secondary)
}

func TestOverflowIsGenericError(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "999999999999*=")
	for i := 0; i < 30; i++ {
		press(t, e, "=")
	}
	d := e.Display()
	require.True(t, d.Error)
	require.Equal(t, "Error", d.Primary)
	require.ErrorIs(t, e.Err(), ErrInvalid)
}

func TestClearEntryInErrorResets(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "1/0=C")
	require.Equal(t, DisplayState{Primary: "0"}, e.Display())
}

func TestClearEntryKeepsPendingOperation(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "7+12C")
	require.Equal(t, DisplayState{Primary: "0", Secondary: "7 +"}, e.Display())
	press(t, e, "3=")
	require.Equal(t, "10", e.Display().Primary)
}

func TestClearEntryAtStartIsAllClear(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "7+")
	press(t, e, "C")
	require.Equal(t, DisplayState{Primary: "0"}, e.Display())
	_, active := e.ActiveOperator()
	require.False(t, active)

	press(t, e, "C")
	require.Equal(t, DisplayState{Primary: "0"}, e.Display())

	press(t, e, "3=")
	require.Equal(t, DisplayState{Primary: "3"}, e.Display())
}

func TestToggleSignRoundTrip(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "N")
	require.Equal(t, "-0", e.Display().Primary)
	press(t, e, "N")
	require.Equal(t, "0", e.Display().Primary)
}

func TestToggleSignOnResult(t *testing.T) {
	t.Parallel()

	e := newEngine()
	press(t, e, "6-2=N")
	require.Equal(t, DisplayState{Primary: "-4"}, e.Display())
	press(t, e, "=")
	require.Equal(t, DisplayState{Primary: "-6", Secondary: "-4 - 2 ="}, e.Display())
}

func TestRenderAfterEveryCommand(t *testing.T) {
	t.Parallel()

	var renders int
	e := New(Hooks{Render: func(DisplayState) { renders++ }})
	require.Equal(t, 1, renders)

	press(t, e, "1+2+=")
	require.Equal(t, 6, renders)

	press(t, e, "CAN.")
	require.Equal(t, 10, renders)

	e.EnterDigit('x')
	require.Equal(t, 11, renders)
	e.SetOperator(OpNone)
	require.Equal(t, 12, renders)
}
