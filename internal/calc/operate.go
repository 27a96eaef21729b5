package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingPlaces is the number of decimal places every successful result is rounded to.
const RoundingPlaces = 10

var (
	// ErrDivideByZero is returned when the right operand of a division is zero.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrInvalid covers unparseable operands and non-finite results.
	ErrInvalid = errors.New("invalid result")
)

// Operator is a pending arithmetic operation. The zero value means none.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Valid reports whether o is one of the four arithmetic operators.
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// String returns the symbol shown on the secondary display line.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	case OpNone:
		return ""
	}
	return fmt.Sprintf("Operator(%d)", uint8(o))
}

// ParseOperator maps a key or symbol to an operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return OpNone, false
}

// Operate applies op to the two operand numerals and rounds the result.
// Errors are ErrDivideByZero or wrap ErrInvalid.
func Operate(op Operator, left, right string) (float64, error) {
	x, err := parseOperand(left)
	if err != nil {
		return 0, err
	}
	y, err := parseOperand(right)
	if err != nil {
		return 0, err
	}

	var raw float64
	switch op {
	case OpAdd:
		raw = x + y
	case OpSubtract:
		raw = x - y
	case OpMultiply:
		raw = x * y
	case OpDivide:
		if y == 0 {
			return 0, ErrDivideByZero
		}
		raw = x / y
	case OpNone:
		return 0, fmt.Errorf("%w: no operator", ErrInvalid)
	default:
		return 0, fmt.Errorf("%w: unknown operator %d", ErrInvalid, uint8(op))
	}
	if !finite(raw) {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, raw)
	}
	return Round(raw), nil
}

// Round trims binary representation noise by rounding to RoundingPlaces
// decimal places, so 0.1+0.2 comes back as exactly 0.3.
func Round(f float64) float64 {
	if !finite(f) {
		return f
	}
	out, _ := decimal.NewFromFloat(f).Round(RoundingPlaces).Float64()
	return out
}

// FormatNumber renders a result the way the display shows it: the shortest
// decimal that round-trips, exponent form for very large or very small
// magnitudes, and no negative zero.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		return fmt.Sprintf("%se%+d", mantissa, n)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ErrorText maps an evaluation error to the text shown on the primary line.
func ErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivideByZero):
		return "Don't be silly"
	default:
		return "Error"
	}
}

func parseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q", ErrInvalid, s)
	}
	if !finite(f) {
		return 0, fmt.Errorf("%w: operand %q", ErrInvalid, s)
	}
	return f, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
