package lettercalc

import "fmt"

// Pos fields are rune offsets into the expression, counting from 0.

// InvalidCharError is returned when a rune is outside the encoding.
type InvalidCharError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Pos)
}

// UnclosedParenError is returned when input ends inside a
// parenthesized group. Pos is the offset of the unmatched open
// parenthesis.
type UnclosedParenError struct {
	Pos int
}

func (e *UnclosedParenError) Error() string {
	return fmt.Sprintf("unclosed parenthesis opened at offset %d", e.Pos)
}

// MalformedExprError is returned when tokens are valid but cannot be
// folded, such as an open parenthesis directly after a number or an
// operator with no operand after it.
type MalformedExprError struct {
	Pos int
	Msg string
}

func (e *MalformedExprError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
}

// DivideByZeroError is returned when a division operand folds to
// zero. Pos is the offset of the division operator.
type DivideByZeroError struct {
	Pos int
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("division by zero at offset %d", e.Pos)
}
