package calc

import "strconv"

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the column of Char in the normalized input.
	Col int
}

func (err *LexError) Error() string {
	return "bad character: " + string(err.Char)
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError indicates input that does not form a valid expression: a syntax
// error, an unknown identifier, a malformed function call or number, or an
// argument outside the domain of log, ln, or factorial. It implements
// InputError.
type ParseError struct {
	// Msg describes the problem.
	Msg string
	// Col is the column of the token where the problem was found.
	Col int
}

func (err *ParseError) Error() string {
	return err.Msg
}

func (err *ParseError) Pos() int {
	return err.Col
}

// ArithmeticError indicates a guarded arithmetic failure, currently only
// division by zero. It implements InputError.
type ArithmeticError struct {
	// Msg describes the problem.
	Msg string
	// Col is the column of the operator.
	Col int
}

func (err *ArithmeticError) Error() string {
	return err.Msg
}

func (err *ArithmeticError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column in the normalized input of the token
	// that caused the error.
	Pos() int
}

// errpos formats an error message with its position, for logs and diagnostics.
func errpos(err InputError) string {
	return strconv.Itoa(err.Pos()) + ": " + err.Error()
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*ArithmeticError)(nil)
)
