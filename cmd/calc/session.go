package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
)

const prompt = "> "

// session is the front end's state around an evaluator.
type session struct {
	ev   *calc.Evaluator
	out  io.Writer
	verb string
	// round is the number of significant digits to which results are
	// rounded before they are shown and become ans. Zero keeps them exact.
	round int
	errc *color.Color
	// caret enables pointing at the column of an error.
	caret bool
	// failed records whether any expression has failed.
	failed bool
}

// line handles one line of input, which is either a command or an expression.
func (s *session) line(text string) {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return
	case ":deg":
		s.ev.SetAngleMode(calc.Degrees)
		fmt.Fprintln(s.out, "angle mode:", calc.Degrees)
		return
	case ":rad":
		s.ev.SetAngleMode(calc.Radians)
		fmt.Fprintln(s.out, "angle mode:", calc.Radians)
		return
	case ":ans":
		fmt.Fprintf(s.out, s.verb, s.ev.LastAnswer())
		return
	}
	r := s.ev.Evaluate(text)
	if r.Err != nil {
		s.failed = true
		s.fail(text, r.Err)
		return
	}
	v := calc.Round(r.Value, s.round)
	s.ev.SetLastAnswer(v)
	fmt.Fprintf(s.out, s.verb, v)
}

// fail prints an evaluation error.
func (s *session) fail(text string, err error) {
	var ie calc.InputError
	if s.caret && errors.As(err, &ie) {
		norm := calc.Normalize(text)
		fmt.Fprintln(s.out, strings.Repeat(" ", len(prompt))+norm)
		fmt.Fprintln(s.out, strings.Repeat(" ", len(prompt)+caretcol(norm, ie.Pos()))+"^")
	}
	s.errc.Fprintln(s.out, "error: "+err.Error())
}

// caretcol clamps an error column to one past the end of the text and
// converts it to a 0-based offset.
func caretcol(text string, pos int) int {
	n := utf8.RuneCountInString(text)
	switch {
	case pos < 1:
		return 0
	case pos > n+1:
		return n
	default:
		return pos - 1
	}
}

// status returns errFailed if any expression failed.
func (s *session) status() error {
	if s.failed {
		return errFailed
	}
	return nil
}
