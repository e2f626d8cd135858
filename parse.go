package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// expression = term { ('+' | '-') term }
// term       = power { ('*' | '/' | '%') power }
// power      = unary [ '^' power ]
// unary      = ('+' | '-') unary | postfix
// postfix    = primary { '!' }
// primary    = num | ident [ '(' expression ')' ] | '(' expression ')'

// DefaultMaxDepth is the nesting depth allowed when no MaxDepth option is
// given. Each unary operator, parenthesized group, function argument, and
// exponent on the right of ^ is one level.
const DefaultMaxDepth = 256

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

// parser evaluates a token sequence while parsing it.
type parser struct {
	toks []lexToken
	// cur is the index of the next token.
	cur int
	// mode and ans are the evaluator state for this evaluation.
	mode AngleMode
	ans  float64
	// depth is the current nesting depth.
	depth, maxDepth int
}

// parse evaluates a complete token sequence, which must end with EOF.
func (p *parser) parse() (float64, error) {
	v, err := p.parseexpr()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return 0, unexpected(tok)
	}
	return v, nil
}

func (p *parser) peek() lexToken {
	return p.toks[p.cur]
}

// match consumes the next token if it has the given kind and, if text is not
// empty, the given text.
func (p *parser) match(kind tokenKind, text string) (lexToken, bool) {
	tok := p.peek()
	if tok.kind != kind || (text != "" && tok.text != text) {
		return tok, false
	}
	p.cur++
	return tok, true
}

func (p *parser) parseexpr() (float64, error) {
	v, err := p.parseterm()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return v, nil
		}
		p.cur++
		r, err := p.parseterm()
		if err != nil {
			return 0, err
		}
		if tok.text == "+" {
			v += r
		} else {
			v -= r
		}
	}
}

func (p *parser) parseterm() (float64, error) {
	v, err := p.parsepow()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || !strings.Contains("*/%", tok.text) {
			return v, nil
		}
		p.cur++
		r, err := p.parsepow()
		if err != nil {
			return 0, err
		}
		switch tok.text {
		case "*":
			v *= r
		case "/":
			if r == 0 {
				return 0, &ArithmeticError{Msg: "division by zero", Col: tok.pos}
			}
			v /= r
		case "%":
			v = math.Mod(v, r)
		}
	}
}

func (p *parser) parsepow() (float64, error) {
	return p.nest(func() (float64, error) {
		v, err := p.parseunary()
		if err != nil {
			return 0, err
		}
		if _, ok := p.match(tokenOp, "^"); !ok {
			return v, nil
		}
		r, err := p.parsepow()
		if err != nil {
			return 0, err
		}
		return math.Pow(v, r), nil
	})
}

func (p *parser) parseunary() (float64, error) {
	if _, ok := p.match(tokenOp, "+"); ok {
		return p.nest(p.parseunary)
	}
	if _, ok := p.match(tokenOp, "-"); ok {
		v, err := p.nest(p.parseunary)
		return -v, err
	}
	return p.parsepostfix()
}

// nest calls f one level deeper, failing instead if that exceeds the maximum
// depth.
func (p *parser) nest(f func() (float64, error)) (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return 0, &ParseError{Msg: "expression nested too deeply", Col: p.peek().pos}
	}
	return f()
}

func (p *parser) parsepostfix() (float64, error) {
	v, err := p.parseprimary()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := p.match(tokenFact, "")
		if !ok {
			return v, nil
		}
		v, err = factorial(v, tok)
		if err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseprimary() (float64, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenNum:
		p.cur++
		return parsenum(tok)
	case tokenIdent:
		p.cur++
		name := strings.ToLower(tok.text)
		id := builtins[name]
		if id == nil {
			return 0, &ParseError{Msg: "unknown identifier: " + name, Col: tok.pos}
		}
		return id.resolve(p, tok, name)
	case tokenOpen:
		p.cur++
		v, err := p.parseexpr()
		if err != nil {
			return 0, err
		}
		if err := p.closeparen(); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, unexpected(tok)
	}
}

// parsearg parses a parenthesized function argument.
func (p *parser) parsearg() (float64, error) {
	if tok, ok := p.match(tokenOpen, ""); !ok {
		return 0, &ParseError{Msg: "missing (", Col: tok.pos}
	}
	v, err := p.parseexpr()
	if err != nil {
		return 0, err
	}
	if err := p.closeparen(); err != nil {
		return 0, err
	}
	return v, nil
}

// closeparen consumes a close paren.
func (p *parser) closeparen() error {
	if tok, ok := p.match(tokenClose, ""); !ok {
		return &ParseError{Msg: "missing )", Col: tok.pos}
	}
	return nil
}

// parsenum converts a number token. Literals too large for float64 become
// infinities rather than errors.
func parsenum(tok lexToken) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Msg: "malformed number: " + tok.text, Col: tok.pos}
	}
	return v, nil
}

// factorial computes x! for integral x in [0, maxFactorial].
func factorial(x float64, tok lexToken) (float64, error) {
	if x < 0 || x > maxFactorial {
		return 0, &ParseError{Msg: "n! out of range", Col: tok.pos}
	}
	if math.Mod(x, 1) != 0 {
		return 0, &ParseError{Msg: "n! needs integer", Col: tok.pos}
	}
	r := 1.0
	for n := int(x); n > 1; n-- {
		r *= float64(n)
	}
	return r, nil
}

// unexpected creates an error for a token that cannot appear where it was
// found.
func unexpected(tok lexToken) error {
	return &ParseError{Msg: "unexpected token", Col: tok.pos}
}
