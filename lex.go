package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal, possibly in scientific notation.
	tokenNum
	// tokenIdent is a function, constant, or ans.
	tokenIdent
	// tokenOp is a binary or unary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenFact is the postfix factorial !.
	tokenFact
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenIdent: "Ident",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
	tokenFact:  "Fact",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are lexed as operators.
const Operators = "+-*/^%"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far, i.e. the column of the last
	// rune read.
	col int
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// tokenize scans all of src. The result always ends with exactly one EOF
// token unless there is an error.
func tokenize(src string) ([]lexToken, error) {
	l := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. The first time the input is
// exhausted, the result is an EOF token with a nil error. Subsequent calls
// return an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.col + 1}, nil
			}
			return lexToken{}, err
		}
		tok := lexToken{pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
		case r == '(':
			tok.text, tok.kind = "(", tokenOpen
		case r == ')':
			tok.text, tok.kind = ")", tokenClose
		case r == '!':
			tok.text, tok.kind = "!", tokenFact
		case strings.ContainsRune(Operators, r):
			tok.text, tok.kind = string(r), tokenOp
		default:
			return tok, &LexError{Char: r, Col: l.col}
		}
		return tok, nil
	}
}

// scanNum scans digits and dots, allowing a single exponent marker which may
// be followed by a sign. Whether the text is a valid number is decided when
// the parser converts it.
func (l *lexer) scanNum() error {
	var e bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9', r == '.':
			l.buf.WriteRune(r)
		case (r == 'e' || r == 'E') && !e:
			e = true
			l.buf.WriteRune(r)
			s, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if s == '+' || s == '-' {
				l.buf.WriteRune(s)
			} else {
				l.unreadRune()
			}
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}
