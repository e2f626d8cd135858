package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		err    bool
	}{
		// spaces
		{"", nil, false},
		{" \t \r\n ", nil, false},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, false},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, false},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, false},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, false},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1}}, false},
		{".", []lexToken{{text: ".", kind: tokenNum, pos: 1}}, false},
		{"1.1.1", []lexToken{{text: "1.1.1", kind: tokenNum, pos: 1}}, false},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, false},
		{"1E1", []lexToken{{text: "1E1", kind: tokenNum, pos: 1}}, false},
		{"1e", []lexToken{{text: "1e", kind: tokenNum, pos: 1}}, false},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, false},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, false},
		{"3.14e2", []lexToken{{text: "3.14e2", kind: tokenNum, pos: 1}}, false},
		{"1e1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}, {text: "e1", kind: tokenIdent, pos: 4}}, false},
		{"1e+", []lexToken{{text: "1e+", kind: tokenNum, pos: 1}}, false},
		{"2x", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, false},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, false},
		{"1-2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, false},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}, false},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}, false},
		{"Ans", []lexToken{{text: "Ans", kind: tokenIdent, pos: 1}}, false},
		{"log10", []lexToken{{text: "log10", kind: tokenIdent, pos: 1}}, false},
		{"sin(", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 4}}, false},
		// operators
		{"+-*/^%", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
			{text: "%", kind: tokenOp, pos: 6},
		}, false},
		{"5!!", []lexToken{{text: "5", kind: tokenNum, pos: 1}, {text: "!", kind: tokenFact, pos: 2}, {text: "!", kind: tokenFact, pos: 3}}, false},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, false},
		// erroneous symbols
		{"$", nil, true},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}}, true},
		{"1,2", []lexToken{{text: "1", kind: tokenNum, pos: 1}}, true},
		{"[1]", nil, true},
		{"×", nil, true},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err != nil {
				t.Errorf("scanning %q: expected token %v but got error %v", c.src, want, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		got, err := scan.next()
		switch {
		case c.err && err == nil:
			t.Errorf("scanning %q: expected error, got %v", c.src, got)
		case !c.err && err != nil:
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
		case !c.err && got.kind != tokenEOF:
			t.Errorf("scanning %q: extra token %v", c.src, got)
		case !c.err:
			if _, err := scan.next(); err != io.EOF {
				t.Errorf("scanning %q: expected io.EOF after EOF token, got %v", c.src, err)
			}
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src  string
		char rune
		col  int
		msg  string
	}{
		{"$", '$', 1, "bad character: $"},
		{"1 + #", '#', 5, "bad character: #"},
		{"sin(30)&", '&', 8, "bad character: &"},
		{"αβ;", ';', 3, "bad character: ;"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := tokenize(c.src)
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("want *LexError, got %v", err)
			}
			if le.Char != c.char || le.Col != c.col {
				t.Errorf("want %q at %d, got %q at %d", c.char, c.col, le.Char, le.Col)
			}
			if le.Error() != c.msg {
				t.Errorf("want message %q, got %q", c.msg, le.Error())
			}
		})
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "1", "  2 + 3  ", "sin(90)!"} {
		toks, err := tokenize(src)
		if err != nil {
			t.Errorf("tokenize(%q): %v", src, err)
			continue
		}
		n := 0
		for _, tok := range toks {
			if tok.kind == tokenEOF {
				n++
			}
		}
		if n != 1 || toks[len(toks)-1].kind != tokenEOF {
			t.Errorf("tokenize(%q) = %v: want exactly one EOF at the end", src, toks)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"2×3", "2*3"},
		{"6÷2", "6/2"},
		{"√(9)", "sqrt(9)"},
		{"2×π", "2*pi"},
		{"√(π)÷π×2", "sqrt(pi)/pi*2"},
		{"1+2", "1+2"},
	}
	for _, c := range cases {
		if got := Normalize(c.src); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}
