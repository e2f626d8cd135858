package calc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// ident is an entry in the identifier table.
type ident interface {
	// resolve produces the value of the identifier named by tok. Functions
	// consume their parenthesized argument from p.
	resolve(p *parser, tok lexToken, name string) (float64, error)
}

// constant is a named value.
type constant float64

func (c constant) resolve(*parser, lexToken, string) (float64, error) {
	return float64(c), nil
}

// answer is the evaluator's last committed answer.
type answer struct{}

func (answer) resolve(p *parser, _ lexToken, _ string) (float64, error) {
	return p.ans, nil
}

// monadic is a function of one parenthesized argument.
type monadic struct {
	f func(float64) float64
	// angle marks trigonometric functions, which take their argument in the
	// evaluator's angle mode.
	angle bool
	// domain reports whether x is a valid argument. nil allows everything.
	domain func(x float64) bool
}

func (m monadic) resolve(p *parser, tok lexToken, name string) (float64, error) {
	x, err := p.parsearg()
	if err != nil {
		return 0, err
	}
	if m.domain != nil && !m.domain(x) {
		return 0, &ParseError{Msg: name + " domain error", Col: tok.pos}
	}
	if m.angle && p.mode == Degrees {
		x *= math.Pi / 180
	}
	return m.f(x), nil
}

// logdomain reports whether x is a valid logarithm argument. Only zero and
// negative numbers are rejected; NaN propagates as a result.
func logdomain(x float64) bool {
	return !(x <= 0)
}

// builtins maps lower-case identifiers to their meanings.
var builtins = map[string]ident{
	"pi":  bigconst(bigfloat.Pi),
	"e":   bigconst(euler),
	"ans": answer{},

	"sqrt": monadic{f: math.Sqrt},
	"sin":  monadic{f: math.Sin, angle: true},
	"cos":  monadic{f: math.Cos, angle: true},
	"tan":  monadic{f: math.Tan, angle: true},
	"log":  monadic{f: log10, domain: logdomain},
	"ln":   monadic{f: math.Log, domain: logdomain},
}

// constPrec is the precision in bits to which named constants are computed
// before rounding to float64.
const constPrec = 128

// bigconst computes a constant with f to constPrec bits and rounds it to the
// nearest float64.
func bigconst(f func(out *big.Float) *big.Float) constant {
	z := new(big.Float).SetPrec(constPrec)
	f(z)
	v, _ := z.Float64()
	return constant(v)
}

func euler(out *big.Float) *big.Float {
	var one big.Float
	one.SetPrec(out.Prec()).SetInt64(1)
	return bigfloat.Exp(out, &one)
}

// ln10 is the natural logarithm of 10 to constPrec bits.
var ln10 = func() *big.Float {
	z := new(big.Float).SetPrec(constPrec).SetInt64(10)
	return bigfloat.Log(z, z)
}()

// log10 computes the base-10 logarithm of a positive x to constPrec bits
// before rounding, so that exact powers of ten have exact logarithms.
func log10(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return x
	}
	z := new(big.Float).SetPrec(constPrec).SetFloat64(x)
	bigfloat.Log(z, z)
	v, _ := z.Quo(z, ln10).Float64()
	return v
}
