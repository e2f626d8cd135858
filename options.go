package calc

import (
	"log/slog"
	"strconv"
)

// Option is an option used when creating or cloning an Evaluator.
type Option interface {
	option()
}

type (
	angleopt AngleMode
	ansopt   float64
	depthopt int
	logopt   struct {
		l *slog.Logger
	}
)

func (angleopt) option() {}
func (ansopt) option()   {}
func (depthopt) option() {}
func (logopt) option()   {}

// Angle sets the angle mode in which trigonometric functions interpret their
// arguments.
func Angle(m AngleMode) Option {
	return angleopt(m)
}

// Answer sets the value of ans.
func Answer(v float64) Option {
	return ansopt(v)
}

// MaxDepth sets the deepest nesting an expression may have before evaluation
// fails with a ParseError. Panics if n is not positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("calc: max depth must be positive, not " + strconv.Itoa(n))
	}
	return depthopt(n)
}

// Logger sets a logger to which evaluations are reported at debug level. A nil
// logger disables logging, which is the default.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}
