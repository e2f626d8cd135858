package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
)

// AngleMode is the unit in which trigonometric functions take arguments.
type AngleMode int8

const (
	// Degrees is the default angle mode.
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return fmt.Sprintf("AngleMode(%d)", int8(m))
	}
}

// Set parses s into m. Along with String and Type, it allows an AngleMode to
// be used as a command-line flag value.
func (m *AngleMode) Set(s string) error {
	v, err := ParseAngleMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type names the flag value type.
func (m *AngleMode) Type() string {
	return "deg|rad"
}

// ParseAngleMode parses an angle mode name. The names deg, degree, and degrees
// select Degrees; rad, radian, and radians select Radians. Case is ignored.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return 0, fmt.Errorf("unknown angle mode %q", s)
	}
}

// Result is the outcome of evaluating an expression. Exactly one of the
// following holds: Err is nil and Value is the result, which may be NaN or
// infinite; or Err is non-nil and Value is NaN.
type Result struct {
	Value float64
	Err   error
}

// OK returns whether the evaluation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the error message, or the empty string if the evaluation
// succeeded.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Evaluator is a calculator session. It holds the angle mode and the last
// answer, which persist across evaluations until changed. An Evaluator is
// safe for concurrent use; each evaluation sees the angle mode and answer as
// they were when it began.
type Evaluator struct {
	mu       sync.Mutex
	mode     AngleMode
	ans      float64
	maxDepth int
	log      *slog.Logger
}

// New creates an evaluator in degrees mode with ans equal to 0.
func New(opts ...Option) *Evaluator {
	ev := Evaluator{maxDepth: DefaultMaxDepth}
	return ev.Clone(opts...)
}

// Clone creates a copy of an evaluator and applies options to it. The copy
// shares no state with ev.
func (ev *Evaluator) Clone(opts ...Option) *Evaluator {
	ev.mu.Lock()
	n := Evaluator{
		mode:     ev.mode,
		ans:      ev.ans,
		maxDepth: ev.maxDepth,
		log:      ev.log,
	}
	ev.mu.Unlock()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case angleopt:
			n.mode = AngleMode(opt)
		case ansopt:
			n.ans = float64(opt)
		case depthopt:
			n.maxDepth = int(opt)
		case logopt:
			n.log = opt.l
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// SetAngleMode sets the angle mode for subsequent evaluations.
func (ev *Evaluator) SetAngleMode(m AngleMode) {
	ev.mu.Lock()
	ev.mode = m
	ev.mu.Unlock()
}

// AngleMode returns the current angle mode.
func (ev *Evaluator) AngleMode() AngleMode {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return ev.mode
}

// LastAnswer returns the value of ans.
func (ev *Evaluator) LastAnswer() float64 {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return ev.ans
}

// SetLastAnswer sets the value of ans. Callers which round or otherwise adjust
// results before showing them should set the adjusted value here.
func (ev *Evaluator) SetLastAnswer(v float64) {
	ev.mu.Lock()
	ev.ans = v
	ev.mu.Unlock()
}

// Commit sets ans to the value of a successful result. It returns false and
// leaves ans unchanged if r is a failure.
func (ev *Evaluator) Commit(r Result) bool {
	if r.Err != nil {
		return false
	}
	ev.SetLastAnswer(r.Value)
	return true
}

// Evaluate normalizes, lexes, and evaluates an expression. Any failure is
// returned in the result; Evaluate never panics because of its input.
// Evaluate does not change ans.
func (ev *Evaluator) Evaluate(src string) (res Result) {
	ev.mu.Lock()
	p := parser{mode: ev.mode, ans: ev.ans, maxDepth: ev.maxDepth}
	lg := ev.log
	ev.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Value: math.NaN(), Err: fmt.Errorf("calc: internal error evaluating %q: %v", src, r)}
		}
		report(lg, src, res)
	}()
	toks, err := tokenize(Normalize(src))
	if err != nil {
		return Result{Value: math.NaN(), Err: err}
	}
	p.toks = toks
	v, err := p.parse()
	if err != nil {
		return Result{Value: math.NaN(), Err: err}
	}
	return Result{Value: v}
}

// Eval is a shortcut for Evaluate that returns the result's fields.
func (ev *Evaluator) Eval(src string) (float64, error) {
	r := ev.Evaluate(src)
	return r.Value, r.Err
}

// EvalString is a shortcut to evaluate an expression with a new evaluator.
func EvalString(src string, opts ...Option) (float64, error) {
	return New(opts...).Eval(src)
}

// report logs the outcome of an evaluation.
func report(lg *slog.Logger, src string, res Result) {
	if lg == nil {
		return
	}
	if res.Err == nil {
		lg.Debug("evaluated", slog.String("expr", src), slog.Float64("value", res.Value))
		return
	}
	var ie InputError
	if errors.As(res.Err, &ie) {
		lg.Debug("evaluation failed", slog.String("expr", src), slog.String("err", errpos(ie)))
		return
	}
	lg.Warn("evaluation failed", slog.String("expr", src), slog.Any("err", res.Err))
}
