// Package eval compiles formula text into evaluable programs.
//
// It wraps github.com/expr-lang/expr behind the call-by-current-binding
// contract the plot engine expects: callers mutate a bound variable with Set
// and then read Value, any number of times, against one compiled program.
package eval

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluable is a compiled expression bound to named variables.
//
// It is not safe for concurrent use; the engine is single-threaded per frame.
type Evaluable struct {
	prog *vm.Program
	env  map[string]any
}

// Compile compiles text with the given variable names bound (initially 0).
// Unknown identifiers, unbalanced parentheses and other syntax problems are
// compile errors.
func Compile(text string, vars ...string) (*Evaluable, error) {
	env := baseEnv()
	for _, v := range vars {
		env[v] = float64(0)
	}
	prog, err := expr.Compile(text, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", text, err)
	}
	return &Evaluable{prog: prog, env: env}, nil
}

// Set updates the current value of a bound variable.
func (e *Evaluable) Set(name string, v float64) {
	e.env[name] = v
}

// Value evaluates the program against the current variable bindings.
//
// Boolean results map to exactly 1.0 and 0.0. Runtime evaluation failures map
// to NaN, which the samplers and scanners already tolerate; float semantics
// such as division by zero producing ±Inf pass through untouched.
func (e *Evaluable) Value() float64 {
	out, err := expr.Run(e.prog, e.env)
	if err != nil {
		return math.NaN()
	}
	switch v := out.(type) {
	case float64:
		return v
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	case int:
		return float64(v)
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return math.NaN()
	}
}

// baseEnv returns the constants and functions every binding set carries.
// Function parameters are deliberately untyped so that integer literals in
// user formulas (e.g. sin(2)) evaluate without conversion errors.
func baseEnv() map[string]any {
	return map[string]any{
		"pi":    math.Pi,
		"e":     math.E,
		"tau":   2 * math.Pi,
		"sin":   f1(math.Sin),
		"cos":   f1(math.Cos),
		"tan":   f1(math.Tan),
		"asin":  f1(math.Asin),
		"acos":  f1(math.Acos),
		"atan":  f1(math.Atan),
		"atan2": f2(math.Atan2),
		"sinh":  f1(math.Sinh),
		"cosh":  f1(math.Cosh),
		"tanh":  f1(math.Tanh),
		"sqrt":  f1(math.Sqrt),
		"cbrt":  f1(math.Cbrt),
		"exp":   f1(math.Exp),
		"log":   f1(math.Log),
		"log2":  f1(math.Log2),
		"log10": f1(math.Log10),
		"pow":   f2(math.Pow),
		"mod":   f2(math.Mod),
		"sign":  f1(func(x float64) float64 { return signum(x) }),
	}
}

func f1(fn func(float64) float64) func(any) float64 {
	return func(v any) float64 { return fn(toFloat(v)) }
}

func f2(fn func(float64, float64) float64) func(any, any) float64 {
	return func(a, b any) float64 { return fn(toFloat(a), toFloat(b)) }
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case bool:
		if x {
			return 1.0
		}
		return 0.0
	default:
		return math.NaN()
	}
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // preserves ±0 and NaN
	}
}
