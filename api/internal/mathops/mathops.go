// Package mathops backs the thin math endpoints. Every operation is a direct
// call into an external library — expr-lang for evaluation, gonum for
// numeric calculus and plotting, martinlindhe/unit for conversions — with no
// parsing logic of its own.
package mathops

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/integrate/quad"
)

// Evaluate computes an expression against a variable environment.
func Evaluate(expression string, vars map[string]any) (any, error) {
	if vars == nil {
		vars = map[string]any{}
	}
	out, err := expr.Eval(expression, vars)
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", expression, err)
	}
	return out, nil
}

// DerivativeAt approximates d(expression)/d(variable) at the point x.
func DerivativeAt(expression, variable string, x float64) (float64, error) {
	f, err := compileFunc(expression, variable)
	if err != nil {
		return 0, err
	}
	d := fd.Derivative(f, x, nil)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("derivative of %q is not finite at %v", expression, x)
	}
	return d, nil
}

// IntegrateOver computes the definite integral of expression over [from, to]
// by fixed-order Gauss-Legendre quadrature.
func IntegrateOver(expression, variable string, from, to float64) (float64, error) {
	f, err := compileFunc(expression, variable)
	if err != nil {
		return 0, err
	}
	v := quad.Fixed(f, from, to, 200, nil, 0)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("integral of %q is not finite on [%v, %v]", expression, from, to)
	}
	return v, nil
}

// compileFunc turns a one-variable expression into a float64 function.
func compileFunc(expression, variable string) (func(float64) float64, error) {
	if variable == "" {
		variable = "x"
	}
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return func(x float64) float64 {
		out, err := expr.Run(program, map[string]any{variable: x})
		if err != nil {
			return math.NaN()
		}
		switch v := out.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		default:
			return math.NaN()
		}
	}, nil
}
