// Package expr provides an immutable expression tree for scalar real
// functions of one variable. Trees are built by the function generator,
// evaluated pointwise during integration and plotting, and rendered to a
// deterministic string that doubles as the structural-equality key.
package expr

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a node in an expression tree. Implementations are value-like and
// immutable: transformations always return a new tree.
type Expr interface {
	// Eval computes the function at x. Domain violations (asin outside
	// [-1,1], division by zero) yield NaN or ±Inf per IEEE-754; Eval never
	// panics.
	Eval(x float64) float64

	// String renders the tree in a deterministic, fully parenthesized form.
	String() string

	// Substitute returns a new tree with every occurrence of the variable
	// replaced by r. Used for function composition f(g(x)).
	Substitute(r Expr) Expr
}

// Var is the single symbolic variable x.
type Var struct{}

func (Var) Eval(x float64) float64 { return x }
func (Var) String() string         { return "x" }
func (Var) Substitute(r Expr) Expr { return r }

// Const is a numeric constant.
type Const struct {
	Value float64
}

func (c Const) Eval(float64) float64 { return c.Value }
func (c Const) String() string       { return strconv.FormatFloat(c.Value, 'g', -1, 64) }
func (c Const) Substitute(Expr) Expr { return c }

// Neg negates its child.
type Neg struct {
	E Expr
}

func (n Neg) Eval(x float64) float64 { return -n.E.Eval(x) }
func (n Neg) String() string         { return "-" + n.E.String() }
func (n Neg) Substitute(r Expr) Expr { return Neg{E: n.E.Substitute(r)} }

// Call applies one of the fixed unary functions to its argument.
type Call struct {
	Fn  string
	Arg Expr
}

func (c Call) Eval(x float64) float64 {
	v := c.Arg.Eval(x)
	switch c.Fn {
	case "sin":
		return math.Sin(v)
	case "cos":
		return math.Cos(v)
	case "tanh":
		return math.Tanh(v)
	case "sinh":
		return math.Sinh(v)
	case "atan":
		return math.Atan(v)
	case "asin":
		return math.Asin(v)
	case "exp":
		return math.Exp(v)
	case "cbrt":
		return math.Cbrt(v)
	}
	return math.NaN()
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Fn)
	b.WriteByte('(')
	b.WriteString(c.Arg.String())
	b.WriteByte(')')
	return b.String()
}

func (c Call) Substitute(r Expr) Expr { return Call{Fn: c.Fn, Arg: c.Arg.Substitute(r)} }

// BinOp is a binary arithmetic node. Op is one of "+", "*", "/", "^".
type BinOp struct {
	Op   string
	L, R Expr
}

func (b BinOp) Eval(x float64) float64 {
	l, r := b.L.Eval(x), b.R.Eval(x)
	switch b.Op {
	case "+":
		return l + r
	case "*":
		return l * r
	case "/":
		return l / r
	case "^":
		return math.Pow(l, r)
	}
	return math.NaN()
}

func (b BinOp) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.L.String())
	if b.Op == "^" {
		sb.WriteString(b.Op)
	} else {
		sb.WriteByte(' ')
		sb.WriteString(b.Op)
		sb.WriteByte(' ')
	}
	sb.WriteString(b.R.String())
	sb.WriteByte(')')
	return sb.String()
}

func (b BinOp) Substitute(r Expr) Expr {
	return BinOp{Op: b.Op, L: b.L.Substitute(r), R: b.R.Substitute(r)}
}

// X returns the variable node.
func X() Expr { return Var{} }

// Num returns a constant node.
func Num(v float64) Expr { return Const{Value: v} }

// Add returns l + r.
func Add(l, r Expr) Expr { return BinOp{Op: "+", L: l, R: r} }

// Mul returns l * r.
func Mul(l, r Expr) Expr { return BinOp{Op: "*", L: l, R: r} }

// Div returns l / r.
func Div(l, r Expr) Expr { return BinOp{Op: "/", L: l, R: r} }

// Pow returns l ^ r.
func Pow(l, r Expr) Expr { return BinOp{Op: "^", L: l, R: r} }

// Apply wraps e in the named unary function.
func Apply(fn string, e Expr) Expr { return Call{Fn: fn, Arg: e} }

// Scale returns k * e.
func Scale(e Expr, k float64) Expr { return Mul(Num(k), e) }

// Negate returns -e.
func Negate(e Expr) Expr { return Neg{E: e} }

// Equal reports whether a and b have identical canonical string forms.
// The comparison is syntactic, not semantic: x+1 and 1+x are unequal.
func Equal(a, b Expr) bool { return a.String() == b.String() }
