package funcgen

import "github.com/abhisek/angler/internal/expr"

// primitives is the fixed pool the generator draws from. Each entry builds a
// fresh tree; the asin primitive divides its argument by the interval limit
// so it stays inside the [-1,1] domain everywhere on the round's interval.
var primitives = []func(limit float64) expr.Expr{
	func(float64) expr.Expr { return expr.X() },
	func(float64) expr.Expr { return expr.Pow(expr.X(), expr.Num(2)) },
	func(float64) expr.Expr { return expr.Pow(expr.X(), expr.Num(3)) },
	func(float64) expr.Expr { return expr.Pow(expr.X(), expr.Num(4)) },
	func(float64) expr.Expr { return expr.Apply("sin", expr.X()) },
	func(float64) expr.Expr { return expr.Apply("cos", expr.X()) },
	func(float64) expr.Expr { return expr.Apply("exp", expr.X()) },
	func(float64) expr.Expr { return expr.Apply("tanh", expr.X()) },
	func(float64) expr.Expr { return expr.Apply("sinh", expr.X()) },
	func(float64) expr.Expr { return expr.Apply("atan", expr.X()) },
	func(float64) expr.Expr {
		return expr.Div(expr.Num(1), expr.Add(expr.Pow(expr.X(), expr.Num(2)), expr.Num(1)))
	},
	func(float64) expr.Expr { return expr.Apply("cbrt", expr.X()) },
	func(limit float64) expr.Expr {
		return expr.Apply("asin", expr.Div(expr.X(), expr.Num(limit)))
	},
}

// scalars are the multipliers a primitive may be scaled by.
var scalars = []float64{0.5, 1.5, 2, 3}
