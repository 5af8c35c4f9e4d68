package ascent

import "golang.org/x/exp/constraints"

// Num is the set of numeric types an engine can compute with.
type Num interface {
	constraints.Integer | constraints.Float
}

// symbol is one operand-stack element: either a resolved value or the name
// of an identifier whose meaning is not yet decided. Identifiers resolve
// only where semantics force it: a variable read, the left side of an
// assignment, or a callee name.
type symbol[T Num] struct {
	name  string
	val   T
	ident bool
}

func valsym[T Num](v T) symbol[T] { return symbol[T]{val: v} }

func identsym[T Num](name string) symbol[T] { return symbol[T]{name: name, ident: true} }

// isFloat reports whether T is a floating-point type. 1/2 truncates to zero
// exactly when T is an integer type.
func isFloat[T Num]() bool {
	return T(1)/T(2) != 0
}
