// Package ascent implements an arithmetic expression parser and evaluator
// built as a recursive-ascent LR(1) automaton.
//
// An engine instance is generic over its numeric type, either floating-point
// or integer, chosen at construction. Each call to Parse evaluates one
// expression of literals, variables, assignments, the operators
// + - * / % ^, and built-in functions of zero, one, or two arguments.
// Assignments such as "x = 5" persist in the instance's symbol table, so a
// later "x + 1" on the same instance sees them.
//
// The grammar is recognized bottom-up: each parser state is an ordinary
// method, the Go call stack stands in for the automaton's state stack, and
// reductions unwind the right number of frames through a counter threaded
// back along the returns. Values are computed directly during reduction;
// there is no syntax tree.
package ascent
