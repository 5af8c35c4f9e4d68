package ascent

import "strconv"

// LexError reports input that no token family matches.
type LexError struct {
	// Fragment is the consumed input that failed to match.
	Fragment string
}

func (err *LexError) Error() string {
	return "invalid input in lexer: " + strconv.Quote(err.Fragment)
}

// TransitionError reports a grammar error: the automaton state named by
// State has no transition for the lookahead token.
type TransitionError struct {
	// State is the parser state that rejected the token.
	State string
	// Token is the unexpected token, rendered by kind ("scalar", "ident",
	// "end") or as the literal character.
	Token string
	// Input is the full expression being parsed.
	Input string
}

func (err *TransitionError) Error() string {
	return "no transition from " + err.State + " and look-ahead terminal " +
		err.Token + " in expression " + strconv.Quote(err.Input)
}

// NameError reports a read of a variable missing from the symbol table.
type NameError struct {
	// Name is the variable that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unknown variable " + strconv.Quote(err.Name)
}

// FuncError reports a call to a function missing from the table matching
// the call's arity. Lookup never falls back to another arity.
type FuncError struct {
	// Name is the function that was called.
	Name string
	// Arity is the number of arguments supplied.
	Arity int
}

func (err *FuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name) + " taking " +
		strconv.Itoa(err.Arity) + " arguments"
}

// AssignError reports an assignment whose target had already been reduced
// to a value rather than a bare identifier.
type AssignError struct{}

func (err *AssignError) Error() string {
	return "assignment needs a variable identifier"
}

// CalleeError reports a function call whose callee position did not hold a
// bare identifier.
type CalleeError struct{}

func (err *CalleeError) Error() string {
	return "function call needs an identifier"
}

// ArgError reports a built-in function called with arguments outside its
// domain, such as reversed rand bounds or a zero mod divisor.
type ArgError struct {
	// Func is the built-in's name.
	Func string
	// Reason names the violated constraint.
	Reason string
}

func (err *ArgError) Error() string {
	return "invalid call to " + strconv.Quote(err.Func) + ": " + err.Reason
}

// DomainError reports an integer division or remainder by zero.
type DomainError struct {
	// Op is the offending operator.
	Op string
}

func (err *DomainError) Error() string {
	return "integer " + strconv.Quote(err.Op) + " by zero"
}

// ParseError reports an expression the automaton did not accept as one
// complete sentence.
type ParseError struct {
	// Input is the full expression being parsed.
	Input string
}

func (err *ParseError) Error() string {
	return "expression did not parse: " + strconv.Quote(err.Input)
}
