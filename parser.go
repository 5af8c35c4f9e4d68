package ascent

import (
	"log/slog"
	"math"
	"math/rand"
	"strings"
)

// Parser is an arithmetic expression engine. It owns its symbol table and
// function registry for as long as it lives; each call to Parse evaluates
// one expression, and assignments made by an expression persist into later
// calls on the same instance. A Parser is not safe for concurrent use.
type Parser[T Num] struct {
	vars   map[string]T
	funcs0 map[string]Func0[T]
	funcs1 map[string]Func1[T]
	funcs2 map[string]Func2[T]
	rng    *randSource
	diag   *slog.Logger

	// State below is private to one Parse call and reset at its start.
	input    string
	scan     *lexer[T]
	look     token[T]
	stack    []symbol[T]
	unwind   int
	accepted bool
}

// Option configures a Parser at construction.
type Option[T Num] interface {
	apply(*Parser[T])
}

type (
	varOpt[T Num] struct {
		name string
		val  T
	}
	func0Opt[T Num] struct {
		name string
		fn   Func0[T]
	}
	func1Opt[T Num] struct {
		name string
		fn   Func1[T]
	}
	func2Opt[T Num] struct {
		name string
		fn   Func2[T]
	}
	randOpt[T Num] struct{ src rand.Source }
	diagOpt[T Num] struct{ log *slog.Logger }
)

func (o varOpt[T]) apply(p *Parser[T]) { p.vars[o.name] = o.val }

func (o func0Opt[T]) apply(p *Parser[T]) { setfn(p.funcs0, o.name, o.fn) }
func (o func1Opt[T]) apply(p *Parser[T]) { setfn(p.funcs1, o.name, o.fn) }
func (o func2Opt[T]) apply(p *Parser[T]) { setfn(p.funcs2, o.name, o.fn) }

func setfn[F any](m map[string]F, name string, fn F) {
	m[name] = fn
}

// randOpt is consumed by New before the function tables are built.
func (o randOpt[T]) apply(p *Parser[T]) {}

func (o diagOpt[T]) apply(p *Parser[T]) { p.diag = o.log }

// WithVar defines a variable in the symbol table at construction.
func WithVar[T Num](name string, val T) Option[T] { return varOpt[T]{name, val} }

// WithFunc0 registers a zero-argument built-in. The default tables already
// hold a name's entry when fn replaces it.
func WithFunc0[T Num](name string, fn Func0[T]) Option[T] { return func0Opt[T]{name, fn} }

// WithFunc1 registers a one-argument built-in.
func WithFunc1[T Num](name string, fn Func1[T]) Option[T] { return func1Opt[T]{name, fn} }

// WithFunc2 registers a two-argument built-in.
func WithFunc2[T Num](name string, fn Func2[T]) Option[T] { return func2Opt[T]{name, fn} }

// WithSource gives the engine its own random source instead of the shared
// process-wide one, for deterministic evaluation of the rand built-ins.
func WithSource[T Num](src rand.Source) Option[T] { return randOpt[T]{src} }

// WithDiagnostics sets the logger for lexer diagnostics. By default the
// engine is silent.
func WithDiagnostics[T Num](log *slog.Logger) Option[T] { return diagOpt[T]{log} }

// piValue is a variable, not a constant: untyped math.Pi is not
// representable in the integer types of Num, so the conversion to T must
// go through a non-constant to truncate there.
var piValue = math.Pi

// New creates an engine computing with values of type T. The symbol table
// starts with the constant pi; the function registry starts with the
// default built-ins and is read-only after construction.
func New[T Num](opts ...Option[T]) *Parser[T] {
	p := &Parser[T]{
		vars: map[string]T{"pi": T(piValue)},
		rng:  sharedRand,
	}
	// The random source must be chosen before the tables close over it, so
	// scan for it first.
	for _, o := range opts {
		if o, ok := o.(randOpt[T]); ok {
			p.rng = &randSource{r: rand.New(o.src)}
		}
	}
	p.funcs0 = defaultFuncs0[T](p.rng)
	p.funcs1 = defaultFuncs1[T]()
	p.funcs2 = defaultFuncs2[T](p.rng)
	for _, o := range opts {
		o.apply(p)
	}
	return p
}

// Parse evaluates one expression and returns its value. Lexical, grammar,
// and semantic failures are reported as an error; there is no partial
// result, but assignments committed by reductions that completed before the
// failure stay in the symbol table.
func (p *Parser[T]) Parse(expr string) (T, error) {
	var zero T
	p.input = expr
	p.scan = lex[T](strings.NewReader(expr), p.diag)
	p.look = token[T]{}
	p.stack = p.stack[:0]
	p.unwind = 0
	p.accepted = false
	if err := p.next(); err != nil {
		return zero, err
	}
	if err := p.start(); err != nil {
		return zero, err
	}
	if !p.accepted || len(p.stack) != 1 {
		return zero, &ParseError{Input: expr}
	}
	return p.value(p.stack[0])
}

// SetVar sets the value of a variable, creating it if necessary.
func (p *Parser[T]) SetVar(name string, val T) {
	p.vars[name] = val
}

// Lookup returns the value of a variable and whether it exists.
func (p *Parser[T]) Lookup(name string) (T, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// ClearVars empties the symbol table, keeping only the pi constant.
func (p *Parser[T]) ClearVars() {
	p.vars = map[string]T{"pi": T(piValue)}
}

// next advances the lookahead, converting an invalid token into the lexical
// error that aborts the parse.
func (p *Parser[T]) next() error {
	tok := p.scan.next()
	if tok.kind == tokenInvalid {
		return &LexError{Fragment: tok.text}
	}
	p.look = tok
	return nil
}

func (p *Parser[T]) push(s symbol[T]) {
	p.stack = append(p.stack, s)
}

func (p *Parser[T]) pop() symbol[T] {
	s := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return s
}

// value resolves a stack symbol to a number, reading the symbol table when
// the symbol is a pending identifier.
func (p *Parser[T]) value(s symbol[T]) (T, error) {
	if !s.ident {
		return s.val, nil
	}
	v, ok := p.vars[s.name]
	if !ok {
		var zero T
		return zero, &NameError{Name: s.name}
	}
	return v, nil
}

// assign commits name = arg to the symbol table and returns the stored
// value, which is also the value of the whole assignment expression.
func (p *Parser[T]) assign(name string, arg symbol[T]) (T, error) {
	v, err := p.value(arg)
	if err != nil {
		return v, err
	}
	p.vars[name] = v
	return v, nil
}

// callee extracts the function name from the symbol in callee position.
func (p *Parser[T]) callee(s symbol[T]) (string, error) {
	if !s.ident {
		return "", &CalleeError{}
	}
	return s.name, nil
}

func (p *Parser[T]) call0(name string) (T, error) {
	fn := p.funcs0[name]
	if fn == nil {
		var zero T
		return zero, &FuncError{Name: name, Arity: 0}
	}
	return fn()
}

func (p *Parser[T]) call1(name string, arg symbol[T]) (T, error) {
	fn := p.funcs1[name]
	if fn == nil {
		var zero T
		return zero, &FuncError{Name: name, Arity: 1}
	}
	x, err := p.value(arg)
	if err != nil {
		return x, err
	}
	return fn(x)
}

func (p *Parser[T]) call2(name string, arg1, arg2 symbol[T]) (T, error) {
	fn := p.funcs2[name]
	if fn == nil {
		var zero T
		return zero, &FuncError{Name: name, Arity: 2}
	}
	x, err := p.value(arg1)
	if err != nil {
		return x, err
	}
	y, err := p.value(arg2)
	if err != nil {
		return y, err
	}
	return fn(x, y)
}

func (p *Parser[T]) transitionError(state string) error {
	return &TransitionError{State: state, Token: p.look.kind.String(), Input: p.input}
}
