package ascent

// The automaton below is a recursive-ascent LR(1) parser: one method per
// reachable parser item, with the Go call stack standing in for the state
// stack. A reduction sets p.unwind to the number of enclosing state frames
// that belong to the completed production; every state decrements a
// positive counter exactly once on its way out, and states that shifted the
// first symbol of a production loop on their reduction state while the
// counter is zero. The grammar, with precedence rising from + - through
// * / % to unary sign and right-associative ^:
//
//	expr -> expr + expr | expr - expr | expr * expr | expr / expr
//	      | expr % expr | expr ^ expr | + expr | - expr | ( expr )
//	      | scalar | ident | ident = expr
//	      | ident ( ) | ident ( expr ) | ident ( expr , expr )

// shiftOperand dispatches the shifts every •expr position shares: unary
// sign, open bracket, scalar, or identifier. state names the caller for
// the transition error.
func (p *Parser[T]) shiftOperand(state string) error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		return p.uaddAfterOp(la)
	case '(':
		if err := p.next(); err != nil {
			return err
		}
		return p.afterBracket()
	case tokenScalar:
		p.push(valsym(p.look.val))
		if err := p.next(); err != nil {
			return err
		}
		return p.afterScalar()
	case tokenIdent:
		p.push(identsym[T](p.look.text))
		if err := p.next(); err != nil {
			return err
		}
		return p.afterIdent()
	default:
		return p.transitionError(state)
	}
}

// start is the item start -> •expr.
func (p *Parser[T]) start() error {
	if err := p.shiftOperand("start"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterExpr(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterExpr is the item start -> expr•.
func (p *Parser[T]) afterExpr() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.addAfterOp(la); err != nil {
			return err
		}
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case tokenEnd:
		p.accepted = true
	default:
		return p.transitionError("afterExpr")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// uaddAfterOp is the item expr -> + •expr (and unary minus).
func (p *Parser[T]) uaddAfterOp(op tokenKind) error {
	if err := p.shiftOperand("uaddAfterOp"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterUAdd(op); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterUAdd is the item expr -> + expr• (and unary minus).
func (p *Parser[T]) afterUAdd(op tokenKind) error {
	switch la := p.look.kind; la {
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case '+', '-', ',', ')', tokenEnd:
		p.unwind = 2
		v, err := p.value(p.pop())
		if err != nil {
			return err
		}
		if op == '-' {
			v = -v
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterUAdd")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// addAfterOp is the item expr -> expr + •expr (and binary minus).
func (p *Parser[T]) addAfterOp(op tokenKind) error {
	if err := p.shiftOperand("addAfterOp"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterAdd(op); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterAdd is the item expr -> expr + expr• (and binary minus).
func (p *Parser[T]) afterAdd(op tokenKind) error {
	switch la := p.look.kind; la {
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case '+', '-', ')', ',', tokenEnd:
		p.unwind = 3
		rhs := p.pop()
		lhs := p.pop()
		a, err := p.value(lhs)
		if err != nil {
			return err
		}
		b, err := p.value(rhs)
		if err != nil {
			return err
		}
		if op == '+' {
			p.push(valsym(a + b))
		} else {
			p.push(valsym(a - b))
		}
	default:
		return p.transitionError("afterAdd")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// mulAfterOp is the item expr -> expr * •expr (and / %).
func (p *Parser[T]) mulAfterOp(op tokenKind) error {
	if err := p.shiftOperand("mulAfterOp"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterMul(op); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterMul is the item expr -> expr * expr• (and / %).
func (p *Parser[T]) afterMul(op tokenKind) error {
	switch p.look.kind {
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case '+', '-', '*', '/', '%', ')', ',', tokenEnd:
		p.unwind = 3
		rhs := p.pop()
		lhs := p.pop()
		a, err := p.value(lhs)
		if err != nil {
			return err
		}
		b, err := p.value(rhs)
		if err != nil {
			return err
		}
		if b == 0 && !isFloat[T]() && op != '*' {
			return &DomainError{Op: string(rune(op))}
		}
		switch op {
		case '*':
			p.push(valsym(a * b))
		case '/':
			p.push(valsym(a / b))
		case '%':
			p.push(valsym(modulo(a, b)))
		}
	default:
		return p.transitionError("afterMul")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// powAfterOp is the item expr -> expr ^ •expr.
func (p *Parser[T]) powAfterOp() error {
	if err := p.shiftOperand("powAfterOp"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterPow(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterPow is the item expr -> expr ^ expr•. Shifting on another ^ before
// reducing is what makes the operator right-associative.
func (p *Parser[T]) afterPow() error {
	switch p.look.kind {
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case '+', '-', '*', '/', '%', ',', ')', tokenEnd:
		p.unwind = 3
		rhs := p.pop()
		lhs := p.pop()
		a, err := p.value(lhs)
		if err != nil {
			return err
		}
		b, err := p.value(rhs)
		if err != nil {
			return err
		}
		p.push(valsym(power(a, b)))
	default:
		return p.transitionError("afterPow")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterBracket is the item expr -> ( •expr ).
func (p *Parser[T]) afterBracket() error {
	if err := p.shiftOperand("afterBracket"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.bracketAfterExpr(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// bracketAfterExpr is the item expr -> ( expr •).
func (p *Parser[T]) bracketAfterExpr() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.addAfterOp(la); err != nil {
			return err
		}
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case ')':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterBracketExpr(); err != nil {
			return err
		}
	default:
		return p.transitionError("bracketAfterExpr")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterBracketExpr is the item expr -> ( expr )•. Parentheses only group;
// the operand passes through unchanged.
func (p *Parser[T]) afterBracketExpr() error {
	switch p.look.kind {
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 3
		v, err := p.value(p.pop())
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterBracketExpr")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterScalar is the item expr -> scalar•.
func (p *Parser[T]) afterScalar() error {
	switch p.look.kind {
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 1
		v, err := p.value(p.pop())
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterScalar")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterIdent covers the items expr -> ident•, expr -> ident •= expr, and
// expr -> ident •( ... ): the lookahead decides whether the identifier is a
// variable read, an assignment target, or a callee.
func (p *Parser[T]) afterIdent() error {
	switch p.look.kind {
	case '=':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.assignAfterIdent(); err != nil {
			return err
		}
	case '(':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.callAfterIdent(); err != nil {
			return err
		}
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 1
		v, err := p.value(p.pop())
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterIdent")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// assignAfterIdent is the item expr -> ident = •expr.
func (p *Parser[T]) assignAfterIdent() error {
	if err := p.shiftOperand("assignAfterIdent"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.afterAssign(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterAssign is the item expr -> ident = expr•. The assignment commits to
// the symbol table the moment this production reduces.
func (p *Parser[T]) afterAssign() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.addAfterOp(la); err != nil {
			return err
		}
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case ',', ')', tokenEnd:
		p.unwind = 3
		rhs := p.pop()
		lhs := p.pop()
		if !lhs.ident {
			return &AssignError{}
		}
		v, err := p.assign(lhs.name, rhs)
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterAssign")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// callAfterIdent is the item expr -> ident ( •... ): either a closing
// bracket for a niladic call or the first argument expression.
func (p *Parser[T]) callAfterIdent() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.uaddAfterOp(la); err != nil {
			return err
		}
	case '(':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterBracket(); err != nil {
			return err
		}
	case ')':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterCall0(); err != nil {
			return err
		}
	case tokenScalar:
		p.push(valsym(p.look.val))
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterScalar(); err != nil {
			return err
		}
	case tokenIdent:
		p.push(identsym[T](p.look.text))
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterIdent(); err != nil {
			return err
		}
	default:
		return p.transitionError("callAfterIdent")
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.callAfterArg(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterCall0 is the item expr -> ident ( )•.
func (p *Parser[T]) afterCall0() error {
	switch p.look.kind {
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 3
		name, err := p.callee(p.pop())
		if err != nil {
			return err
		}
		v, err := p.call0(name)
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterCall0")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// callAfterArg is the item expr -> ident ( expr •...).
func (p *Parser[T]) callAfterArg() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.addAfterOp(la); err != nil {
			return err
		}
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case ',':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.callAfterComma(); err != nil {
			return err
		}
	case ')':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterCall1(); err != nil {
			return err
		}
	default:
		return p.transitionError("callAfterArg")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterCall1 is the item expr -> ident ( expr )•.
func (p *Parser[T]) afterCall1() error {
	switch p.look.kind {
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 4
		arg := p.pop()
		name, err := p.callee(p.pop())
		if err != nil {
			return err
		}
		v, err := p.call1(name, arg)
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterCall1")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// callAfterComma is the item expr -> ident ( expr , •expr ).
func (p *Parser[T]) callAfterComma() error {
	if err := p.shiftOperand("callAfterComma"); err != nil {
		return err
	}
	for p.unwind == 0 && len(p.stack) > 0 && !p.accepted {
		if err := p.callAfterArg2(); err != nil {
			return err
		}
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// callAfterArg2 is the item expr -> ident ( expr , expr •).
func (p *Parser[T]) callAfterArg2() error {
	switch la := p.look.kind; la {
	case '+', '-':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.addAfterOp(la); err != nil {
			return err
		}
	case '*', '/', '%':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.mulAfterOp(la); err != nil {
			return err
		}
	case '^':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.powAfterOp(); err != nil {
			return err
		}
	case ')':
		if err := p.next(); err != nil {
			return err
		}
		if err := p.afterCall2(); err != nil {
			return err
		}
	default:
		return p.transitionError("callAfterArg2")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}

// afterCall2 is the item expr -> ident ( expr , expr )•.
func (p *Parser[T]) afterCall2() error {
	switch p.look.kind {
	case '+', '-', '*', '/', '%', '^', ',', ')', tokenEnd:
		p.unwind = 6
		arg2 := p.pop()
		arg1 := p.pop()
		name, err := p.callee(p.pop())
		if err != nil {
			return err
		}
		v, err := p.call2(name, arg1, arg2)
		if err != nil {
			return err
		}
		p.push(valsym(v))
	default:
		return p.transitionError("afterCall2")
	}
	if p.unwind > 0 {
		p.unwind--
	}
	return nil
}
