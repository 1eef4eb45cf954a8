package internal

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

// parse fills state.stmts. The first syntax error aborts the whole parse:
// it is recorded in state.errors and no statement is kept.
func (p *parser) parse() {
	defer func() {
		if r := recover(); r != nil {
			if _, isErr := r.(*Error); !isErr {
				panic(r)
			}
			p.state.stmts = nil
		}
	}()
	for !p.isAtEnd() {
		p.state.stmts = append(p.state.stmts, p.declaration())
	}
}

func (p *parser) declaration() stmt {
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectedVarName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	if p.match(tkFun, tkClass, tkReturn) {
		p.state.fatalError(errUnsupported, p.previous())
	}
	return p.expressionStmt()
}

// forLoop desugars into an optional initializer followed by a while loop,
// wrapped in a block so the initializer is scoped to the loop.
func (p *parser) forLoop() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenAfterFor)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonCond)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errExpectedParenAfterForClauses)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{
			stmts: []stmt{body, &exprStmt{expression: inc}},
		}
	}
	if cond == nil {
		cond = &literalExpr{value: loxBool(true)}
	}
	body = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
	if init != nil {
		body = &blockStmt{stmts: []stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errExpectedParenAfterIf)
	st.condition = p.expression()
	p.consume(tkRightParen, errExpectedParenAfterIfCond)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonValue)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) while() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenAfterWhile)
	cond := p.expression()
	p.consume(tkRightParen, errExpectedParenAfterWhileCond)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tkRightBrace, errExpectedClosingBrace)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		p.state.fatalError(errInvalidAssignTarget, equal)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.state.fatalError(errExpectedExpr, p.peek())
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	return p.peek().token == token
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}
