package lox

// Parser is a recursive-descent parser with panic-mode error recovery:
// a broken production panics(parseError{}) after recording the diagnostic,
// and declaration() recovers and calls synchronize() to resume parsing at
// the next statement boundary. Ported from linhyee-lox-lang/lox/parser.go
// with the ternary/comma/postfix/prefix/array grammar removed (spec §3
// has no nodes for them) and for-loops desugaring into a Loop statement
// that carries the increment, instead of nesting it inside a While body.
type Parser struct {
	tokens  []*Token
	diag    *Diagnostics
	current int
	loop    int
}

func NewParser(tokens []*Token, diag *Diagnostics) *Parser {
	return &Parser{tokens: tokens, diag: diag}
}

func (this *Parser) Parse() []Stmt {
	var statements []Stmt
	for !this.isAtEnd() {
		statements = append(statements, this.declaration()...)
	}
	return statements
}

func (this *Parser) declaration() (stmts []Stmt) {
	defer func(parser *Parser) {
		if _, ok := recover().(parseError); ok {
			parser.synchronize()
			stmts = nil
		}
	}(this)
	if this.match(CLASS) {
		stmts = append(stmts, this.classDeclaration())
		return
	}
	if this.match(FUN) {
		stmts = append(stmts, this.function("function"))
		return
	}
	if this.match(VAR) {
		return this.varDeclarations()
	}
	stmts = append(stmts, this.statement())
	return
}

// function parses a `fun name(...) {...}` declaration or a `name(...)
// {...}` method declaration inside a class body.
func (this *Parser) function(kind string) *Function {
	name := this.consume(IDENTIFIER, "expect "+kind+" name.")
	parameters, body := this.functionBody(kind)
	return NewFunction(name, parameters, body)
}

// lambda parses the anonymous-function production reached from primary()
// when `fun` is not immediately followed by a name.
func (this *Parser) lambda(kind string) *Lambda {
	parameters, body := this.functionBody(kind)
	return NewLambda(parameters, body)
}

func (this *Parser) functionBody(kind string) ([]*Token, []Stmt) {
	this.consume(LEFT_PAREN, "expect '(' after "+kind+" name.")
	var parameters []*Token
	if !this.check(RIGHT_PAREN) {
		for {
			if len(parameters) >= 255 {
				// Non-fatal: report and keep parsing the extra parameters
				// rather than aborting the whole declaration.
				this.diag.ErrorAtToken(this.peek(), "can't have more than 255 parameters.")
			}
			parameters = append(parameters, this.consume(IDENTIFIER, "expect parameter name."))
			if !this.match(COMMA) {
				break
			}
		}
	}
	this.consume(RIGHT_PAREN, "expect ')' after parameters.")
	this.consume(LEFT_BRACE, "expect '{' before "+kind+" body.")
	body := this.block()
	return parameters, body
}

func (this *Parser) classDeclaration() Stmt {
	name := this.consume(IDENTIFIER, "expect class name.")

	var superclass *Variable
	if this.match(LESS) {
		this.consume(IDENTIFIER, "expect superclass name.")
		superclass = NewVariable(this.previous())
	}

	this.consume(LEFT_BRACE, "expect '{' before class body.")

	var methods []*Function
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		methods = append(methods, this.function("method"))
	}

	this.consume(RIGHT_BRACE, "expect '}' after class body.")
	return NewClass(name, superclass, methods)
}

func (this *Parser) varDeclarations() (stmts []Stmt) {
	stmts = append(stmts, this.varDeclaration(false))
	for this.match(COMMA) {
		stmts = append(stmts, this.varDeclaration(false))
	}
	this.consume(SEMICOLON, "expect ';' after variable declaration.")
	return
}

func (this *Parser) varDeclaration(consume bool) Stmt {
	name := this.consume(IDENTIFIER, "expect variable name.")
	var initializer Expr
	if this.match(EQUAL) {
		initializer = this.assignment()
	}
	if consume {
		this.consume(SEMICOLON, "expect ';' after variable declaration.")
	}
	return NewVar(name, initializer)
}

func (this *Parser) whileStatement() Stmt {
	this.consume(LEFT_PAREN, "expect '(' after 'while'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "expect ')' after condition.")

	this.loop++
	defer func(this *Parser) { this.loop-- }(this)
	body := this.statement()

	return NewLoop(condition, body, nil)
}

func (this *Parser) breakStatement() Stmt {
	keyword := this.previous()
	if this.loop <= 0 {
		this.error(keyword, "break statement must be inside a loop.")
	}
	this.consume(SEMICOLON, "expect ';' after 'break' statement.")
	return NewBreak(keyword)
}

func (this *Parser) continueStatement() Stmt {
	keyword := this.previous()
	if this.loop <= 0 {
		this.error(keyword, "continue statement must be inside a loop.")
	}
	this.consume(SEMICOLON, "expect ';' after 'continue' statement.")
	return NewContinue(keyword)
}

func (this *Parser) statement() Stmt {
	if this.match(FOR) {
		return this.forStatement()
	}
	if this.match(IF) {
		return this.ifStatement()
	}
	if this.match(PRINT) {
		return this.printStatement()
	}
	if this.match(RETURN) {
		return this.returnStatement()
	}
	if this.match(WHILE) {
		return this.whileStatement()
	}
	if this.match(BREAK) {
		return this.breakStatement()
	}
	if this.match(CONTINUE) {
		return this.continueStatement()
	}
	if this.match(LEFT_BRACE) {
		return NewBlock(this.block())
	}
	return this.expressionStatement()
}

// forStatement desugars `for (init; cond; incr) body` into a Loop node
// with the increment carried as its own field (wrapped in a Block together
// with the initializer when there is one), rather than splicing
// it into the body as a Block the way book-Lox does. That splice is what
// breaks continue: a continue signal raised inside body would skip a
// body-appended increment statement entirely. Keeping increment out on
// the Loop node lets the interpreter's Loop executor run it unconditionally
// after each iteration, continue included.
func (this *Parser) forStatement() Stmt {
	this.consume(LEFT_PAREN, "expect '(' after 'for'.")

	var initializer Stmt
	if this.match(SEMICOLON) {
		initializer = nil
	} else if this.match(VAR) {
		initializer = this.varDeclaration(true)
	} else {
		initializer = this.expressionStatement()
	}

	var condition Expr
	if !this.check(SEMICOLON) {
		condition = this.expression()
	}
	this.consume(SEMICOLON, "expect ';' after loop condition.")

	var increment Expr
	if !this.check(RIGHT_PAREN) {
		increment = this.expression()
	}
	this.consume(RIGHT_PAREN, "expect ')' after for clauses.")

	this.loop++
	defer func(this *Parser) { this.loop-- }(this)

	body := this.statement()

	if condition == nil {
		condition = NewLiteral(true)
	}
	loop := NewLoop(condition, body, increment)

	var result Stmt = loop
	if initializer != nil {
		result = NewBlock([]Stmt{initializer, loop})
	}
	return result
}

func (this *Parser) ifStatement() Stmt {
	this.consume(LEFT_PAREN, "expect '(' after 'if'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "expect ')' after if condition.")

	thenBranch := this.statement()
	var elseBranch Stmt
	if this.match(ELSE) {
		elseBranch = this.statement()
	}
	return NewIf(condition, thenBranch, elseBranch)
}

func (this *Parser) printStatement() Stmt {
	value := this.expression()
	this.consume(SEMICOLON, "expect ';' after value.")
	return NewPrint(value)
}

func (this *Parser) returnStatement() Stmt {
	keyword := this.previous()
	var value Expr
	if !this.check(SEMICOLON) {
		value = this.expression()
	}
	this.consume(SEMICOLON, "expect ';' after return value.")
	return NewReturn(keyword, value)
}

func (this *Parser) expressionStatement() Stmt {
	expr := this.expression()
	this.consume(SEMICOLON, "expect ';' after expression.")
	return NewExpression(expr)
}

func (this *Parser) block() []Stmt {
	var statements []Stmt
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		statements = append(statements, this.declaration()...)
	}
	this.consume(RIGHT_BRACE, "expect '}' after block.")
	return statements
}

func (this *Parser) assignment() Expr {
	expr := this.or()
	if this.match(EQUAL) {
		equals := this.previous()
		value := this.assignment()

		if v, ok := expr.(*Variable); ok {
			return NewAssignment(v.name, value)
		} else if v, ok := expr.(*Get); ok {
			return NewSet(v.object, v.name, value)
		}
		// Non-fatal: report and keep parsing rather than entering panic-mode
		// recovery, since an invalid assignment target doesn't leave the
		// parser lost the way a missing token does.
		this.diag.ErrorAtToken(equals, "invalid assignment target.")
	}
	return expr
}

func (this *Parser) or() Expr {
	expr := this.and()
	for this.match(OR) {
		operator := this.previous()
		right := this.and()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (this *Parser) and() Expr {
	expr := this.equality()
	for this.match(AND) {
		operator := this.previous()
		right := this.equality()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (this *Parser) expression() Expr {
	return this.assignment()
}

func (this *Parser) equality() Expr {
	expr := this.comparison()
	for this.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := this.previous()
		right := this.comparison()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) match(types ...TokenType) bool {
	for _, ty := range types {
		if this.check(ty) {
			this.advance()
			return true
		}
	}
	return false
}

func (this *Parser) check(ty TokenType) bool {
	if this.isAtEnd() {
		return false
	}
	return this.peek().Type == ty
}

func (this *Parser) advance() *Token {
	if !this.isAtEnd() {
		this.current++
	}
	return this.previous()
}

func (this *Parser) isAtEnd() bool {
	return this.peek().Type == EOF
}

func (this *Parser) peek() *Token {
	return this.tokens[this.current]
}

func (this *Parser) previous() *Token {
	return this.tokens[this.current-1]
}

func (this *Parser) comparison() Expr {
	expr := this.term()
	for this.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := this.previous()
		right := this.term()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) term() Expr {
	expr := this.factor()
	for this.match(MINUS, PLUS) {
		operator := this.previous()
		right := this.factor()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) factor() Expr {
	expr := this.unary()
	for this.match(SLASH, STAR) {
		operator := this.previous()
		right := this.unary()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) unary() Expr {
	if this.match(BANG, MINUS) {
		operator := this.previous()
		right := this.unary()
		return NewUnary(operator, right)
	}
	return this.call()
}

func (this *Parser) call() Expr {
	expr := this.primary()
	for {
		if this.match(LEFT_PAREN) {
			expr = this.finishCall(expr)
		} else if this.match(DOT) {
			name := this.consume(IDENTIFIER, "expect property name after '.'.")
			expr = NewGet(expr, name)
		} else {
			break
		}
	}
	return expr
}

func (this *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !this.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				// Non-fatal: report and keep parsing the extra arguments
				// rather than aborting the whole call.
				this.diag.ErrorAtToken(this.peek(), "can't have more than 255 arguments.")
			}
			arguments = append(arguments, this.assignment())
			if !this.match(COMMA) {
				break
			}
		}
	}

	paren := this.consume(RIGHT_PAREN, "expect ')' after arguments.")
	return NewCall(callee, paren, arguments)
}

func (this *Parser) primary() Expr {
	if this.match(FALSE) {
		return NewLiteral(false)
	}
	if this.match(TRUE) {
		return NewLiteral(true)
	}
	if this.match(NIL) {
		return NewLiteral(nil)
	}
	if this.match(NUMBER, STRING) {
		return NewLiteral(this.previous().Literal)
	}
	if this.match(SUPER) {
		keyword := this.previous()
		this.consume(DOT, "expect '.' after 'super'.")
		method := this.consume(IDENTIFIER, "expect superclass method name.")
		return NewSuper(keyword, method)
	}
	if this.match(THIS) {
		return NewThis(this.previous())
	}
	if this.match(FUN) {
		return this.lambda("function")
	}
	if this.match(IDENTIFIER) {
		return NewVariable(this.previous())
	}
	if this.match(LEFT_PAREN) {
		expr := this.expression()
		this.consume(RIGHT_PAREN, "expect ')' after expression.")
		return NewGrouping(expr)
	}

	if this.match(BANG_EQUAL, EQUAL_EQUAL) {
		this.error(this.previous(), "missing left-hand operand.")
	}
	if this.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		this.error(this.previous(), "missing left-hand operand.")
	}
	if this.match(SLASH, STAR) {
		this.error(this.previous(), "missing left-hand operand.")
	}
	this.error(this.peek(), "expect expression.")
	panic(parseError{})
}

func (this *Parser) consume(ty TokenType, message string) *Token {
	if this.check(ty) {
		return this.advance()
	}
	this.error(this.peek(), message)
	panic(parseError{})
}

// error records a diagnostic on the token and unwinds the current
// declaration via the parseError panic-mode sentinel.
func (this *Parser) error(tok *Token, message string) {
	this.diag.ErrorAtToken(tok, message)
	panic(parseError{})
}

func (this *Parser) synchronize() {
	this.advance()

	for !this.isAtEnd() {
		if this.previous().Type == SEMICOLON {
			return
		}
		switch this.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		this.advance()
	}
}
