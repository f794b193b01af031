package lox

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD
)

const (
	CT_NONE ClassType = iota
	CT_SUBCLASS
	CT_CLASS
)

// Resolver walks the AST once between parsing and interpretation,
// assigning each Variable/Assignment/This/Super node the number of
// scopes between its use and the scope that declares it (interpreter.go's
// locals side table, keyed by the node's own pointer identity). Ported
// from linhyee-lox-lang/lox/resolver.go; scopes is now a generic
// Stack[map[string]bool] instead of a Stack of interface{}, so every
// scope lookup drops the type assertion the teacher needed at each call
// site, and diagnostics go through Diagnostics instead of the package
// errorToken function.
type Resolver struct {
	interpreter     *Interpreter
	diag            *Diagnostics
	scopes          *Stack[map[string]bool]
	currentFunction FunctionType
	currentClass    ClassType
}

func NewResolver(interpreter *Interpreter, diag *Diagnostics) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		diag:            diag,
		scopes:          NewStack[map[string]bool](),
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

func (this *Resolver) Resolve(statements []Stmt) {
	this.resolve(statements)
}

func (this *Resolver) visitBlockStmt(stmt *Block) interface{} {
	this.beginScope()
	this.resolve(stmt.statements)
	this.endScope()
	return nil
}

func (this *Resolver) resolve(statements []Stmt) {
	for _, statement := range statements {
		this.resolveStmt(statement)
	}
}

func (this *Resolver) resolveStmt(stmt Stmt) {
	stmt.accept(this)
}

func (this *Resolver) resolveExpr(expr Expr) {
	expr.accept(this)
}

func (this *Resolver) beginScope() {
	this.scopes.Push(map[string]bool{})
}

func (this *Resolver) endScope() {
	_, _ = this.scopes.Pop()
}

func (this *Resolver) visitVarStmt(stmt *Var) interface{} {
	this.declare(stmt.name)
	if stmt.initializer != nil {
		this.resolveExpr(stmt.initializer)
	}
	this.define(stmt.name)
	return nil
}

func (this *Resolver) declare(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	scope := this.scopes.Top()
	if _, ok := scope[name.Lexeme]; ok {
		this.diag.ErrorAtToken(name, "already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (this *Resolver) define(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	this.scopes.Top()[name.Lexeme] = true
}

func (this *Resolver) visitVariableExpr(expr *Variable) interface{} {
	if !this.scopes.IsEmpty() {
		if value, ok := this.scopes.Top()[expr.name.Lexeme]; ok && !value {
			this.diag.ErrorAtToken(expr.name, "can't read local variable in its own initializer.")
		}
	}
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) resolveLocal(expr Expr, name *Token) {
	for i := this.scopes.Size() - 1; i >= 0; i-- {
		scope, err := this.scopes.Get(i)
		if err != nil {
			continue
		}
		if _, ok := scope[name.Lexeme]; ok {
			this.interpreter.resolve(expr, this.scopes.Size()-1-i)
			return
		}
	}
}

func (this *Resolver) visitAssignmentExpr(expr *Assignment) interface{} {
	this.resolveExpr(expr.value)
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) visitClassStmt(stmt *Class) interface{} {
	enclosingClass := this.currentClass
	this.currentClass = CT_CLASS

	this.declare(stmt.name)
	this.define(stmt.name)

	if stmt.superclass != nil && stmt.name.Lexeme == stmt.superclass.name.Lexeme {
		this.diag.ErrorAtToken(stmt.superclass.name, "a class can't inherit from itself.")
	}

	if stmt.superclass != nil {
		this.currentClass = CT_SUBCLASS
		this.resolveExpr(stmt.superclass)
	}
	if stmt.superclass != nil {
		this.beginScope()
		this.scopes.Top()["super"] = true
	}

	this.beginScope()
	this.scopes.Top()["this"] = true
	for _, method := range stmt.methods {
		declaration := FT_METHOD
		if method.name.Lexeme == "init" {
			declaration = FT_INITIALIZER
		}
		this.resolveFunction(method.params, method.body, declaration)
	}
	this.endScope()
	if stmt.superclass != nil {
		this.endScope()
	}
	this.currentClass = enclosingClass
	return nil
}

func (this *Resolver) visitFunctionStmt(stmt *Function) interface{} {
	this.declare(stmt.name)
	this.define(stmt.name)
	this.resolveFunction(stmt.params, stmt.body, FT_FUNCTION)
	return nil
}

// resolveFunction resolves a function/method/lambda body in its own
// scope. Named declarations call declare+define before this so the
// function's own name is visible inside its body for recursive calls;
// anonymous Lambdas skip that since they have no name to bind.
func (this *Resolver) resolveFunction(params []*Token, body []Stmt, ft FunctionType) {
	enclosingFunction := this.currentFunction
	this.currentFunction = ft

	this.beginScope()
	for _, param := range params {
		this.declare(param)
		this.define(param)
	}
	this.resolve(body)
	this.endScope()

	this.currentFunction = enclosingFunction
}

func (this *Resolver) visitExpressionStmt(stmt *Expression) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitIfStmt(stmt *If) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		this.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (this *Resolver) visitPrintStmt(stmt *Print) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitReturnStmt(stmt *Return) interface{} {
	if this.currentFunction == FT_NONE {
		this.diag.ErrorAtToken(stmt.keyword, "can't return from top-level code.")
	}
	if stmt.value != nil {
		if this.currentFunction == FT_INITIALIZER {
			this.diag.ErrorAtToken(stmt.keyword, "can't return a value from an initializer.")
		}
		this.resolveExpr(stmt.value)
	}
	return nil
}

func (this *Resolver) visitLoopStmt(stmt *Loop) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.body)
	if stmt.increment != nil {
		this.resolveExpr(stmt.increment)
	}
	return nil
}

func (this *Resolver) visitBreakStmt(stmt *Break) interface{} {
	return nil
}

func (this *Resolver) visitContinueStmt(stmt *Continue) interface{} {
	return nil
}

func (this *Resolver) visitBinaryExpr(expr *Binary) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitCallExpr(expr *Call) interface{} {
	this.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		this.resolveExpr(argument)
	}
	return nil
}

func (this *Resolver) visitGroupingExpr(expr *Grouping) interface{} {
	this.resolveExpr(expr.expression)
	return nil
}

func (this *Resolver) visitLiteralExpr(expr *Literal) interface{} {
	return nil
}

func (this *Resolver) visitLogicalExpr(expr *Logical) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitSetExpr(expr *Set) interface{} {
	this.resolveExpr(expr.value)
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitSuperExpr(expr *Super) interface{} {
	if this.currentClass == CT_NONE {
		this.diag.ErrorAtToken(expr.keyword, "can't use 'super' outside of a class.")
	} else if this.currentClass != CT_SUBCLASS {
		this.diag.ErrorAtToken(expr.keyword, "can't use 'super' in a class with no superclass.")
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitThisExpr(expr *This) interface{} {
	if this.currentClass == CT_NONE {
		this.diag.ErrorAtToken(expr.keyword, "can't use 'this' outside of a class.")
		return nil
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitGetExpr(expr *Get) interface{} {
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitUnaryExpr(expr *Unary) interface{} {
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitLambdaExpr(expr *Lambda) interface{} {
	this.resolveFunction(expr.params, expr.body, FT_FUNCTION)
	return nil
}
