package lox

type Expr interface {
	accept(visitor VisitorExpr) interface{}
}

type VisitorExpr interface {
	visitAssignmentExpr(expr *Assignment) interface{}
	visitBinaryExpr(expr *Binary) interface{}
	visitLambdaExpr(expr *Lambda) interface{}
	visitCallExpr(expr *Call) interface{}
	visitGetExpr(expr *Get) interface{}
	visitGroupingExpr(expr *Grouping) interface{}
	visitLiteralExpr(expr *Literal) interface{}
	visitLogicalExpr(expr *Logical) interface{}
	visitSetExpr(expr *Set) interface{}
	visitSuperExpr(expr *Super) interface{}
	visitThisExpr(expr *This) interface{}
	visitUnaryExpr(expr *Unary) interface{}
	visitVariableExpr(expr *Variable) interface{}
}

func NewAssignment(name *Token, value Expr) *Assignment {
	return &Assignment{
		name:  name,
		value: value,
	}
}

type Assignment struct {
	name  *Token
	value Expr
}

func (this *Assignment) accept(visitor VisitorExpr) interface{} {
	return visitor.visitAssignmentExpr(this)
}

func NewBinary(left Expr, operator *Token, right Expr) *Binary {
	return &Binary{
		left:     left,
		operator: operator,
		right:    right,
	}
}

type Binary struct {
	left     Expr
	operator *Token
	right    Expr
}

func (this *Binary) accept(visitor VisitorExpr) interface{} {
	return visitor.visitBinaryExpr(this)
}

func NewLambda(params []*Token, body []Stmt) *Lambda {
	return &Lambda{
		params: params,
		body:   body,
	}
}

// Lambda is an anonymous function expression, reached only from primary()
// when `fun` is not immediately followed by a name; named declarations
// and methods use the Function statement instead, since the resolver
// needs a name bound before resolving the body for recursive calls to
// see it, which a var-style declare/resolve/define ordering would not
// give it.
type Lambda struct {
	params []*Token
	body   []Stmt
}

func (this *Lambda) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLambdaExpr(this)
}

func NewCall(callee Expr, paren *Token, arguments []Expr) *Call {
	return &Call{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

type Call struct {
	callee    Expr
	paren     *Token
	arguments []Expr
}

func (this *Call) accept(visitor VisitorExpr) interface{} {
	return visitor.visitCallExpr(this)
}

func NewGet(object Expr, name *Token) *Get {
	return &Get{
		object: object,
		name:   name,
	}
}

type Get struct {
	object Expr
	name   *Token
}

func (this *Get) accept(visitor VisitorExpr) interface{} {
	return visitor.visitGetExpr(this)
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{
		expression: expression,
	}
}

type Grouping struct {
	expression Expr
}

func (this *Grouping) accept(visitor VisitorExpr) interface{} {
	return visitor.visitGroupingExpr(this)
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{
		value: value,
	}
}

type Literal struct {
	value interface{}
}

func (this *Literal) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLiteralExpr(this)
}

func NewLogical(left Expr, operator *Token, right Expr) *Logical {
	return &Logical{
		left:     left,
		operator: operator,
		right:    right,
	}
}

type Logical struct {
	left     Expr
	operator *Token
	right    Expr
}

func (this *Logical) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLogicalExpr(this)
}

func NewSet(object Expr, name *Token, value Expr) *Set {
	return &Set{
		object: object,
		name:   name,
		value:  value,
	}
}

type Set struct {
	object Expr
	name   *Token
	value  Expr
}

func (this *Set) accept(visitor VisitorExpr) interface{} {
	return visitor.visitSetExpr(this)
}

func NewSuper(keyword *Token, method *Token) *Super {
	return &Super{
		keyword: keyword,
		method:  method,
	}
}

type Super struct {
	keyword *Token
	method  *Token
}

func (this *Super) accept(visitor VisitorExpr) interface{} {
	return visitor.visitSuperExpr(this)
}

func NewThis(keyword *Token) *This {
	return &This{
		keyword: keyword,
	}
}

type This struct {
	keyword *Token
}

func (this *This) accept(visitor VisitorExpr) interface{} {
	return visitor.visitThisExpr(this)
}

func NewUnary(operator *Token, right Expr) *Unary {
	return &Unary{
		operator: operator,
		right:    right,
	}
}

type Unary struct {
	operator *Token
	right    Expr
}

func (this *Unary) accept(visitor VisitorExpr) interface{} {
	return visitor.visitUnaryExpr(this)
}

func NewVariable(name *Token) *Variable {
	return &Variable{
		name: name,
	}
}

type Variable struct {
	name *Token
}

func (this *Variable) accept(visitor VisitorExpr) interface{} {
	return visitor.visitVariableExpr(this)
}
