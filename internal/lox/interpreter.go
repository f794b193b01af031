package lox

import (
	"fmt"
	"io"
	"strconv"
)

// exprResult and stmtResult box an evaluator's (value, error) or
// (signal, error) pair behind the single interface{} the generated
// accept() methods return, so VisitorExpr/VisitorStmt keep the
// teacher's generated shape while evaluate/execute expose normal Go
// multi-value returns to every caller. Ported in spirit from
// linhyee-lox-lang/lox/interpreter.go, whose visitor methods panicked
// *RuntimeError/returnExp/BreakJump/ContinueJump instead; spec §5 rules
// that out for return/break/continue, and this repo extends the same
// discipline to RuntimeError so neither evaluate nor execute ever relies
// on recover() for ordinary failure.
type exprResult struct {
	value interface{}
	err   error
}

type stmtResult struct {
	sig signal
	err error
}

type Interpreter struct {
	environment *Environment
	globals     *Environment
	locals      map[Expr]int
	stdout      io.Writer
}

// NewInterpreter builds an interpreter writing print output to stdout.
// Runtime errors are returned to the caller (see Interpret) rather than
// reported directly, so no *Diagnostics is needed here: run.go's Run is
// the one place that turns a returned *RuntimeError into a diagnostic.
func NewInterpreter(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", NewClock())

	return &Interpreter{
		environment: globals,
		globals:     globals,
		locals:      map[Expr]int{},
		stdout:      stdout,
	}
}

// Interpret runs statements in order, stopping at the first RuntimeError.
func (this *Interpreter) Interpret(statements []Stmt) error {
	for _, statement := range statements {
		if _, err := this.execute(statement); err != nil {
			return err
		}
	}
	return nil
}

func (this *Interpreter) execute(stmt Stmt) (signal, error) {
	r := stmt.accept(this).(stmtResult)
	return r.sig, r.err
}

func (this *Interpreter) resolve(expr Expr, depth int) {
	this.locals[expr] = depth
}

func (this *Interpreter) executeBlock(statements []Stmt, env *Environment) (signal, error) {
	previous := this.environment
	defer func() { this.environment = previous }()
	this.environment = env

	for _, statement := range statements {
		sig, err := this.execute(statement)
		if err != nil {
			return normalSignal, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func (this *Interpreter) visitBlockStmt(stmt *Block) interface{} {
	sig, err := this.executeBlock(stmt.statements, NewEnvironment(this.environment))
	return stmtResult{sig, err}
}

func (this *Interpreter) visitClassStmt(stmt *Class) interface{} {
	var superclass interface{}
	if stmt.superclass != nil {
		value, err := this.evaluate(stmt.superclass)
		if err != nil {
			return stmtResult{normalSignal, err}
		}
		if _, ok := value.(*LoxClass); !ok {
			return stmtResult{normalSignal, NewRuntimeError(stmt.superclass.name, "superclass must be a class.")}
		}
		superclass = value
	}

	this.environment.Define(stmt.name.Lexeme, nil)
	if stmt.superclass != nil {
		this.environment = NewEnvironment(this.environment)
		this.environment.Define("super", superclass)
	}

	methods := map[string]LoxCallable{}
	for _, method := range stmt.methods {
		function := NewLoxFunction(method, this.environment, method.name.Lexeme == "init")
		methods[method.name.Lexeme] = function
	}

	superklass, _ := superclass.(*LoxClass)
	class := NewLoxClass(stmt.name.Lexeme, superklass, methods)
	if superklass != nil {
		this.environment = this.environment.enclosing
	}

	_ = this.environment.Assign(stmt.name, class)
	return stmtResult{normalSignal, nil}
}

func (this *Interpreter) visitLiteralExpr(expr *Literal) interface{} {
	return exprResult{expr.value, nil}
}

func (this *Interpreter) visitLogicalExpr(expr *Logical) interface{} {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return exprResult{nil, err}
	}
	if expr.operator.Type == OR {
		if this.isTruthy(left) {
			return exprResult{left, nil}
		}
	} else if !this.isTruthy(left) {
		return exprResult{left, nil}
	}
	value, err := this.evaluate(expr.right)
	return exprResult{value, err}
}

func (this *Interpreter) visitSetExpr(expr *Set) interface{} {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return exprResult{nil, err}
	}
	instance, ok := object.(*LoxInstance)
	if !ok {
		return exprResult{nil, NewRuntimeError(expr.name, "only instances have fields.")}
	}
	value, err := this.evaluate(expr.value)
	if err != nil {
		return exprResult{nil, err}
	}
	instance.Set(expr.name, value)
	return exprResult{value, nil}
}

func (this *Interpreter) visitSuperExpr(expr *Super) interface{} {
	distance := this.locals[expr]
	superclass, _ := this.environment.GetAt(distance, "super").(*LoxClass)
	object, _ := this.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		return exprResult{nil, NewRuntimeError(expr.method, "undefined property '"+expr.method.Lexeme+"'.")}
	}
	return exprResult{method.(*LoxFunction).Bind(object), nil}
}

func (this *Interpreter) visitThisExpr(expr *This) interface{} {
	value, err := this.lookUpVariable(expr.keyword, expr)
	return exprResult{value, err}
}

func (this *Interpreter) visitGroupingExpr(expr *Grouping) interface{} {
	value, err := this.evaluate(expr.expression)
	return exprResult{value, err}
}

func (this *Interpreter) visitUnaryExpr(expr *Unary) interface{} {
	right, err := this.evaluate(expr.right)
	if err != nil {
		return exprResult{nil, err}
	}
	switch expr.operator.Type {
	case MINUS:
		if err := this.checkNumberOperand(expr.operator, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{-right.(float64), nil}
	case BANG:
		return exprResult{!this.isTruthy(right), nil}
	}
	return exprResult{nil, nil}
}

func (this *Interpreter) visitVariableExpr(expr *Variable) interface{} {
	value, err := this.lookUpVariable(expr.name, expr)
	return exprResult{value, err}
}

func (this *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := this.locals[expr]; ok {
		return this.environment.GetAt(distance, name.Lexeme), nil
	}
	return this.globals.Get(name)
}

func (this *Interpreter) visitBinaryExpr(expr *Binary) interface{} {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return exprResult{nil, err}
	}
	right, err := this.evaluate(expr.right)
	if err != nil {
		return exprResult{nil, err}
	}

	switch expr.operator.Type {
	case GREATER:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) > right.(float64), nil}
	case GREATER_EQUAL:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) >= right.(float64), nil}
	case LESS:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) < right.(float64), nil}
	case LESS_EQUAL:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) <= right.(float64), nil}
	case MINUS:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) - right.(float64), nil}
	case BANG_EQUAL:
		return exprResult{!this.isEqual(left, right), nil}
	case EQUAL_EQUAL:
		return exprResult{this.isEqual(left, right), nil}
	case PLUS:
		if v1, ok1 := left.(float64); ok1 {
			if v2, ok2 := right.(float64); ok2 {
				return exprResult{v1 + v2, nil}
			}
		}
		// A string on either side concatenates, stringifying the other
		// operand the same way print would (so a number renders without
		// a trailing ".0").
		if _, ok := left.(string); ok {
			return exprResult{this.stringify(left) + this.stringify(right), nil}
		}
		if _, ok := right.(string); ok {
			return exprResult{this.stringify(left) + this.stringify(right), nil}
		}
		return exprResult{nil, NewRuntimeError(expr.operator, "operands must be two numbers or two strings.")}
	case SLASH:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) / right.(float64), nil}
	case STAR:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return exprResult{nil, err}
		}
		return exprResult{left.(float64) * right.(float64), nil}
	}
	return exprResult{nil, nil}
}

func (this *Interpreter) visitCallExpr(expr *Call) interface{} {
	callee, err := this.evaluate(expr.callee)
	if err != nil {
		return exprResult{nil, err}
	}

	var arguments []interface{}
	for _, argument := range expr.arguments {
		value, err := this.evaluate(argument)
		if err != nil {
			return exprResult{nil, err}
		}
		arguments = append(arguments, value)
	}

	function, ok := callee.(LoxCallable)
	if !ok {
		return exprResult{nil, NewRuntimeError(expr.paren, "can only call functions and classes.")}
	}

	if len(arguments) != function.Arity() {
		return exprResult{nil, NewRuntimeError(expr.paren, "expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+".")}
	}

	value, err := function.Call(this, arguments)
	return exprResult{value, err}
}

func (this *Interpreter) visitGetExpr(expr *Get) interface{} {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return exprResult{nil, err}
	}
	instance, ok := object.(*LoxInstance)
	if !ok {
		return exprResult{nil, NewRuntimeError(expr.name, "only instances have properties.")}
	}
	value, err := instance.Get(expr.name)
	return exprResult{value, err}
}

func (this *Interpreter) visitExpressionStmt(stmt *Expression) interface{} {
	_, err := this.evaluate(stmt.expression)
	return stmtResult{normalSignal, err}
}

func (this *Interpreter) visitFunctionStmt(stmt *Function) interface{} {
	function := NewLoxFunction(stmt, this.environment, false)
	this.environment.Define(stmt.name.Lexeme, function)
	return stmtResult{normalSignal, nil}
}

func (this *Interpreter) visitLambdaExpr(expr *Lambda) interface{} {
	return exprResult{NewLoxLambda(expr, this.environment), nil}
}

func (this *Interpreter) visitIfStmt(stmt *If) interface{} {
	cond, err := this.evaluate(stmt.condition)
	if err != nil {
		return stmtResult{normalSignal, err}
	}
	if this.isTruthy(cond) {
		sig, err := this.execute(stmt.thenBranch)
		return stmtResult{sig, err}
	} else if stmt.elseBranch != nil {
		sig, err := this.execute(stmt.elseBranch)
		return stmtResult{sig, err}
	}
	return stmtResult{normalSignal, nil}
}

func (this *Interpreter) visitReturnStmt(stmt *Return) interface{} {
	var value interface{}
	if stmt.value != nil {
		v, err := this.evaluate(stmt.value)
		if err != nil {
			return stmtResult{normalSignal, err}
		}
		value = v
	}
	return stmtResult{signal{kind: sigReturn, value: value}, nil}
}

func (this *Interpreter) visitPrintStmt(stmt *Print) interface{} {
	value, err := this.evaluate(stmt.expression)
	if err != nil {
		return stmtResult{normalSignal, err}
	}
	fmt.Fprintln(this.stdout, this.stringify(value))
	return stmtResult{normalSignal, nil}
}

func (this *Interpreter) visitVarStmt(stmt *Var) interface{} {
	var value interface{}
	if stmt.initializer != nil {
		v, err := this.evaluate(stmt.initializer)
		if err != nil {
			return stmtResult{normalSignal, err}
		}
		value = v
	}
	this.environment.Define(stmt.name.Lexeme, value)
	return stmtResult{normalSignal, nil}
}

// visitLoopStmt drives both `while` and `for`. The increment (nil for a
// plain while, or a for with no increment clause) runs after every
// iteration of the body, Continue included, since it is a field on the
// node rather than spliced into the body.
func (this *Interpreter) visitLoopStmt(stmt *Loop) interface{} {
	for {
		cond, err := this.evaluate(stmt.condition)
		if err != nil {
			return stmtResult{normalSignal, err}
		}
		if !this.isTruthy(cond) {
			break
		}

		sig, err := this.execute(stmt.body)
		if err != nil {
			return stmtResult{normalSignal, err}
		}
		if sig.kind == sigBreak {
			break
		}
		if sig.kind == sigReturn {
			return stmtResult{sig, nil}
		}

		if stmt.increment != nil {
			if _, err := this.evaluate(stmt.increment); err != nil {
				return stmtResult{normalSignal, err}
			}
		}
	}
	return stmtResult{normalSignal, nil}
}

func (this *Interpreter) visitBreakStmt(stmt *Break) interface{} {
	return stmtResult{signal{kind: sigBreak}, nil}
}

func (this *Interpreter) visitContinueStmt(stmt *Continue) interface{} {
	return stmtResult{signal{kind: sigContinue}, nil}
}

func (this *Interpreter) visitAssignmentExpr(expr *Assignment) interface{} {
	value, err := this.evaluate(expr.value)
	if err != nil {
		return exprResult{nil, err}
	}

	if distance, ok := this.locals[expr]; ok {
		this.environment.AssignAt(distance, expr.name, value)
		return exprResult{value, nil}
	}
	if err := this.globals.Assign(expr.name, value); err != nil {
		return exprResult{nil, err}
	}
	return exprResult{value, nil}
}

func (this *Interpreter) evaluate(expr Expr) (interface{}, error) {
	r := expr.accept(this).(exprResult)
	return r.value, r.err
}

func (this *Interpreter) isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

func (this *Interpreter) isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

func (this *Interpreter) checkNumberOperand(operator *Token, operand interface{}) error {
	if _, ok := operand.(float64); ok {
		return nil
	}
	return NewRuntimeError(operator, "operand must be a number.")
}

func (this *Interpreter) checkNumberOperands(operator *Token, left, right interface{}) error {
	_, ok1 := left.(float64)
	_, ok2 := right.(float64)
	if ok1 && ok2 {
		return nil
	}
	return NewRuntimeError(operator, "operands must be numbers.")
}

func (this *Interpreter) stringify(obj interface{}) string {
	if obj == nil {
		return "nil"
	}
	if v, ok := obj.(float64); ok {
		return FloatVal(v)
	}
	return fmt.Sprintf("%v", obj)
}
