package lox

// NewLoxFunction wraps a Function declaration node as a callable closed
// over the environment active where it was defined. Ported from
// linhyee-lox-lang/lox/function.go.
func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) LoxCallable {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// NewLoxLambda adapts an anonymous Lambda expression into the same
// LoxFunction representation a named declaration gets, synthesizing a
// nameless Function node for it.
func NewLoxLambda(lambda *Lambda, closure *Environment) LoxCallable {
	return &LoxFunction{
		declaration: NewFunction(nil, lambda.params, lambda.body),
		closure:     closure,
	}
}

type LoxFunction struct {
	declaration   *Function
	closure       *Environment
	isInitializer bool
}

// Bind returns a copy of the function closed over a fresh environment
// with `this` pointing at instance, used both for ordinary method lookup
// and for invoking `init` during construction.
func (this *LoxFunction) Bind(instance *LoxInstance) LoxCallable {
	environment := NewEnvironment(this.closure)
	environment.Define("this", instance)
	return NewLoxFunction(this.declaration, environment, this.isInitializer)
}

func (this *LoxFunction) Arity() int {
	return len(this.declaration.params)
}

func (this *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	env := NewEnvironment(this.closure)
	for i := 0; i < len(this.declaration.params); i++ {
		env.Define(this.declaration.params[i].Lexeme, arguments[i])
	}
	sig, err := interpreter.executeBlock(this.declaration.body, env)
	if err != nil {
		return nil, err
	}
	if this.isInitializer {
		return this.closure.GetAt(0, "this"), nil
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return nil, nil
}

func (this LoxFunction) String() string {
	if this.declaration.name != nil {
		return "<fn " + this.declaration.name.Lexeme + ">"
	}
	return "<fn closure>"
}
