package lox

// LoxCallable is implemented by user functions, methods, classes and
// natives. Call returns an error instead of the teacher's bare value so a
// RuntimeError raised mid-call (wrong arity downstream, an undefined
// property access inside a method body, ...) propagates as a normal Go
// error return rather than a panic.
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error)
}
