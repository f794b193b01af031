package lox

import "time"

// NewClock is the sole native function spec §3 calls for. Len and String
// from linhyee-lox-lang/lox/native.go are gone along with the array
// builtins they served; see DESIGN.md.
func NewClock() LoxCallable {
	return &Clock{}
}

type Clock struct{}

func (this *Clock) Arity() int {
	return 0
}

func (this *Clock) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (this Clock) String() string {
	return "<native fn>"
}
