package lox

// signalKind tags the non-local control transfers a statement can produce.
// Spec §5 is explicit that return/break/continue must not be implemented by
// propagating host-language panics for performance reasons; a signal is
// returned up the statement-execution call stack instead, and block/loop
// executors consume it directly.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// signal is the {Normal, Break, Continue, Return(Value)} result variant
// from spec §5. value is only meaningful when kind is sigReturn.
type signal struct {
	kind  signalKind
	value interface{}
}

var normalSignal = signal{kind: sigNone}
