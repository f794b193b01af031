package lox

import "fmt"

// FloatVal renders a Lox number the way the language expects: integral
// values print without a trailing ".0". Ported from
// linhyee-lox-lang/lox/utils.go (IfFloat dropped along with the
// increment/decrement operators it served).
func FloatVal(v float64) string {
	text := fmt.Sprintf("%v", v)
	pos := len(text) - 2

	if pos > 0 && text[pos:] == ".0" {
		text = text[0:pos]
	}

	return text
}
