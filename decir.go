// Package decir implements the expression layer of a decompiler's
// intermediate representation: the expression tree model produced by a
// lifter and the algebraic simplifier that rewrites those trees into
// canonical form. The control-flow analyses live in the graph
// subpackage.
package decir

import "fmt"

// Standard operand widths.
const (
	WidthBool = 1
	Width8    = 8
	Width16   = 16
	Width32   = 32
	Width64   = 64

	// WidthPtr is the width of an address-of expression.
	WidthPtr = Width64
)

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
