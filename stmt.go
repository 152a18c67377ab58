package decir

import (
	"bytes"
	"fmt"
)

// Stmt represents a single IR statement produced by the lifter.
type Stmt interface {
	// Exprs returns the statement's top-level expressions in order.
	Exprs() []Expr

	// setExpr replaces the i-th top-level expression.
	setExpr(i int, e Expr)

	String() string
	stmt()
}

func (*AssignStmt) stmt() {}
func (*CallStmt) stmt()   {}
func (*GotoStmt) stmt()   {}
func (*IfStmt) stmt()     {}
func (*ReturnStmt) stmt() {}

// ReduceStmt reduces every expression held by stmt in place.
func ReduceStmt(stmt Stmt) {
	for i, e := range stmt.Exprs() {
		stmt.setExpr(i, ReduceExpr(e))
	}
}

// AssignStmt stores the value of RHS into the location named by LHS.
type AssignStmt struct {
	LHS Expr
	RHS Expr
}

// Exprs returns the destination and source expressions.
func (s *AssignStmt) Exprs() []Expr { return []Expr{s.LHS, s.RHS} }

func (s *AssignStmt) setExpr(i int, e Expr) {
	switch i {
	case 0:
		s.LHS = e
	case 1:
		s.RHS = e
	default:
		assert(false, "assign: expression index out of range: %d", i)
	}
}

// String returns the string representation of the statement.
func (s *AssignStmt) String() string {
	return fmt.Sprintf("(assign %s %s)", s.LHS, s.RHS)
}

// ReturnStmt leaves the function. Value may be nil for a void return.
type ReturnStmt struct {
	Value Expr
}

// Exprs returns the returned value, if any.
func (s *ReturnStmt) Exprs() []Expr {
	if s.Value == nil {
		return nil
	}
	return []Expr{s.Value}
}

func (s *ReturnStmt) setExpr(i int, e Expr) {
	assert(i == 0 && s.Value != nil, "return: expression index out of range: %d", i)
	s.Value = e
}

// String returns the string representation of the statement.
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", s.Value)
}

// GotoStmt transfers control to the block at Target.
type GotoStmt struct {
	Target uint64
}

// Exprs returns nil; a goto holds no expressions.
func (s *GotoStmt) Exprs() []Expr { return nil }

func (s *GotoStmt) setExpr(i int, e Expr) {
	assert(false, "goto: expression index out of range: %d", i)
}

// String returns the string representation of the statement.
func (s *GotoStmt) String() string {
	return fmt.Sprintf("(goto %#x)", s.Target)
}

// IfStmt transfers control to Then when Cond is nonzero, else to Else.
type IfStmt struct {
	Cond Expr
	Then uint64
	Else uint64
}

// Exprs returns the branch condition.
func (s *IfStmt) Exprs() []Expr { return []Expr{s.Cond} }

func (s *IfStmt) setExpr(i int, e Expr) {
	assert(i == 0, "if: expression index out of range: %d", i)
	s.Cond = e
}

// String returns the string representation of the statement.
func (s *IfStmt) String() string {
	return fmt.Sprintf("(if %s %#x %#x)", s.Cond, s.Then, s.Else)
}

// CallStmt invokes Target with Args, discarding any result.
type CallStmt struct {
	Target Expr
	Args   []Expr
}

// Exprs returns the call target followed by the arguments in order.
func (s *CallStmt) Exprs() []Expr {
	a := make([]Expr, 0, len(s.Args)+1)
	a = append(a, s.Target)
	return append(a, s.Args...)
}

func (s *CallStmt) setExpr(i int, e Expr) {
	if i == 0 {
		s.Target = e
		return
	}
	assert(i-1 < len(s.Args), "call: expression index out of range: %d", i)
	s.Args[i-1] = e
}

// String returns the string representation of the statement.
func (s *CallStmt) String() string {
	var buf bytes.Buffer
	buf.WriteString("(call ")
	buf.WriteString(s.Target.String())
	for _, arg := range s.Args {
		buf.WriteRune(' ')
		buf.WriteString(arg.String())
	}
	buf.WriteRune(')')
	return buf.String()
}
