package evmdd

import (
	"fmt"
	"sort"
)

// Expr is an arithmetic term restricted to integer constants, variable
// references, binary +, -, *, and unary -. It is the tree the term
// compiler walks; surface syntax (parsing a string into an Expr) is the
// concern of the termsyntax package, not this one.
type Expr interface {
	isExpr()
}

// ConstExpr is an integer literal.
type ConstExpr struct {
	Value int
}

// VarExpr is a reference to a variable by name.
type VarExpr struct {
	Name string
}

// BinOp is one of the three supported binary operators.
type BinOp byte

const (
	OpAdd BinOp = '+'
	OpSub BinOp = '-'
	OpMul BinOp = '*'
)

// BinExpr applies a binary operator to two subexpressions.
type BinExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// NegExpr negates a subexpression.
type NegExpr struct {
	Operand Expr
}

func (ConstExpr) isExpr() {}
func (VarExpr) isExpr()   {}
func (BinExpr) isExpr()   {}
func (NegExpr) isExpr()   {}

// CollectVariables returns the set of variable names occurring anywhere in
// e, as a sorted slice.
func CollectVariables(e Expr) []string {
	seen := make(map[string]struct{})
	collectVariables(e, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(e Expr, seen map[string]struct{}) {
	switch n := e.(type) {
	case ConstExpr:
	case VarExpr:
		seen[n.Name] = struct{}{}
	case NegExpr:
		collectVariables(n.Operand, seen)
	case BinExpr:
		collectVariables(n.Left, seen)
		collectVariables(n.Right, seen)
	}
}

// Compile walks e and builds the corresponding EVMDD under manager m,
// using m's Const/Var constructors for the leaves and Add/Sub/Mul/Neg for
// the interior nodes. Returns ErrUnknownVariable if e references a
// variable not registered with m, and ErrIllegalExpression for any Expr
// implementation this package does not recognize.
func Compile(m *Manager, e Expr) (Edge, error) {
	switch n := e.(type) {
	case ConstExpr:
		return m.Const(n.Value), nil
	case VarExpr:
		return m.Var(n.Name)
	case NegExpr:
		operand, err := Compile(m, n.Operand)
		if err != nil {
			return Edge{}, err
		}
		return m.Neg(operand)
	case BinExpr:
		left, err := Compile(m, n.Left)
		if err != nil {
			return Edge{}, err
		}
		right, err := Compile(m, n.Right)
		if err != nil {
			return Edge{}, err
		}
		switch n.Op {
		case OpAdd:
			return m.Add(left, right)
		case OpSub:
			return m.Sub(left, right)
		case OpMul:
			return m.Mul(left, right)
		default:
			return Edge{}, fmt.Errorf("%w: unsupported binary operator %q", ErrIllegalExpression, n.Op)
		}
	default:
		return Edge{}, fmt.Errorf("%w: unsupported expression node %T", ErrIllegalExpression, e)
	}
}
