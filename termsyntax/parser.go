package termsyntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/robertmattmueller/go-evmdd"
)

var termParser = participle.MustBuild[Expr](
	participle.Lexer(termLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a surface term such as "A*B*B + C + 2" and returns the
// corresponding evmdd.Expr tree. It rejects anything outside the
// restricted grammar (integers, identifiers, +, -, *, unary -,
// parentheses) with ErrIllegalExpression-wrapping error via the core
// package's sentinel, satisfying the term compiler's step 1 contract.
func Parse(term string) (evmdd.Expr, error) {
	ast, err := termParser.ParseString("", term)
	if err != nil {
		reportParseError(term, err)
		return nil, fmt.Errorf("%w: %s", evmdd.ErrIllegalExpression, err)
	}
	return toEvmddExpr(ast), nil
}

func toEvmddExpr(e *Expr) evmdd.Expr {
	result := toTermExpr(e.Left)
	for _, op := range e.Ops {
		rhs := toTermExpr(op.Term)
		var binOp evmdd.BinOp
		if op.Op == "+" {
			binOp = evmdd.OpAdd
		} else {
			binOp = evmdd.OpSub
		}
		result = evmdd.BinExpr{Op: binOp, Left: result, Right: rhs}
	}
	return result
}

func toTermExpr(t *Term) evmdd.Expr {
	result := toUnaryExpr(t.Left)
	for _, op := range t.Ops {
		rhs := toUnaryExpr(op.Right)
		result = evmdd.BinExpr{Op: evmdd.OpMul, Left: result, Right: rhs}
	}
	return result
}

func toUnaryExpr(u *Unary) evmdd.Expr {
	primary := toPrimaryExpr(u.Primary)
	if u.Neg {
		return evmdd.NegExpr{Operand: primary}
	}
	return primary
}

func toPrimaryExpr(p *Primary) evmdd.Expr {
	switch {
	case p.Number != nil:
		n, err := strconv.Atoi(*p.Number)
		if err != nil {
			// The lexer only ever hands the Int token a run of digits,
			// so a conversion failure here would mean the grammar and
			// the lexer have drifted apart.
			panic(fmt.Sprintf("termsyntax: malformed integer literal %q", *p.Number))
		}
		return evmdd.ConstExpr{Value: n}
	case p.Ident != nil:
		return evmdd.VarExpr{Name: *p.Ident}
	default:
		return toEvmddExpr(p.Paren)
	}
}

// reportParseError prints a friendly caret-style parse error message to
// standard output via colorized output, the way a surface-syntax front end
// typically surfaces a bad term to an interactive user.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("syntax error in term at column %d:", pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
