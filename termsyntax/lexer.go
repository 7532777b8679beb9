// Package termsyntax is the arithmetic-term surface parser: it turns a
// string such as "A*B*B + C + 2" into an evmdd.Expr tree that the core
// package's term compiler (evmdd.Compile, evmdd.CompileTerm) already
// knows how to walk. Tokenizing and grammar live here so the core engine
// stays free of any parsing concern.
package termsyntax

import "github.com/alecthomas/participle/v2/lexer"

// termLexer tokenizes the restricted surface grammar: integers,
// identifiers, the three binary operators, unary minus, and
// parenthesization. Order matters: Ident must not swallow digits, and
// Int must come before Ident has a chance to misfire on numeric prefixes.
var termLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Int", `[0-9]+`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Operator", `[-+*()]`, nil},
	},
})
