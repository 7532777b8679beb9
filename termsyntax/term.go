package termsyntax

import "github.com/robertmattmueller/go-evmdd"

// TermToEVMDD parses a function term and compiles it to an EVMDD in one
// step: Parse handles the surface syntax, evmdd.CompileTerm handles
// variable-ordering and domain-size resolution and the actual
// compilation. varNames and varDomains are optional (nil means
// lexicographic ordering / domain size 2, respectively), matching the
// command-line front end's contract.
func TermToEVMDD(term string, varNames []string, varDomains map[string]int, opts ...evmdd.Option) (evmdd.Edge, *evmdd.Manager, error) {
	expr, err := Parse(term)
	if err != nil {
		return evmdd.Edge{}, nil, err
	}
	return evmdd.CompileTerm(expr, varNames, varDomains, opts...)
}
