package evmdd

import "fmt"

// CompileTerm performs steps 2-5 of the term compiler: given an already
// parsed expression tree (step 1, turning surface syntax into an Expr, is
// the surface parser's job, not this package's), it collects the term's
// free variables, determines the final variable ordering and domain
// sizes, constructs a Manager, and compiles the expression.
//
// varNames, if non-nil, is the desired variable ordering; CompileTerm
// returns ErrUnknownVariable if e references a variable not present in
// it. If varNames is nil, the term's free variables are used in
// lexicographic order.
//
// varDomains, if non-nil, maps variable name to domain size; every
// variable in the final ordering must have an entry, or CompileTerm
// returns ErrDomainMismatch. If varDomains is nil, every variable
// defaults to domain size 2.
func CompileTerm(e Expr, varNames []string, varDomains map[string]int, opts ...Option) (Edge, *Manager, error) {
	free := CollectVariables(e)

	names := varNames
	if names == nil {
		names = free
	} else {
		present := make(map[string]struct{}, len(names))
		for _, n := range names {
			present[n] = struct{}{}
		}
		for _, v := range free {
			if _, ok := present[v]; !ok {
				return Edge{}, nil, fmt.Errorf("%w: %q occurs in term but not in the supplied ordering", ErrUnknownVariable, v)
			}
		}
	}

	domains := make([]int, len(names))
	for i, n := range names {
		if varDomains == nil {
			domains[i] = 2
			continue
		}
		d, ok := varDomains[n]
		if !ok {
			return Edge{}, nil, fmt.Errorf("%w: variable %q has no declared domain size", ErrDomainMismatch, n)
		}
		domains[i] = d
	}

	manager, err := NewManager(names, domains, opts...)
	if err != nil {
		return Edge{}, nil, err
	}

	result, err := Compile(manager, e)
	if err != nil {
		return Edge{}, nil, err
	}
	return result, manager, nil
}
