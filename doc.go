// Package evmdd implements Edge-Valued Multi-valued Decision Diagrams
// (EVMDDs): a canonical, compact representation of integer-valued
// pseudo-Boolean functions f(x1, ..., xn) over finite-domain integer
// variables.
//
// A Manager owns an ordered list of variables together with their domain
// sizes and a single reduction mode (fully reduced or quasi-reduced). It
// hash-conses every node and edge it constructs, so that structurally equal
// diagrams are represented by the identical handle: two EVMDDs denoting the
// same function compare equal with ==, not just deep-equal.
//
// Diagrams are built either directly through the Manager's Const/Var
// constructors and the arithmetic operations (Add, Sub, Mul, Neg, Pow), or
// by compiling an Expr tree with Compile. Evaluate walks a diagram
// top-down against a variable assignment and returns the integer it
// denotes.
//
// The package does not parse surface syntax (that lives in the termsyntax
// subpackage) and does not render diagrams (that lives in the graphviz
// subpackage); evmdd itself is the engine the two build on.
package evmdd
