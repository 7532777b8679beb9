package evmdd

import "fmt"

// operator tags the three binary arithmetic operators Apply supports
// internally. The public entry points (Add, Sub, Mul) are separate so
// that Manager mismatches and mode checks happen once at the API
// boundary, while the recursive engine below threads a single tagged
// operator through terminal-case handling and level synchronization.
type operator int

const (
	opAdd operator = iota
	opSub
	opMul
)

// applyKey memoizes (operator, left operand, right operand) -> result.
// Operand order is preserved verbatim for Sub, since subtraction is not
// commutative; Add and Mul canonicalize operand order before the lookup
// so that e.g. a+b and b+a share one cache entry.
type applyKey struct {
	op operator
	a  tableEdge
	b  tableEdge
}

func lessTableEdge(x, y tableEdge) bool {
	if x.Succ != y.Succ {
		return x.Succ < y.Succ
	}
	return x.Weight < y.Weight
}

func canonKey(op operator, a, b tableEdge) applyKey {
	if op != opSub && lessTableEdge(b, a) {
		a, b = b, a
	}
	return applyKey{op: op, a: a, b: b}
}

func (m *Manager) memoGet(k applyKey) (tableEdge, bool) {
	v, ok := m.memo[k]
	return v, ok
}

func (m *Manager) memoPut(k applyKey, v tableEdge) {
	if m.memoLimit > 0 && len(m.memo) >= m.memoLimit {
		m.memo = make(map[applyKey]tableEdge)
	}
	m.memo[k] = v
}

// Add returns the EVMDD for a + b.
func (m *Manager) Add(a, b Edge) (Edge, error) {
	return m.binOp(opAdd, a, b)
}

// Sub returns the EVMDD for a - b.
func (m *Manager) Sub(a, b Edge) (Edge, error) {
	return m.binOp(opSub, a, b)
}

// Mul returns the EVMDD for a * b.
func (m *Manager) Mul(a, b Edge) (Edge, error) {
	return m.binOp(opMul, a, b)
}

// Neg returns the EVMDD for -a, defined as const(0) - a.
func (m *Manager) Neg(a Edge) (Edge, error) {
	return m.Sub(m.Const(0), a)
}

// Pow returns the EVMDD for a raised to the non-negative integer power k.
// Pow(a, 0) is const(1). Returns ErrNegativeExponent if k < 0.
func (m *Manager) Pow(a Edge, k int) (Edge, error) {
	if a.mgr != m {
		return Edge{}, fmt.Errorf("%w: operand not owned by this manager", ErrModeMismatch)
	}
	if k < 0 {
		return Edge{}, fmt.Errorf("%w: %d", ErrNegativeExponent, k)
	}
	if k == 0 {
		return m.Const(1), nil
	}
	rest, err := m.Pow(a, k-1)
	if err != nil {
		return Edge{}, err
	}
	return m.Mul(a, rest)
}

func (m *Manager) binOp(op operator, a, b Edge) (Edge, error) {
	if a.mgr != m || b.mgr != m {
		return Edge{}, fmt.Errorf("%w: operands must both belong to the same manager", ErrModeMismatch)
	}
	result := m.applyEdge(op, a.raw(), b.raw())
	return Edge{mgr: m, weight: result.Weight, succ: result.Succ}, nil
}

// applyEdge is the recursive Apply engine operating on table-level edges.
// It implements terminal-case shortcuts, level synchronization, per-child
// recursion, weight normalization and (in fully-reduced mode) Shannon
// reduction, memoizing every sub-result it computes.
func (m *Manager) applyEdge(op operator, a, b tableEdge) tableEdge {
	key := canonKey(op, a, b)
	if result, ok := m.memoGet(key); ok {
		return result
	}

	var result tableEdge
	if m.isTerminalCase(op, a, b) {
		result = m.terminalValue(op, a, b)
	} else {
		result = m.recursiveApply(op, a, b)
	}

	m.memoPut(key, result)
	return result
}

func (m *Manager) isTerminalCase(op operator, a, b tableEdge) bool {
	if op == opSub {
		return m.table.isSink(b.Succ)
	}
	return m.table.isSink(a.Succ) || m.table.isSink(b.Succ)
}

// terminalValue computes a oper b without recursing into either operand's
// subgraph, per the terminal-case rules: for + and -, the constant side's
// weight is folded into the other operand's weight and its successor is
// preserved; for *, either both sides are sinks (plain product) or the
// non-sink side's outgoing edges are each scaled by the constant side and
// the resulting branch is renormalized and Shannon-checked.
func (m *Manager) terminalValue(op operator, a, b tableEdge) tableEdge {
	var constEdge, otherEdge tableEdge
	if m.table.isSink(a.Succ) {
		constEdge, otherEdge = a, b
	} else {
		constEdge, otherEdge = b, a
	}

	switch op {
	case opAdd:
		return tableEdge{Weight: a.Weight + b.Weight, Succ: otherEdge.Succ}
	case opSub:
		return tableEdge{Weight: a.Weight - b.Weight, Succ: otherEdge.Succ}
	default: // opMul
		product := a.Weight * b.Weight
		if m.table.isSink(otherEdge.Succ) {
			return tableEdge{Weight: product, Succ: otherEdge.Succ}
		}
		node := m.table.node(otherEdge.Succ)
		scaled := make([]tableEdge, len(node.Children))
		for i, child := range node.Children {
			scaled[i] = m.applyEdge(opMul, constEdge, child)
		}
		succ, extra := m.makeBranchRaw(node.Level, scaled)
		return tableEdge{Weight: product + extra, Succ: succ}
	}
}

// recursiveApply handles the case where neither operand is a terminal
// shortcut for op: both sides are synchronized onto the higher of their
// two levels, combined child by child, and the combined children are
// renormalized (and Shannon-checked in fully-reduced mode) into the
// result.
func (m *Manager) recursiveApply(op operator, a, b tableEdge) tableEdge {
	aNode := m.table.node(a.Succ)
	bNode := m.table.node(b.Succ)
	level := aNode.Level
	if bNode.Level > level {
		level = bNode.Level
	}

	aChildren := m.childrenAtLevel(a, aNode, level)
	bChildren := m.childrenAtLevel(b, bNode, level)

	d := len(aChildren)
	combined := make([]tableEdge, d)
	for i := 0; i < d; i++ {
		combined[i] = m.applyEdge(op, aChildren[i], bChildren[i])
	}

	succ, min := m.makeBranchRaw(level, combined)
	return tableEdge{Weight: min, Succ: succ}
}

// childrenAtLevel returns e's children as seen from the given target
// level: if e's successor is already at that level, its children's
// weights are offset by e's own accumulated weight; otherwise (e is a
// constant, depends only on variables below that level, or skips the
// level in fully-reduced mode) the result synthesizes domain-size copies
// of e itself, implicitly quasi-reducing at this level for the purpose
// of the recursion.
func (m *Manager) childrenAtLevel(e tableEdge, node branchNode, level int) []tableEdge {
	if node.Level == level {
		out := make([]tableEdge, len(node.Children))
		for i, c := range node.Children {
			out[i] = tableEdge{Weight: c.Weight + e.Weight, Succ: c.Succ}
		}
		return out
	}
	d, err := m.DomainSize(level)
	if err != nil {
		panic(err)
	}
	out := make([]tableEdge, d)
	for i := range out {
		out[i] = e
	}
	return out
}
