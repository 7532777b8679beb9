package evmdd

import "fmt"

// Edge is an EVMDD handle: an integer weight paired with a successor node,
// both owned by a single Manager. Since the manager hash-conses every node
// and edge it builds, two Edges denote the same function exactly when they
// compare equal with ==; no deep comparison is ever required.
//
// The zero Edge is not a valid handle; always obtain edges from a Manager.
type Edge struct {
	mgr    *Manager
	weight int
	succ   NodeID
}

// Weight returns the edge's own integer weight, i.e. the partial function
// value contributed by this edge before any child weight is added.
func (e Edge) Weight() int {
	return e.weight
}

// IsSink reports whether this edge leads directly to the sink, i.e.
// whether the EVMDD rooted here is a constant.
func (e Edge) IsSink() bool {
	return e.mgr.table.isSink(e.succ)
}

// Level returns the level of the edge's successor node (0 for the sink).
func (e Edge) Level() int {
	return e.mgr.table.node(e.succ).Level
}

// NumChildren returns the number of outgoing edges of the successor node,
// which equals the domain size of the variable tested there (0 for the
// sink).
func (e Edge) NumChildren() int {
	return len(e.mgr.table.node(e.succ).Children)
}

// Child returns the i-th outgoing edge of the successor node, i.e. the
// sub-EVMDD reached when the tested variable takes value i.
func (e Edge) Child(i int) Edge {
	c := e.mgr.table.node(e.succ).Children[i]
	return Edge{mgr: e.mgr, weight: c.Weight, succ: c.Succ}
}

// VarName returns the name of the variable tested at this edge's successor
// node. It fails if the edge leads to the sink.
func (e Edge) VarName() (string, error) {
	return e.mgr.VarNameOf(e.Level())
}

// SuccID returns the identity of this edge's successor node, stable for
// the lifetime of the owning Manager. Two edges from the same Manager
// with equal SuccID lead to the identical node, even if their own
// weights differ; this is the identity external collaborators such as
// the Graphviz emitter need to index and rank nodes without depending on
// package-internal types.
func (e Edge) SuccID() NodeID {
	return e.succ
}

// Manager returns the Manager that owns this edge.
func (e Edge) Manager() *Manager {
	return e.mgr
}

func (e Edge) raw() tableEdge {
	return tableEdge{Weight: e.weight, Succ: e.succ}
}

// Manager binds an ordered list of variable names to domain sizes for one
// diagram family, owns the unique table and Apply memo cache for that
// family, and constructs constant and variable EVMDDs. All diagrams built
// through a Manager share its single reduction mode (I4); Apply rejects
// operands not owned by the same Manager.
//
// A Manager does not expose mutation of its variable list; construct a new
// Manager to change variables.
type Manager struct {
	varNames   []string
	varDomains []int
	mode       Mode
	table      *nodeTable
	memo       map[applyKey]tableEdge
	memoLimit  int
}

// NewManager constructs a Manager over varNames (in the desired variable
// order) with matching per-variable domain sizes in varDomains. Returns
// ErrDomainMismatch if the lists differ in length, a domain size is not
// positive, or a variable name is repeated.
func NewManager(varNames []string, varDomains []int, opts ...Option) (*Manager, error) {
	if len(varNames) != len(varDomains) {
		return nil, fmt.Errorf("%w: %d variable names but %d domain sizes", ErrDomainMismatch, len(varNames), len(varDomains))
	}
	seen := make(map[string]bool, len(varNames))
	for i, name := range varNames {
		if varDomains[i] <= 0 {
			return nil, fmt.Errorf("%w: variable %q has non-positive domain size %d", ErrDomainMismatch, name, varDomains[i])
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: variable %q declared more than once", ErrDomainMismatch, name)
		}
		seen[name] = true
	}

	cfg := newConfig(opts...)

	names := make([]string, len(varNames))
	copy(names, varNames)
	domains := make([]int, len(varDomains))
	copy(domains, varDomains)

	return &Manager{
		varNames:   names,
		varDomains: domains,
		mode:       cfg.Mode,
		table:      newNodeTable(),
		memo:       make(map[applyKey]tableEdge),
		memoLimit:  cfg.MemoCacheLimit,
	}, nil
}

// Mode returns the reduction mode this manager enforces.
func (m *Manager) Mode() Mode {
	return m.mode
}

// NumVars returns the number of variables this manager knows about.
func (m *Manager) NumVars() int {
	return len(m.varNames)
}

// VarNames returns the variable names in manager order. The returned slice
// is a copy; mutating it has no effect on the manager.
func (m *Manager) VarNames() []string {
	out := make([]string, len(m.varNames))
	copy(out, m.varNames)
	return out
}

// Size returns the number of distinct nodes interned so far, including the
// sink.
func (m *Manager) Size() int {
	return m.table.size()
}

// LevelOf returns the level ℓ = n - index(name) for the named variable,
// where n is the number of variables and index is its 0-based position in
// the manager's ordering. Returns ErrUnknownVariable if name is not
// registered.
func (m *Manager) LevelOf(name string) (int, error) {
	for i, v := range m.varNames {
		if v == name {
			return len(m.varNames) - i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
}

// VarNameOf returns the variable name associated with nodes at the given
// level. level must be in [1, NumVars()].
func (m *Manager) VarNameOf(level int) (string, error) {
	if level < 1 || level > len(m.varNames) {
		return "", fmt.Errorf("%w: level %d out of range [1,%d]", ErrInvariantViolation, level, len(m.varNames))
	}
	idx := len(m.varNames) - level
	return m.varNames[idx], nil
}

// DomainSize returns the domain size of the variable associated with nodes
// at the given level. level must be in [1, NumVars()].
func (m *Manager) DomainSize(level int) (int, error) {
	if level < 1 || level > len(m.varDomains) {
		return 0, fmt.Errorf("%w: level %d out of range [1,%d]", ErrInvariantViolation, level, len(m.varDomains))
	}
	idx := len(m.varDomains) - level
	return m.varDomains[idx], nil
}

// Const returns the EVMDD representing the constant function k: a single
// edge of weight k leading directly to the sink.
func (m *Manager) Const(k int) Edge {
	return Edge{mgr: m, weight: k, succ: sinkID}
}

// Var returns the EVMDD representing the named variable: an edge of
// weight 0 leading to a branch node at the variable's level whose i-th
// child is an edge of weight i, for i in [0, domain size). In
// fully-reduced mode that child leads to the sink; in quasi-reduced mode
// it leads through one weight-0 pass-through node per lower level, so no
// level is skipped. Returns ErrUnknownVariable if name is not registered
// with this manager.
func (m *Manager) Var(name string) (Edge, error) {
	level, err := m.LevelOf(name)
	if err != nil {
		return Edge{}, err
	}
	d, err := m.DomainSize(level)
	if err != nil {
		return Edge{}, err
	}
	succ := sinkID
	if m.mode == QuasiReduced {
		for l := 1; l < level; l++ {
			ld, err := m.DomainSize(l)
			if err != nil {
				return Edge{}, err
			}
			through := make([]tableEdge, ld)
			for i := range through {
				through[i] = tableEdge{Weight: 0, Succ: succ}
			}
			succ = m.table.intern(l, through)
		}
	}
	children := make([]tableEdge, d)
	for i := 0; i < d; i++ {
		children[i] = tableEdge{Weight: i, Succ: succ}
	}
	return m.makeBranch(level, children), nil
}

// makeBranch builds the edge for a branch node at level with the given raw
// (not yet normalized) children: it subtracts the minimum child weight
// from every child, interns the resulting branch (or, in fully-reduced
// mode, collapses it via Shannon reduction if every normalized child is
// now identical), and returns an edge carrying the extracted minimum as
// its own weight.
func (m *Manager) makeBranch(level int, children []tableEdge) Edge {
	succ, min := m.makeBranchRaw(level, children)
	return Edge{mgr: m, weight: min, succ: succ}
}

func (m *Manager) makeBranchRaw(level int, children []tableEdge) (NodeID, int) {
	min := children[0].Weight
	for _, c := range children[1:] {
		if c.Weight < min {
			min = c.Weight
		}
	}
	normalized := make([]tableEdge, len(children))
	for i, c := range children {
		normalized[i] = tableEdge{Weight: c.Weight - min, Succ: c.Succ}
	}
	if m.mode == FullyReduced {
		first := normalized[0]
		allSame := true
		for _, c := range normalized[1:] {
			if c != first {
				allSame = false
				break
			}
		}
		if allSame {
			return first.Succ, min
		}
	}
	return m.table.intern(level, normalized), min
}
