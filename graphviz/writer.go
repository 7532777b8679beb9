// Package graphviz renders an EVMDD as a Graphviz/DOT graph, and can
// launch an external viewer on the result. It is an external collaborator
// of the evmdd engine: it consumes only the engine's public Edge contract
// (VarName, IsSink, Level, Weight, NumChildren, Child, SuccID), never its
// internals.
package graphviz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robertmattmueller/go-evmdd"
)

// Writer encodes EVMDDs as Graphviz/DOT text.
type Writer struct{}

// NewWriter returns a ready-to-use Writer. Writer holds no state between
// calls, so the zero value would also do; NewWriter exists for symmetry
// with the rest of the package's constructors.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDOT translates edge into Graphviz/DOT format: an invisible root
// pseudo-node followed by a weight box for the dangling incoming edge,
// one filled light-grey oval per branch node labeled with its variable
// name, a rectangular sink labeled "0", and weight boxes on every
// outgoing edge. Nodes at the same level share a `{rank = same; ...}`
// group.
func (w *Writer) WriteDOT(edge evmdd.Edge) (string, error) {
	nodes, err := collectNodes(edge)
	if err != nil {
		return "", err
	}

	index := make(map[evmdd.NodeID]int, len(nodes))
	for i, n := range nodes {
		index[n.SuccID()] = i
	}

	var lines []string
	lines = append(lines, "digraph G {")
	lines = append(lines, rootEdgeLines(edge, index)...)
	for _, n := range nodes {
		nodeLines, err := nodeLines(n, index)
		if err != nil {
			return "", err
		}
		lines = append(lines, nodeLines...)
	}
	lines = append(lines, rankLines(nodes, index)...)
	lines = append(lines, "}")
	return strings.Join(lines, "\n"), nil
}

// collectNodes walks edge's reachable nodes, deduplicating by successor
// identity, and returns them ordered by level (sink first, root last) for
// stable, readable DOT output.
func collectNodes(root evmdd.Edge) ([]evmdd.Edge, error) {
	visited := make(map[evmdd.NodeID]bool)
	var order []evmdd.Edge

	var visit func(e evmdd.Edge) error
	visit = func(e evmdd.Edge) error {
		if visited[e.SuccID()] {
			return nil
		}
		visited[e.SuccID()] = true
		order = append(order, e)
		for i := 0; i < e.NumChildren(); i++ {
			if err := visit(e.Child(i)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Level() < order[j].Level()
	})
	return order, nil
}

func varNodeName(idx, level int) string {
	return fmt.Sprintf(`"s%d[level=%d]"`, idx, level)
}

func weightNodeName(idx, level, domainIdx int) string {
	return fmt.Sprintf(`"s%d[level=%d]=%d"`, idx, level, domainIdx)
}

func rootEdgeLines(edge evmdd.Edge, index map[evmdd.NodeID]int) []string {
	const rootName = "dummyNode"
	const weightName = "constantWeight"
	succName := varNodeName(index[edge.SuccID()], edge.Level())
	return []string{
		fmt.Sprintf("%s [style=invis];", rootName),
		fmt.Sprintf(`%s [shape=box,height=0.25,width=0.5,label="%+d"];`, weightName, edge.Weight()),
		fmt.Sprintf(`%s -> %s [arrowhead=none, label=""];`, rootName, weightName),
		fmt.Sprintf("%s -> %s;", weightName, succName),
	}
}

func nodeLines(n evmdd.Edge, index map[evmdd.NodeID]int) ([]string, error) {
	name := varNodeName(index[n.SuccID()], n.Level())
	if n.IsSink() {
		return []string{fmt.Sprintf(`%s [shape=box,height=0.25,width=0.5,rank=sink,label="0"];`, name)}, nil
	}

	varName, err := n.VarName()
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf(`%s [style=filled,fillcolor=lightgrey,label="%s"];`, name, varName)}
	for i := 0; i < n.NumChildren(); i++ {
		child := n.Child(i)
		wName := weightNodeName(index[n.SuccID()], n.Level(), i)
		succName := varNodeName(index[child.SuccID()], child.Level())
		lines = append(lines,
			fmt.Sprintf(`%s [shape=box,height=0.25,width=0.5,label="%+d"];`, wName, child.Weight()),
			fmt.Sprintf(`%s -> %s [arrowhead=none, label="%d"];`, name, wName, i),
			fmt.Sprintf("%s -> %s;", wName, succName),
		)
	}
	return lines, nil
}

func rankLines(nodes []evmdd.Edge, index map[evmdd.NodeID]int) []string {
	byLevel := make(map[int][]string)
	var levels []int
	for _, n := range nodes {
		lvl := n.Level()
		if _, ok := byLevel[lvl]; !ok {
			levels = append(levels, lvl)
		}
		byLevel[lvl] = append(byLevel[lvl], varNodeName(index[n.SuccID()], lvl))
	}
	sort.Ints(levels)

	var lines []string
	for _, lvl := range levels {
		lines = append(lines, fmt.Sprintf("{rank = same; %s;}", strings.Join(byLevel[lvl], ";")))
	}
	return lines
}
