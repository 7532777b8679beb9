package evmdd

import "fmt"

// Evaluate traverses edge top-down, following the unique path consistent
// with assignment, and returns the integer value of the function edge
// represents under that assignment.
//
// At each branch node, the variable name is looked up via the owning
// manager, and the corresponding value is read from assignment. Returns
// ErrMissingValue if assignment omits a required variable, and
// ErrOutOfDomain if the value given is outside the variable's declared
// domain.
func Evaluate(edge Edge, assignment map[string]int) (int, error) {
	m := edge.mgr
	acc := edge.weight
	cur := edge.succ

	for !m.table.isSink(cur) {
		node := m.table.node(cur)
		name, err := m.VarNameOf(node.Level)
		if err != nil {
			return 0, err
		}
		val, ok := assignment[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingValue, name)
		}
		if val < 0 || val >= len(node.Children) {
			return 0, fmt.Errorf("%w: %q = %d not in [0,%d)", ErrOutOfDomain, name, val, len(node.Children))
		}
		child := node.Children[val]
		acc += child.Weight
		cur = child.Succ
	}
	return acc, nil
}
