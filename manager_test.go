package evmdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/robertmattmueller/go-evmdd"
)

// ManagerSuite exercises Manager construction, variable/level mapping, and
// the constant/variable EVMDD constructors.
type ManagerSuite struct {
	suite.Suite
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) TestDomainMismatchLengths() {
	_, err := evmdd.NewManager([]string{"A", "B"}, []int{2})
	s.Require().ErrorIs(err, evmdd.ErrDomainMismatch)
}

func (s *ManagerSuite) TestDomainMismatchNonPositive() {
	_, err := evmdd.NewManager([]string{"A"}, []int{0})
	s.Require().ErrorIs(err, evmdd.ErrDomainMismatch)
}

func (s *ManagerSuite) TestDomainMismatchDuplicateName() {
	_, err := evmdd.NewManager([]string{"A", "A"}, []int{2, 2})
	s.Require().ErrorIs(err, evmdd.ErrDomainMismatch)
}

func (s *ManagerSuite) TestLevelOfMatchesSpecFormula() {
	m, err := evmdd.NewManager([]string{"A", "B", "C"}, []int{2, 3, 2})
	s.Require().NoError(err)

	// level(name) = n - index(name); root-level variable is A (level 3).
	level, err := m.LevelOf("A")
	s.Require().NoError(err)
	s.Equal(3, level)

	level, err = m.LevelOf("B")
	s.Require().NoError(err)
	s.Equal(2, level)

	level, err = m.LevelOf("C")
	s.Require().NoError(err)
	s.Equal(1, level)
}

func (s *ManagerSuite) TestLevelOfUnknownVariable() {
	m, err := evmdd.NewManager([]string{"A"}, []int{2})
	s.Require().NoError(err)

	_, err = m.LevelOf("Z")
	s.Require().ErrorIs(err, evmdd.ErrUnknownVariable)
}

func (s *ManagerSuite) TestVarNameOfAndDomainSizeRoundTrip() {
	m, err := evmdd.NewManager([]string{"A", "B", "C"}, []int{2, 3, 4})
	s.Require().NoError(err)

	for _, name := range []string{"A", "B", "C"} {
		level, err := m.LevelOf(name)
		require.NoError(s.T(), err)

		roundTripName, err := m.VarNameOf(level)
		require.NoError(s.T(), err)
		s.Equal(name, roundTripName)
	}

	dC, err := m.DomainSize(1)
	s.Require().NoError(err)
	s.Equal(4, dC)
}

func (s *ManagerSuite) TestConstIsSinkEdge() {
	m, err := evmdd.NewManager([]string{"A"}, []int{2})
	s.Require().NoError(err)

	c := m.Const(7)
	s.True(c.IsSink())
	s.Equal(7, c.Weight())
}

func (s *ManagerSuite) TestVarUnknown() {
	m, err := evmdd.NewManager([]string{"A"}, []int{2})
	s.Require().NoError(err)

	_, err = m.Var("Z")
	s.Require().ErrorIs(err, evmdd.ErrUnknownVariable)
}

func (s *ManagerSuite) TestVarBranchHasNormalizedWeightsAndCorrectArity() {
	m, err := evmdd.NewManager([]string{"A"}, []int{3})
	s.Require().NoError(err)

	a, err := m.Var("A")
	s.Require().NoError(err)

	s.False(a.IsSink())
	s.Equal(0, a.Weight())
	s.Equal(3, a.NumChildren())
	for i := 0; i < 3; i++ {
		child := a.Child(i)
		s.Equal(i, child.Weight())
		s.True(child.IsSink())
	}
}

func (s *ManagerSuite) TestSingletonDomainVariableCollapsesToSink() {
	// A variable with domain size 1 carries no information: its single
	// child is trivially identical to itself, so fully-reduced mode
	// Shannon-reduces it away.
	m, err := evmdd.NewManager([]string{"A"}, []int{1})
	s.Require().NoError(err)

	a, err := m.Var("A")
	s.Require().NoError(err)
	s.True(a.IsSink())
	s.Equal(0, a.Weight())
}
