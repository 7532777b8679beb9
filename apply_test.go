package evmdd_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robertmattmueller/go-evmdd"
)

// ApplySuite exercises the Apply engine's algebraic laws (spec section 8)
// directly against the Manager API, independent of the surface parser.
type ApplySuite struct {
	suite.Suite
	m *evmdd.Manager
}

func TestApplySuite(t *testing.T) {
	suite.Run(t, new(ApplySuite))
}

func (s *ApplySuite) SetupTest() {
	m, err := evmdd.NewManager([]string{"A", "B"}, []int{3, 3})
	s.Require().NoError(err)
	s.m = m
}

func (s *ApplySuite) allAssignments() []map[string]int {
	var out []map[string]int
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			out = append(out, map[string]int{"A": a, "B": b})
		}
	}
	return out
}

func (s *ApplySuite) evalAll(e evmdd.Edge) []int {
	var out []int
	for _, sigma := range s.allAssignments() {
		v, err := evmdd.Evaluate(e, sigma)
		s.Require().NoError(err)
		out = append(out, v)
	}
	return out
}

func (s *ApplySuite) TestAddMatchesIntegerSemantics() {
	a, err := s.m.Var("A")
	s.Require().NoError(err)
	b, err := s.m.Var("B")
	s.Require().NoError(err)

	sum, err := s.m.Add(a, b)
	s.Require().NoError(err)

	for _, sigma := range s.allAssignments() {
		v, err := evmdd.Evaluate(sum, sigma)
		s.Require().NoError(err)
		s.Equal(sigma["A"]+sigma["B"], v)
	}
}

func (s *ApplySuite) TestAddIsCommutative() {
	a, err := s.m.Var("A")
	s.Require().NoError(err)
	b, err := s.m.Var("B")
	s.Require().NoError(err)

	ab, err := s.m.Add(a, b)
	s.Require().NoError(err)
	ba, err := s.m.Add(b, a)
	s.Require().NoError(err)

	s.Equal(ab, ba, "a+b and b+a must be the identical handle")
}

func (s *ApplySuite) TestMulIsCommutative() {
	a, err := s.m.Var("A")
	s.Require().NoError(err)
	b, err := s.m.Var("B")
	s.Require().NoError(err)

	ab, err := s.m.Mul(a, b)
	s.Require().NoError(err)
	ba, err := s.m.Mul(b, a)
	s.Require().NoError(err)

	s.Equal(ab, ba)
}

func (s *ApplySuite) TestAssociativity() {
	a, _ := s.m.Var("A")
	b, _ := s.m.Var("B")
	c := s.m.Const(2)

	abThenC, err := s.m.Add(mustAdd(s, a, b), c)
	s.Require().NoError(err)
	aThenBC, err := s.m.Add(a, mustAdd(s, b, c))
	s.Require().NoError(err)

	s.Equal(abThenC, aThenBC)
}

func mustAdd(s *ApplySuite, a, b evmdd.Edge) evmdd.Edge {
	r, err := s.m.Add(a, b)
	s.Require().NoError(err)
	return r
}

func (s *ApplySuite) TestDistributivity() {
	a, _ := s.m.Var("A")
	b, _ := s.m.Var("B")
	c := s.m.Const(2)

	left, err := s.m.Mul(a, mustAdd(s, b, c))
	s.Require().NoError(err)

	ab, err := s.m.Mul(a, b)
	s.Require().NoError(err)
	ac, err := s.m.Mul(a, c)
	s.Require().NoError(err)
	right, err := s.m.Add(ab, ac)
	s.Require().NoError(err)

	s.Equal(left, right)
}

func (s *ApplySuite) TestIdentities() {
	a, _ := s.m.Var("A")

	plusZero, err := s.m.Add(a, s.m.Const(0))
	s.Require().NoError(err)
	s.Equal(a, plusZero)

	timesOne, err := s.m.Mul(a, s.m.Const(1))
	s.Require().NoError(err)
	s.Equal(a, timesOne)

	timesZero, err := s.m.Mul(a, s.m.Const(0))
	s.Require().NoError(err)
	s.Equal(s.m.Const(0), timesZero)

	minusSelf, err := s.m.Sub(a, a)
	s.Require().NoError(err)
	s.Equal(s.m.Const(0), minusSelf)
}

func (s *ApplySuite) TestNegMatchesIntegerSemantics() {
	a, _ := s.m.Var("A")
	neg, err := s.m.Neg(a)
	s.Require().NoError(err)

	for _, sigma := range s.allAssignments() {
		v, err := evmdd.Evaluate(neg, sigma)
		s.Require().NoError(err)
		s.Equal(-sigma["A"], v)
	}
}

func (s *ApplySuite) TestPowLaw() {
	a, _ := s.m.Var("A")
	for k := 0; k <= 3; k++ {
		powered, err := s.m.Pow(a, k)
		s.Require().NoError(err)
		for _, sigma := range s.allAssignments() {
			v, err := evmdd.Evaluate(powered, sigma)
			s.Require().NoError(err)
			expected := 1
			for i := 0; i < k; i++ {
				expected *= sigma["A"]
			}
			s.Equal(expected, v)
		}
	}
}

func (s *ApplySuite) TestPowNegativeExponent() {
	a, _ := s.m.Var("A")
	_, err := s.m.Pow(a, -1)
	s.Require().ErrorIs(err, evmdd.ErrNegativeExponent)
}

func (s *ApplySuite) TestModeMismatchAcrossManagers() {
	other, err := evmdd.NewManager([]string{"A", "B"}, []int{3, 3})
	s.Require().NoError(err)

	a, _ := s.m.Var("A")
	bOther, err := other.Var("B")
	s.Require().NoError(err)

	_, err = s.m.Add(a, bOther)
	s.Require().ErrorIs(err, evmdd.ErrModeMismatch)
}

func (s *ApplySuite) TestMulByNegativeConstantStaysNormalized() {
	// Regression for the terminal multiplication case: scaling a
	// variable's branch by a negative constant must renormalize the
	// result so the minimum child weight is still 0 (invariant I1),
	// rather than the unnormalized scaled-children node the literal
	// source would produce.
	a, _ := s.m.Var("A")
	scaled, err := s.m.Mul(a, s.m.Const(-1))
	s.Require().NoError(err)

	// Var(A) has child weights 0, 1, 2; scaling by -1 gives 0, -1, -2, so
	// normalization lifts -2 into the edge and leaves children 2, 1, 0.
	s.Equal(-2, scaled.Weight())
	minChild := scaled.Child(0).Weight()
	for i := 1; i < scaled.NumChildren(); i++ {
		if w := scaled.Child(i).Weight(); w < minChild {
			minChild = w
		}
	}
	s.Equal(0, minChild)

	for _, sigma := range s.allAssignments() {
		v, err := evmdd.Evaluate(scaled, sigma)
		s.Require().NoError(err)
		s.Equal(-sigma["A"], v)
	}
}

// TestFullyReducedVsQuasiReducedAgreeOnEvaluation is property 8 (mode
// equivalence) for a representative term, matching scenario S5's domain.
func TestFullyReducedVsQuasiReducedAgreeOnEvaluation(t *testing.T) {
	full, err := evmdd.NewManager([]string{"X"}, []int{3})
	require1(t, err)
	quasi, err := evmdd.NewManager([]string{"X"}, []int{3}, evmdd.WithQuasiReduced())
	require1(t, err)

	xFull, err := full.Var("X")
	require1(t, err)
	xQuasi, err := quasi.Var("X")
	require1(t, err)

	fullSq, err := full.Mul(xFull, xFull)
	require1(t, err)
	quasiSq, err := quasi.Mul(xQuasi, xQuasi)
	require1(t, err)

	for x := 0; x < 3; x++ {
		sigma := map[string]int{"X": x}
		fv, err := evmdd.Evaluate(fullSq, sigma)
		require1(t, err)
		qv, err := evmdd.Evaluate(quasiSq, sigma)
		require1(t, err)
		if fv != qv {
			t.Fatalf("mode disagreement at X=%d: fully-reduced=%d quasi-reduced=%d", x, fv, qv)
		}
	}
}

func require1(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
