package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommaSeparatedListTrimsWhitespace(t *testing.T) {
	require.Equal(t, []string{"A", "B", "C"}, parseCommaSeparatedList("A, B , C"))
}

func TestParseAssignmentRejectsMalformedEntry(t *testing.T) {
	_, err := parseAssignment([]string{"A=1", "B"})
	require.Error(t, err)
}

func TestParseAssignmentRejectsNonIntegerValue(t *testing.T) {
	_, err := parseAssignment([]string{"A=one"})
	require.Error(t, err)
}

func TestParseAssignmentParsesAllEntries(t *testing.T) {
	got, err := parseAssignment([]string{"A=1", "B=-2"})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 1, "B": -2}, got)
}

// resetFlags clears the package-level flag variables between test runs:
// pflag's StringArrayVar appends rather than overwrites, so a flag omitted
// on one Execute call would otherwise still carry the previous call's
// value.
func resetFlags() {
	assignFlags = nil
	dotPath = ""
	viewResult = false
	quasiReduced = false
}

func TestRootCommandCompilesAndEvaluates(t *testing.T) {
	resetFlags()
	dotOut := filepath.Join(t.TempDir(), "sum.dot")

	rootCmd.SetArgs([]string{"A+B", "A,B", "2,2", "--assign", "A=1", "--assign", "B=1", "--dot", dotOut})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	_, statErr := os.Stat(dotOut)
	require.NoError(t, statErr)
}

func TestRootCommandDefaultsOrderingAndDomains(t *testing.T) {
	resetFlags()
	rootCmd.SetArgs([]string{"A+B"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	require.NoError(t, err)
}
