package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tylerchen0619/NNEF-Tools/internal/testutil"
)

// TestProvenance_NestedExpansionReportsEveryInvocationSite drives an error
// two fragment levels deep and checks the report: the failure position
// once, then one "evaluated from" line per enclosing invocation site,
// nearest site first.
func TestProvenance_NestedExpansionReportsEveryInvocationSite(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	description := `
fragment "inner" {
  input "x" {}
  output "y" {}

  op mystery {
    y = y
    x = x
  }
}

fragment "outer" {
  input "x" {}
  output "y" {}

  op inner {
    y = y
    x = x
  }
}

graph net {
  inputs  = [data]
  outputs = [out]

  op external {
    output = data
    shape  = [1]
  }
  op outer {
    y = out
    x = data
  }
}
`
	files := map[string]string{"net.hcl": description}

	// --- Act ---
	result := testutil.RunValidator(t, files, "net.hcl", testutil.Options{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Stderr, `Parse error: [6:3] unknown operation "mystery"`)
	require.Contains(t, result.Stderr, "... evaluated from [16:3]")
	require.Contains(t, result.Stderr, "... evaluated from [30:3]")

	// The chain must print outward: failure site, then the inner invocation,
	// then the graph-level one.
	failureAt := strings.Index(result.Stderr, "Parse error: [6:3]")
	innerAt := strings.Index(result.Stderr, "... evaluated from [16:3]")
	graphAt := strings.Index(result.Stderr, "... evaluated from [30:3]")
	require.True(t, failureAt < innerAt && innerAt < graphAt,
		"provenance lines out of order:\n%s", result.Stderr)
}

// TestProvenance_GraphLevelErrorHasNoOriginLines checks that a failure
// outside any expansion reports only its own position.
func TestProvenance_GraphLevelErrorHasNoOriginLines(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	description := `
graph net {
  inputs  = [data]
  outputs = [out]

  op external {
    output = data
    shape  = [1]
  }
  op copy {
    y = out
    x = ghost
  }
}
`
	files := map[string]string{"net.hcl": description}

	// --- Act ---
	result := testutil.RunValidator(t, files, "net.hcl", testutil.Options{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Stderr, `Parse error: [12:9] undefined tensor "ghost"`)
	require.NotContains(t, result.Stderr, "evaluated from")
}

// TestProvenance_RunawayRecursionIsBounded makes a self-invoking fragment
// and checks the depth bound turns it into a report instead of a hang.
func TestProvenance_RunawayRecursionIsBounded(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	description := `
fragment "loop" {
  input "x" {}
  output "y" {}

  op loop {
    y = y
    x = x
  }
}

graph net {
  inputs  = [data]
  outputs = [out]

  op external {
    output = data
    shape  = [1]
  }
  op loop {
    y = out
    x = data
  }
}
`
	files := map[string]string{"net.hcl": description}

	// --- Act ---
	result := testutil.RunValidator(t, files, "net.hcl", testutil.Options{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Stderr, "fragment expansion exceeds depth 64")
}
