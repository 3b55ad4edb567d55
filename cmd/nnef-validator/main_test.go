package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_UnreadableDescription(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A structure path that does not exist should fail the run itself, not
	// produce a parse diagnostic.
	args := []string{filepath.Join(t.TempDir(), "missing.hcl")}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read graph description")
}

func TestRun_RendersCanonicalForm(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	description := `
graph net {
  inputs  = [data]
  outputs = [out]

  op external {
    output = data
    shape  = [1, 3]
  }
  op copy {
    y = out
    x = data
  }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "net.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(description), 0600))

	args := []string{filePath}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "graph net( data ) -> ( out ) {")
	require.Contains(t, out.String(), "Parse succeeded")
	require.NotContains(t, errOut.String(), "Parse error:")
}

func TestRun_ReportsParseDiagnosticWithoutFailing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A reference to an unbound tensor is a diagnostic, not a process
	// failure: run returns nil and the report lands on the error stream.
	description := `
graph net {
  inputs  = [data]
  outputs = [out]

  op external {
    output = data
    shape  = [1, 3]
  }
  op copy {
    y = out
    x = nonexistent
  }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "net.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(description), 0600))

	args := []string{filePath}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, errOut.String(), "Parse error: [")
	require.Contains(t, errOut.String(), `undefined tensor "nonexistent"`)
	require.NotContains(t, out.String(), "Parse succeeded")
}
