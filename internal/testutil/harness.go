// Package testutil provides the shared harness the integration tests use to
// run the whole validator pipeline over an in-memory file set, plus a
// fabricator for tensor data file fixtures.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tylerchen0619/NNEF-Tools/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Options selects the validator features a harness run enables.
type Options struct {
	Flat        bool
	Layers      bool
	CheckBinary bool
	Atomics     string
}

// HarnessResult holds the outcomes of a validator run.
type HarnessResult struct {
	Stdout string // canonical rendering stream
	Stderr string // logs, parse diagnostics and tensor findings
	Dir    string // temporary root the files were written under
	Err    error
}

// RunValidator provides a standardized harness for running the validator
// end to end. Every files entry is written below a fresh temporary
// directory, then the description named by structure is validated with the
// given options. Tensor data fixtures can be produced with TensorFile.
func RunValidator(t *testing.T, files map[string]string, structure string, opts Options) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	config, err := app.NewConfig(app.Config{
		StructurePath: filepath.Join(tmpDir, structure),
		Flat:          opts.Flat,
		Layers:        opts.Layers,
		CheckBinary:   opts.CheckBinary,
		AtomicsSpec:   opts.Atomics,
		LogFormat:     "text",
		LogLevel:      "debug",
	})
	require.NoError(t, err)

	outBuf := &SafeBuffer{}
	errBuf := &SafeBuffer{}
	validator := app.NewApp(outBuf, errBuf, config)
	runErr := validator.Run(context.Background())

	if os.Getenv("NNEF_TEST_LOGS") == "true" {
		t.Logf("--- Full error stream for %s ---\n%s", t.Name(), errBuf.String())
	}

	return &HarnessResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
		Dir:    tmpDir,
		Err:    runErr,
	}
}
