package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/texfig/internal/engine"
)

// installFakeEngine puts an executable named like the engine binary on PATH.
// The script body decides whether the fake compile succeeds.
func installFakeEngine(t *testing.T, eng engine.Engine, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine scripts require a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, eng.String())
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir)
}

func TestCompileSuccess(t *testing.T) {
	// The last argument is the source file name; the fake engine writes the
	// artifact next to it, like a real compiler running in the workspace.
	installFakeEngine(t, engine.PdfLatex, `
for arg in "$@"; do last="$arg"; done
printf 'pdf' > "${last%.tex}.pdf"
`)

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	err = ws.Compile(context.Background(), engine.PdfLatex, "\\documentclass{standalone}\n")
	require.NoError(t, err)
	assert.Equal(t, StateCompiled, ws.State())
	assert.FileExists(t, ws.ArtifactPath())
}

func TestCompileExitStatus(t *testing.T) {
	installFakeEngine(t, engine.PdfLatex, "exit 42\n")

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	err = ws.Compile(context.Background(), engine.PdfLatex, "broken")
	require.Error(t, err)

	var exitErr *ExitStatusError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, engine.PdfLatex, exitErr.Engine)
	assert.Equal(t, 42, exitErr.ExitCode)
	assert.Equal(t, StateFailed, ws.State())
}

func TestCompileSpawnFailure(t *testing.T) {
	// An empty PATH directory means the engine binary cannot be found. That
	// is a spawn failure, not a compiler exit status.
	t.Setenv("PATH", t.TempDir())

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	err = ws.Compile(context.Background(), engine.PdfLatex, "source")
	require.Error(t, err)

	var exitErr *ExitStatusError
	assert.False(t, errors.As(err, &exitErr))
	assert.Equal(t, StateFailed, ws.State())
	// The source was still written before the spawn was attempted.
	assert.FileExists(t, ws.SourcePath())
}

func TestCompileCancelled(t *testing.T) {
	installFakeEngine(t, engine.PdfLatex, "sleep 30\n")

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Compile(ctx, engine.PdfLatex, "source") }()
	cancel()

	err = <-done
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateCancelled, ws.State())
}

func TestCompileNativeUnregistered(t *testing.T) {
	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	err = ws.Compile(context.Background(), engine.Native, "source")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Equal(t, StateFailed, ws.State())
}

func TestCompileNativeRegistered(t *testing.T) {
	engine.RegisterNative(func(source, outputPath string) error {
		return os.WriteFile(outputPath, []byte("pdf"), 0o644)
	})
	t.Cleanup(func() { engine.RegisterNative(nil) })

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	require.NoError(t, ws.Compile(context.Background(), engine.Native, "source"))
	assert.Equal(t, StateCompiled, ws.State())
	assert.FileExists(t, ws.ArtifactPath())
}

func TestCompileTwiceRejected(t *testing.T) {
	installFakeEngine(t, engine.PdfLatex, `
for arg in "$@"; do last="$arg"; done
printf 'pdf' > "${last%.tex}.pdf"
`)

	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	require.NoError(t, ws.Compile(context.Background(), engine.PdfLatex, "a"))
	err = ws.Compile(context.Background(), engine.PdfLatex, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiled")
}
