package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspace(t *testing.T) {
	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	assert.Equal(t, StateCreated, ws.State())
	assert.DirExists(t, ws.Dir())
	assert.Equal(t, filepath.Join(ws.Dir(), "texfig.tex"), ws.SourcePath())
	assert.Equal(t, filepath.Join(ws.Dir(), "texfig.pdf"), ws.ArtifactPath())
	assert.NoFileExists(t, ws.SourcePath())
}

func TestNewNamedUsesStem(t *testing.T) {
	ws, err := NewNamed("voltage-sweep")
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	assert.Equal(t, "voltage-sweep.tex", filepath.Base(ws.SourcePath()))
	assert.Equal(t, "voltage-sweep.pdf", filepath.Base(ws.ArtifactPath()))
}

func TestWriteSource(t *testing.T) {
	ws, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	require.NoError(t, ws.WriteSource("\\documentclass{standalone}\n"))
	assert.Equal(t, StateSourceWritten, ws.State())

	data, err := os.ReadFile(ws.SourcePath())
	require.NoError(t, err)
	assert.Equal(t, "\\documentclass{standalone}\n", string(data))

	// Writing twice is rejected: a workspace backs exactly one attempt.
	err = ws.WriteSource("again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source written")
}

func TestCloseRemovesDirAndIsIdempotent(t *testing.T) {
	ws, err := New()
	require.NoError(t, err)
	dir := ws.Dir()

	require.NoError(t, ws.Close())
	assert.NoDirExists(t, dir)
	require.NoError(t, ws.Close())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "source written", StateSourceWritten.String())
	assert.Equal(t, "compiled", StateCompiled.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
}
