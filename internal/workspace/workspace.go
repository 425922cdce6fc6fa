// Package workspace owns the ephemeral filesystem side of a single compile
// attempt: an isolated temporary directory, the LaTeX source file written
// into it, and the artifact the compiler leaves behind. A workspace moves
// through a fixed set of states (created, source written, compiled, failed,
// cancelled) and is never reused for a second compile attempt.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// State is the lifecycle position of a workspace.
type State int

const (
	// StateCreated means the temporary directory exists but the source file
	// has not been written yet.
	StateCreated State = iota
	// StateSourceWritten means the rendered source sits on disk, ready to
	// compile.
	StateSourceWritten
	// StateCompiled is the terminal success state: the artifact exists.
	StateCompiled
	// StateFailed is the terminal failure state: the compiler exited
	// non-zero, could not be spawned, or the source could not be written.
	StateFailed
	// StateCancelled is the terminal state reached when the caller's context
	// was cancelled mid-compilation.
	StateCancelled
)

// String reports a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateSourceWritten:
		return "source written"
	case StateCompiled:
		return "compiled"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// OutputType is the kind of artifact a compilation produces.
type OutputType int

const (
	// OutputPDF is the single final-artifact kind currently produced.
	OutputPDF OutputType = iota
)

// Ext reports the artifact file extension.
func (o OutputType) Ext() string {
	return "pdf"
}

const defaultStem = "texfig"

// Workspace is the scoped temporary directory of one compile attempt.
type Workspace struct {
	dir        string
	sourceFile string
	outputType OutputType
	state      State
	closed     bool
}

// New allocates a fresh workspace with the default source file stem. Failure
// to allocate the temporary directory is fatal and reported immediately.
func New() (*Workspace, error) {
	return NewNamed(defaultStem)
}

// NewNamed allocates a fresh workspace whose source and artifact files use
// the given stem.
func NewNamed(stem string) (*Workspace, error) {
	if stem == "" {
		stem = defaultStem
	}
	dir, err := os.MkdirTemp("", "texfig-")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate workspace directory: %w", err)
	}
	return &Workspace{
		dir:        dir,
		sourceFile: filepath.Join(dir, stem+".tex"),
	}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// SourcePath returns the path of the LaTeX source file inside the workspace.
// In StateCreated the file does not exist yet.
func (w *Workspace) SourcePath() string {
	return w.sourceFile
}

// ArtifactPath returns the path the compiler writes the artifact to.
func (w *Workspace) ArtifactPath() string {
	ext := filepath.Ext(w.sourceFile)
	return w.sourceFile[:len(w.sourceFile)-len(ext)] + "." + w.outputType.Ext()
}

// State reports the workspace's lifecycle position.
func (w *Workspace) State() State {
	return w.state
}

// Close removes the workspace directory and everything in it. It is safe to
// call more than once and on every exit path.
func (w *Workspace) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return os.RemoveAll(w.dir)
}

// WriteSource writes the rendered source to the workspace's source file. The
// write goes to a scratch file first and is renamed into place, so an I/O
// failure leaves no partial file referenced.
func (w *Workspace) WriteSource(source string) error {
	if w.state != StateCreated {
		return fmt.Errorf("workspace is %s, cannot write source", w.state)
	}

	tmp := w.sourceFile + ".tmp"
	if err := os.WriteFile(tmp, []byte(source), 0o644); err != nil {
		w.state = StateFailed
		return fmt.Errorf("failed to write source file: %w", err)
	}
	if err := os.Rename(tmp, w.sourceFile); err != nil {
		os.Remove(tmp)
		w.state = StateFailed
		return fmt.Errorf("failed to place source file: %w", err)
	}

	w.state = StateSourceWritten
	return nil
}
