package workspace

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/vk/texfig/internal/engine"
)

// ExitStatusError reports that the compiler ran to completion but exited
// with a non-zero status. It is distinct from spawn failures: the binary was
// found and executed, the source just did not compile.
type ExitStatusError struct {
	Engine   engine.Engine
	ExitCode int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Engine, e.ExitCode)
}

// Compile writes source into the workspace and runs the given engine against
// it. The compiler's stdout and stderr are discarded; on failure the caller
// can inspect the log file next to the source. The workspace ends in
// StateCompiled, StateFailed, or StateCancelled and can never be compiled
// twice.
func (w *Workspace) Compile(ctx context.Context, eng engine.Engine, source string) error {
	if w.state != StateCreated {
		return fmt.Errorf("workspace is %s, cannot compile", w.state)
	}
	if err := w.WriteSource(source); err != nil {
		return err
	}

	if eng == engine.Native {
		return w.compileNative(source)
	}
	return w.compileExternal(ctx, eng)
}

func (w *Workspace) compileNative(source string) error {
	render, ok := engine.NativeImpl()
	if !ok {
		w.state = StateFailed
		return errors.New("native engine is not available in this build")
	}
	if err := render(source, w.ArtifactPath()); err != nil {
		w.state = StateFailed
		return fmt.Errorf("native rendering failed: %w", err)
	}
	w.state = StateCompiled
	return nil
}

func (w *Workspace) compileExternal(ctx context.Context, eng engine.Engine) error {
	args := append(eng.Args(), filepath.Base(w.sourceFile))
	cmd := exec.CommandContext(ctx, eng.String(), args...)
	cmd.Dir = w.dir

	err := cmd.Run()
	if err == nil {
		w.state = StateCompiled
		return nil
	}

	if ctx.Err() != nil {
		w.state = StateCancelled
		return fmt.Errorf("compilation cancelled: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		w.state = StateFailed
		return &ExitStatusError{Engine: eng, ExitCode: exitErr.ExitCode()}
	}

	w.state = StateFailed
	return fmt.Errorf("failed to run %s: %w", eng, err)
}
