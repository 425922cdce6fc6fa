package workspace

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// Open launches the platform's default viewer on the compiled artifact.
func (w *Workspace) Open() error {
	if w.state != StateCompiled {
		return fmt.Errorf("workspace is %s, no artifact to open", w.state)
	}
	if err := open.Run(w.ArtifactPath()); err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	return nil
}

// OpenArtifact launches the platform's default viewer on a saved artifact
// path.
func OpenArtifact(path string) error {
	if err := open.Run(path); err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	return nil
}
