package workspace

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// SaveKind classifies why persisting an artifact failed.
type SaveKind int

const (
	// SaveOther is the catch-all classification.
	SaveOther SaveKind = iota
	// SaveCreateDir means a missing destination directory could not be
	// created.
	SaveCreateDir
	// SavePermission means the destination rejected the write.
	SavePermission
	// SaveInvalidPath means the destination path cannot name a file.
	SaveInvalidPath
	// SaveCopy means the artifact bytes could not be copied.
	SaveCopy
)

func (k SaveKind) String() string {
	switch k {
	case SaveCreateDir:
		return "create directory"
	case SavePermission:
		return "permission denied"
	case SaveInvalidPath:
		return "invalid path"
	case SaveCopy:
		return "copy"
	default:
		return "save"
	}
}

// SaveError reports a failed artifact save with its classification and the
// destination path involved.
type SaveError struct {
	Kind SaveKind
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("save %q: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("save %q: %s", e.Path, e.Kind)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

func classifySaveErr(kind SaveKind, path string, err error) *SaveError {
	if errors.Is(err, fs.ErrPermission) {
		kind = SavePermission
	}
	return &SaveError{Kind: kind, Path: path, Err: err}
}

// Overwrite policies for Save. ForceOverwrite always replaces an existing
// destination file; NeverOverwrite leaves it untouched.
var (
	ForceOverwrite = func() (bool, error) { return true, nil }
	NeverOverwrite = func() (bool, error) { return false, nil }
)

// Save persists the compiled artifact outside the workspace. dest may name a
// directory (the artifact is placed inside it under its workspace base name,
// replacing any previous file there), an existing file (replaced only if
// overwrite approves), or a not-yet existing path (missing parent directories
// are created). The overwrite query fires only when dest itself is an
// existing regular file. Save returns the target path and whether anything
// was written: a declined overwrite is not an error.
//
// Only a StateCompiled workspace has an artifact to save.
func (w *Workspace) Save(dest string, overwrite func() (bool, error)) (string, bool, error) {
	if w.state != StateCompiled {
		return "", false, fmt.Errorf("workspace is %s, no artifact to save", w.state)
	}
	if dest == "" {
		return "", false, &SaveError{Kind: SaveInvalidPath, Path: dest}
	}

	target, isFile, err := w.resolveTarget(dest)
	if err != nil {
		return "", false, err
	}

	if isFile {
		ok, err := overwrite()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return target, false, nil
		}
	}

	if err := copyFile(w.ArtifactPath(), target); err != nil {
		return "", false, classifySaveErr(SaveCopy, target, err)
	}
	return target, true, nil
}

// resolveTarget turns dest into the concrete file path to write, creating
// missing parent directories on the way. isFile reports that dest itself is
// an existing regular file, the one case where Save consults the overwrite
// decision.
func (w *Workspace) resolveTarget(dest string) (target string, isFile bool, err error) {
	base := filepath.Base(w.ArtifactPath())

	if info, err := os.Stat(dest); err == nil {
		if info.IsDir() {
			return filepath.Join(dest, base), false, nil
		}
		return dest, true, nil
	}

	// dest does not exist. A trailing separator means a directory was
	// asked for; otherwise treat dest as the target file and create its
	// parent chain.
	if dest[len(dest)-1] == os.PathSeparator {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return "", false, classifySaveErr(SaveCreateDir, dest, err)
		}
		return filepath.Join(dest, base), false, nil
	}

	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", false, classifySaveErr(SaveCreateDir, parent, err)
	}
	if filepath.Base(dest) == "." || filepath.Base(dest) == string(os.PathSeparator) {
		return "", false, &SaveError{Kind: SaveInvalidPath, Path: dest}
	}
	return dest, false, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
