// Package engine enumerates the LaTeX engines that can turn rendered source
// into a PDF. PdfLatex and LuaLatex invoke external executables; Native runs
// in-process and is unavailable unless a renderer has been registered.
package engine

import (
	"fmt"
	"sync"
)

// Engine identifies a LaTeX compiler.
type Engine int

const (
	// PdfLatex is the pdflatex engine. Requires pdflatex to be installed;
	// included with TeX Live.
	PdfLatex Engine = iota
	// LuaLatex is the lualatex engine. It uses dynamic memory allocation, so
	// it usually has enough memory for any pgfplots axis, and is almost
	// compatible with pdflatex. Preferable where memory is a limitation.
	LuaLatex
	// Native processes the source in-process without invoking any external
	// executable. Selecting it fails unless RegisterNative has installed a
	// renderer.
	Native
)

// Default returns the engine used when the caller expresses no preference.
func Default() Engine {
	return LuaLatex
}

// UnknownEngineError reports an engine name outside the known set.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("no such latex engine exists with name %q; available engines are: pdflatex, lualatex, native", e.Name)
}

// Parse converts an engine name into an Engine.
func Parse(name string) (Engine, error) {
	switch name {
	case "pdflatex":
		return PdfLatex, nil
	case "lualatex":
		return LuaLatex, nil
	case "native":
		return Native, nil
	default:
		return 0, &UnknownEngineError{Name: name}
	}
}

// String reports the engine's executable name.
func (e Engine) String() string {
	switch e {
	case PdfLatex:
		return "pdflatex"
	case LuaLatex:
		return "lualatex"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

// Args returns the engine-specific CLI flags: non-interactive batch mode and
// halt on first error. Native takes no flags since it spawns no process.
func (e Engine) Args() []string {
	switch e {
	case PdfLatex:
		return []string{"-interaction=batchmode", "-halt-on-error"}
	case LuaLatex:
		return []string{"--interaction=batchmode", "--halt-on-error"}
	default:
		return nil
	}
}

// NativeRenderer processes LaTeX source in-process, writing the artifact to
// outputPath.
type NativeRenderer func(source, outputPath string) error

var (
	nativeMu       sync.RWMutex
	nativeRenderer NativeRenderer
)

// RegisterNative installs the in-process renderer backing the Native engine.
// Passing nil removes it.
func RegisterNative(r NativeRenderer) {
	nativeMu.Lock()
	defer nativeMu.Unlock()
	nativeRenderer = r
}

// NativeImpl returns the registered in-process renderer, if any.
func NativeImpl() (NativeRenderer, bool) {
	nativeMu.RLock()
	defer nativeMu.RUnlock()
	return nativeRenderer, nativeRenderer != nil
}
