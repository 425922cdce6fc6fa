package document

import (
	"strings"

	"github.com/vk/texfig/internal/figure"
)

// Preamble is the document preamble: the standalone class declaration, the
// fixed pgfplots package import, the compatibility directive, the required
// PGFPlots library imports, and any additional LaTeX packages.
type Preamble struct {
	pkgs   []Package
	libs   []figure.Library
	compat Compat
}

// NewPreamble constructs an empty preamble with the default compatibility
// version.
func NewPreamble() Preamble {
	return Preamble{compat: DefaultCompat()}
}

// SetCompat sets the PGFPlots compatibility layer.
func (p *Preamble) SetCompat(c Compat) {
	p.compat = c
}

// SetCompatVersion validates and sets the compatibility layer version.
func (p *Preamble) SetCompatVersion(version string) error {
	c, err := NewCompat(version)
	if err != nil {
		return err
	}
	p.compat = c
	return nil
}

// AddLibrary adds a PGFPlots library import. Libraries already present are
// skipped, so the import list stays de-duplicated in first-seen order.
func (p *Preamble) AddLibrary(lib figure.Library) {
	for _, existing := range p.libs {
		if existing == lib {
			return
		}
	}
	p.libs = append(p.libs, lib)
}

// AddLibraries adds several PGFPlots library imports.
func (p *Preamble) AddLibraries(libs ...figure.Library) {
	for _, lib := range libs {
		p.AddLibrary(lib)
	}
}

// AddPackage adds a LaTeX package import.
func (p *Preamble) AddPackage(pkg Package) {
	p.pkgs = append(p.pkgs, pkg)
}

// Libraries returns the required library imports in first-seen order.
func (p *Preamble) Libraries() []figure.Library {
	return p.libs
}

// String renders the preamble, one import per line, ending with a newline.
func (p Preamble) String() string {
	var sb strings.Builder
	sb.WriteString("\\documentclass{standalone}\n\\usepackage{pgfplots}\n")
	sb.WriteString(p.compat.String() + "\n")

	for _, lib := range p.libs {
		sb.WriteString(lib.String() + "\n")
	}

	for _, pkg := range p.pkgs {
		sb.WriteString(pkg.String() + "\n")
	}

	return sb.String()
}
