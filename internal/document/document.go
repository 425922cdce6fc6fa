// Package document assembles the standalone LaTeX document that carries the
// generated figures: a preamble with package and PGFPlots library imports,
// the validated compatibility directive, and a body of picture environments.
// Adding a picture unions its subtree's required libraries into the preamble,
// so the preamble is always consistent with the tree content as of the last
// mutation.
package document

import (
	"context"
	"strings"

	"github.com/vk/texfig/internal/engine"
	"github.com/vk/texfig/internal/figure"
	"github.com/vk/texfig/internal/workspace"
)

// Document is a standalone LaTeX document generating one or more figures.
type Document struct {
	preamble Preamble
	body     []*figure.Picture
}

// New constructs a new empty document with the default compatibility version.
func New() *Document {
	return &Document{preamble: NewPreamble()}
}

// FromPicture constructs a document holding a single picture.
func FromPicture(p *figure.Picture) *Document {
	d := New()
	d.AddPicture(p)
	return d
}

// SetCompat sets the PGFPlots compatibility layer.
func (d *Document) SetCompat(c Compat) {
	d.preamble.SetCompat(c)
}

// SetCompatVersion validates and sets the compatibility layer version.
// Invalid versions are rejected here, never deferred to render time.
func (d *Document) SetCompatVersion(version string) error {
	return d.preamble.SetCompatVersion(version)
}

// AddLibrary adds a PGFPlots library import to the preamble.
func (d *Document) AddLibrary(lib figure.Library) {
	d.preamble.AddLibrary(lib)
}

// AddPackage adds a LaTeX package import to the preamble.
func (d *Document) AddPackage(pkg Package) {
	d.preamble.AddPackage(pkg)
}

// AddPicture appends a picture to the document body and unions the picture
// subtree's required PGFPlots libraries into the preamble.
func (d *Document) AddPicture(p *figure.Picture) {
	d.preamble.AddLibraries(p.RequiredLibraries()...)
	d.body = append(d.body, p)
}

// RequiredLibraries reports the preamble's library import list.
func (d *Document) RequiredLibraries() []figure.Library {
	return d.preamble.Libraries()
}

// Render returns the complete LaTeX source of the standalone document.
// Rendering is a pure function of the tree; calling it twice without
// intervening mutation yields byte-identical text.
func (d *Document) Render() string {
	pictures := make([]string, len(d.body))
	for i, p := range d.body {
		pictures[i] = p.String()
	}

	return strings.Join([]string{
		d.preamble.String(),
		"\\begin{document}",
		strings.Join(pictures, "\n"),
		"\\end{document}",
	}, "\n")
}

// Compile renders the document and compiles it in a fresh workspace using the
// given engine. On success the returned workspace holds the produced
// artifact; the caller owns the workspace and must Close it when done. The
// source is written to a file rather than passed on stdin so arbitrarily
// large coordinate series do not overflow the argument list.
func (d *Document) Compile(ctx context.Context, eng engine.Engine) (*workspace.Workspace, error) {
	ws, err := workspace.New()
	if err != nil {
		return nil, err
	}
	if err := ws.Compile(ctx, eng, d.Render()); err != nil {
		ws.Close()
		return nil, err
	}
	return ws, nil
}
