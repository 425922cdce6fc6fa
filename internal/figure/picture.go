package figure

import (
	"fmt"
	"strings"

	"github.com/vk/texfig/internal/options"
)

// Environment is a nested, delimited block usable inside a Picture. The
// variant set is closed: an Axis, or a RawEnvironment for markup this
// package has no dedicated environment for.
type Environment interface {
	fmt.Stringer

	// RequiredLibraries reports the optional PGFPlots libraries the contained
	// plots depend on, de-duplicated in first-seen order.
	RequiredLibraries() []Library

	isEnvironment()
}

// RawEnvironment is a free-form block written verbatim into the picture body.
type RawEnvironment string

// String returns the block text unchanged.
func (r RawEnvironment) String() string { return string(r) }

// RequiredLibraries reports no library requirements for raw blocks.
func (RawEnvironment) RequiredLibraries() []Library { return nil }

func (RawEnvironment) isEnvironment() {}

// PictureOption is a TikZ option passed to the Picture environment. Only
// free-form options exist; they are written verbatim.
type PictureOption struct {
	kind string
	text string
}

// Kind reports the option's override identity.
func (o PictureOption) Kind() string { return o.kind }

// String reports the option's markup spelling.
func (o PictureOption) String() string { return o.text }

// CustomPictureOption is a free-form TikZ option written verbatim into the
// picture's option block.
func CustomPictureOption(text string) PictureOption {
	return PictureOption{kind: options.KindCustom, text: text}
}

// Picture is the TikZ graphics environment:
//
//	\begin{tikzpicture}[PictureOptions]
//	    % axis environments
//	\end{tikzpicture}
type Picture struct {
	opts options.Set[PictureOption]
	envs []Environment
}

// NewPicture creates a new, empty picture environment.
func NewPicture() *Picture {
	return &Picture{}
}

// AddOption adds an option controlling the appearance of the picture.
func (p *Picture) AddOption(opt PictureOption) {
	p.opts.Add(opt)
}

// AddEnvironment appends an inner environment to the picture.
func (p *Picture) AddEnvironment(env Environment) {
	p.envs = append(p.envs, env)
}

// AddAxis appends an axis environment to the picture.
func (p *Picture) AddAxis(a *Axis) {
	p.envs = append(p.envs, a)
}

// RequiredLibraries returns the optional PGFPlots libraries required anywhere
// in the picture's subtree, de-duplicated in first-seen order.
func (p *Picture) RequiredLibraries() []Library {
	var libs []Library
	for _, env := range p.envs {
		libs = mergeLibraries(libs, env.RequiredLibraries()...)
	}
	return libs
}

// String renders the picture environment with its option block and inner
// environments.
func (p *Picture) String() string {
	var sb strings.Builder
	sb.WriteString("\\begin{tikzpicture}")
	// One option per line so a human can find individual entries later.
	if !p.opts.Empty() {
		sb.WriteString("[\n")
		for _, opt := range p.opts.All() {
			sb.WriteString("\t" + opt.String() + ",\n")
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	for _, env := range p.envs {
		sb.WriteString(env.String() + "\n")
	}

	sb.WriteString("\\end{tikzpicture}")
	return sb.String()
}
