package document

import (
	"fmt"
	"strings"
)

// Package is a LaTeX package imported in the document preamble:
//
//	\usepackage{name}[options]
type Package struct {
	name    string
	options []string
}

// NewPackage constructs a package import with the given options.
func NewPackage(name string, opts ...string) Package {
	return Package{name: name, options: append([]string(nil), opts...)}
}

// Name reports the package name.
func (p Package) Name() string {
	return p.name
}

// AddOption appends an option to the package import.
func (p *Package) AddOption(option string) {
	p.options = append(p.options, option)
}

// String renders the import line, with a bracketed comma-joined option list
// when options are present.
func (p Package) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\\usepackage{%s}", p.name)
	if len(p.options) > 0 {
		fmt.Fprintf(&sb, "[%s]", strings.Join(p.options, ", "))
	}
	return sb.String()
}
