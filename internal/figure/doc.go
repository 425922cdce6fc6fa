// Package figure models the graphical environments of a generated LaTeX
// document: pictures, coordinate-system axes, and the plots they contain.
// Every node owns an ordered option set with last-write-wins override
// semantics and renders itself into compiler-ready PGFPlots markup via
// fmt.Stringer. Rendering is a pure function of the node's own fields; the
// one-option-per-line layout is a readability contract for the generated
// source and is relied upon by output-diffing tests.
package figure
