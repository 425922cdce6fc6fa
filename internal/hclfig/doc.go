// Package hclfig provides the HCL front end for figure definitions. It is
// responsible for file discovery, parsing, and translating `figure` blocks
// into document trees, keeping plots in the order they appear in the source
// file.
package hclfig
