package figure

import "fmt"

// Library is a PGFPlots library that must be activated in the document
// preamble before the plots requiring it can compile. Values outside the
// named constants are written verbatim, which covers libraries this package
// has no dedicated support for.
type Library string

const (
	// LibraryClickable generates small popups whenever one clicks into a plot.
	LibraryClickable Library = "clickable"
	// LibraryDatePlot allows using dates as input coordinates.
	LibraryDatePlot Library = "dateplot"
	// LibraryExternal exports pictures into separate .pdf (or .eps) files.
	LibraryExternal Library = "external"
	// LibraryFillBetween fills the area between two arbitrary named plots.
	LibraryFillBetween Library = "fillbetween"
	// LibraryStatistics provides plot handlers for statistics, e.g.
	// histograms and box plots.
	LibraryStatistics Library = "statistics"
	// LibraryUnits typesets units in labels automatically.
	LibraryUnits Library = "units"
)

// String returns the preamble import line for the library.
func (l Library) String() string {
	return fmt.Sprintf("\\usepgfplotslibrary{%s}", string(l))
}

// mergeLibraries appends the given libraries to dst, skipping any already
// present, so the result keeps first-seen order.
func mergeLibraries(dst []Library, libs ...Library) []Library {
	for _, lib := range libs {
		seen := false
		for _, existing := range dst {
			if existing == lib {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, lib)
		}
	}
	return dst
}
