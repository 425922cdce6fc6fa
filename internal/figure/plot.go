package figure

import "fmt"

// Plot is one drawable element inside an Axis. The variant set is closed:
// a free-form draw command, a two-dimensional coordinate series, or a
// histogram. Rendering order inside an axis is insertion order, so later
// plots visually overlay earlier ones.
type Plot interface {
	fmt.Stringer

	// RequiredLibrary reports the optional PGFPlots library the plot depends
	// on, if any.
	RequiredLibrary() (Library, bool)

	isPlot()
}

// Draw is a free-form TikZ draw command, written verbatim into the axis body.
// It covers markup this package has no dedicated plot type for.
type Draw string

// String renders the draw command as a terminated \draw statement.
func (d Draw) String() string {
	return fmt.Sprintf("\\draw %s;", string(d))
}

// RequiredLibrary reports no library requirement for draw commands.
func (Draw) RequiredLibrary() (Library, bool) { return "", false }

func (Draw) isPlot() {}
