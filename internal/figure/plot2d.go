package figure

import (
	"strings"

	"github.com/vk/texfig/internal/options"
)

// Plot2D is a two-dimensional coordinate series. The coordinate sequence is
// rendered verbatim in insertion order and determines the drawn path.
//
// Adding a Plot2D to an Axis is equivalent to:
//
//	\addplot[PlotOptions]
//	    % coordinates;
type Plot2D struct {
	opts   options.Set[PlotOption]
	coords []Coordinate
}

// NewPlot2D creates a new, empty two-dimensional plot.
func NewPlot2D() *Plot2D {
	return &Plot2D{}
}

// AddOption adds an option controlling the appearance of the plot,
// overwriting any previous mutually exclusive option.
func (p *Plot2D) AddOption(opt PlotOption) {
	p.opts.Add(opt)
}

// AddCoordinate appends a coordinate to the series.
func (p *Plot2D) AddCoordinate(c Coordinate) {
	p.coords = append(p.coords, c)
}

// SetCoordinates replaces the coordinate series.
func (p *Plot2D) SetCoordinates(coords []Coordinate) {
	p.coords = append(p.coords[:0:0], coords...)
}

// Coordinates returns the coordinate series in render order.
func (p *Plot2D) Coordinates() []Coordinate {
	return p.coords
}

// RequiredLibrary reports no library requirement for plain 2D plots.
func (*Plot2D) RequiredLibrary() (Library, bool) { return "", false }

func (*Plot2D) isPlot() {}

// String renders the plot as an \addplot command with its option block and a
// coordinates data block, one entry per line.
func (p *Plot2D) String() string {
	var sb strings.Builder
	sb.WriteString("\t\\addplot[")
	// One option per line so a human can find individual entries later.
	if !p.opts.Empty() {
		sb.WriteString("\n")
		for _, opt := range p.opts.All() {
			sb.WriteString("\t\t" + opt.String() + ",\n")
		}
		sb.WriteString("\t")
	}
	sb.WriteString("] coordinates {\n")

	for _, coord := range p.coords {
		sb.WriteString("\t\t" + coord.String() + "\n")
	}

	sb.WriteString("\t};")
	return sb.String()
}
