package figure

import (
	"strings"

	"github.com/vk/texfig/internal/options"
)

// Axis is a coordinate-system environment inside a Picture, equivalent to the
// PGFPlots axis environment:
//
//	\begin{axis}[AxisOptions]
//	    % plots
//	\end{axis}
type Axis struct {
	opts  options.Set[AxisOption]
	plots []Plot
}

// NewAxis creates a new, empty axis environment.
func NewAxis() *Axis {
	return &Axis{}
}

// AddOption adds an option controlling the appearance of the axis,
// overwriting any previous mutually exclusive option.
func (a *Axis) AddOption(opt AxisOption) {
	a.opts.Add(opt)
}

// AddPlot appends a plot. Plots render in insertion order, so later plots
// visually overlay earlier ones.
func (a *Axis) AddPlot(p Plot) {
	a.plots = append(a.plots, p)
}

// SetTitle sets the title of the axis environment.
func (a *Axis) SetTitle(title string) {
	a.AddOption(Title(title))
}

// SetXLabel sets the label of the x axis.
func (a *Axis) SetXLabel(label string) {
	a.AddOption(XLabel(label))
}

// SetYLabel sets the label of the y axis.
func (a *Axis) SetYLabel(label string) {
	a.AddOption(YLabel(label))
}

// RequiredLibraries returns the optional PGFPlots libraries required by the
// contained plots, de-duplicated in first-seen order.
func (a *Axis) RequiredLibraries() []Library {
	var libs []Library
	for _, p := range a.plots {
		if lib, ok := p.RequiredLibrary(); ok {
			libs = mergeLibraries(libs, lib)
		}
	}
	return libs
}

func (*Axis) isEnvironment() {}

// String renders the axis environment with its option block and plots.
func (a *Axis) String() string {
	var sb strings.Builder
	sb.WriteString("\\begin{axis}")
	// One option per line so a human can find individual entries later.
	if !a.opts.Empty() {
		sb.WriteString("[\n")
		for _, opt := range a.opts.All() {
			sb.WriteString("\t" + opt.String() + ",\n")
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	for _, p := range a.plots {
		sb.WriteString(p.String() + "\n")
	}

	sb.WriteString("\\end{axis}")
	return sb.String()
}
