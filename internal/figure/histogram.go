package figure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/texfig/internal/options"
)

// HistogramOption is a binning or normalization control passed inside the
// hist={...} block of a histogram plot.
type HistogramOption struct {
	kind string
	text string
}

// Kind reports the option's override identity.
func (o HistogramOption) Kind() string { return o.kind }

// String reports the option's markup spelling.
func (o HistogramOption) String() string { return o.text }

// CustomHistogramOption is a free-form hist option written verbatim.
func CustomHistogramOption(text string) HistogramOption {
	return HistogramOption{kind: options.KindCustom, text: text}
}

// DataMin provides the minimum of the data range manually. When unset it is
// deduced from the input data.
func DataMin(v float64) HistogramOption {
	return HistogramOption{kind: "data min", text: fmt.Sprintf("data min={%s}", formatFloat(v))}
}

// DataMax provides the maximum of the data range manually.
func DataMax(v float64) HistogramOption {
	return HistogramOption{kind: "data max", text: fmt.Sprintf("data max={%s}", formatFloat(v))}
}

// Bins sets the number of equally sized bins. PGFPlots defaults to 10.
func Bins(n int) HistogramOption {
	return HistogramOption{kind: "bins", text: fmt.Sprintf("bins=%s", strconv.Itoa(n))}
}

// Intervals controls whether N+1 interval endpoints are generated (true, the
// default) or exactly N coordinates (false).
func Intervals(enabled bool) HistogramOption {
	return HistogramOption{kind: "intervals", text: fmt.Sprintf("intervals=%t", enabled)}
}

// Cumulative computes a cumulative histogram: each bin holds the sum of all
// previous bins and itself. Can be combined with Density.
func Cumulative(enabled bool) HistogramOption {
	return HistogramOption{kind: "cumulative", text: fmt.Sprintf("cumulative=%t", enabled)}
}

// Density renormalizes the resulting data points so the overall mass equals
// one. Can be combined with Cumulative.
func Density(enabled bool) HistogramOption {
	return HistogramOption{kind: "density", text: fmt.Sprintf("density=%t", enabled)}
}

// Handler changes how the generated coordinates are visualized. It is a
// style, so it translates to handler/.style={...}.
func Handler(style string) HistogramOption {
	return HistogramOption{kind: "handler", text: fmt.Sprintf("handler/.style={%s}", style)}
}

// Histogram is a statistics plot binning a raw sample sequence. It requires
// the PGFPlots statistics library, which the owning document imports
// automatically.
//
// Adding a Histogram to an Axis is equivalent to:
//
//	\addplot+ [hist={...}, ...] table [...] {...};
type Histogram struct {
	opts     options.Set[PlotOption]
	histOpts options.Set[HistogramOption]
	data     []float64
}

// NewHistogram creates a new, empty histogram plot.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// AddOption adds a general plot option, overwriting any previous mutually
// exclusive option.
func (h *Histogram) AddOption(opt PlotOption) {
	h.opts.Add(opt)
}

// AddHistOption adds a histogram-specific option, overwriting any previous
// mutually exclusive option.
func (h *Histogram) AddHistOption(opt HistogramOption) {
	h.histOpts.Add(opt)
}

// AddSample appends a raw sample value.
func (h *Histogram) AddSample(v float64) {
	h.data = append(h.data, v)
}

// SetSamples replaces the raw sample sequence.
func (h *Histogram) SetSamples(data []float64) {
	h.data = append(h.data[:0:0], data...)
}

// SetBins sets the number of equally sized bins.
func (h *Histogram) SetBins(n int) {
	h.AddHistOption(Bins(n))
}

// Normalize enables density estimation mode.
func (h *Histogram) Normalize() {
	h.AddHistOption(Density(true))
}

// RequiredLibrary reports the statistics library requirement.
func (*Histogram) RequiredLibrary() (Library, bool) {
	return LibraryStatistics, true
}

func (*Histogram) isPlot() {}

// String renders the histogram as an \addplot+ command with its hist block,
// general options, and a table data block carrying one sample per line.
func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteString("\t\\addplot+ [")

	if !h.histOpts.Empty() {
		sb.WriteString("\n\t\thist={\n")
		for _, opt := range h.histOpts.All() {
			sb.WriteString("\t\t\t" + opt.String() + ",\n")
		}
		sb.WriteString("\t\t}")
	} else {
		sb.WriteString("\n\t\thist,")
	}
	sb.WriteString("\n")

	for _, opt := range h.opts.All() {
		sb.WriteString("\t\t" + opt.String() + ",\n")
	}

	sb.WriteString("\t] table [row sep=\\\\, y index=0] {\n\t\tdata \\\\\n")

	for _, datum := range h.data {
		sb.WriteString("\t\t" + formatFloat(datum) + " \\\\\n")
	}

	sb.WriteString("\t};")
	return sb.String()
}
