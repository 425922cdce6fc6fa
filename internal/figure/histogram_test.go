package figure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramBareFraming(t *testing.T) {
	hist := NewHistogram()
	hist.AddSample(1.5)

	// Without hist options the hist key renders bare.
	expected := "\t\\addplot+ [\n" +
		"\t\thist,\n" +
		"\t] table [row sep=\\\\, y index=0] {\n" +
		"\t\tdata \\\\\n" +
		"\t\t1.5 \\\\\n" +
		"\t};"
	assert.Equal(t, expected, hist.String())
}

func TestHistogramOptionFraming(t *testing.T) {
	hist := NewHistogram()
	hist.SetBins(2)
	hist.AddHistOption(Density(true))
	hist.AddOption(CustomPlotOption("fill=blue"))
	hist.SetSamples([]float64{1, 2})

	expected := "\t\\addplot+ [\n" +
		"\t\thist={\n" +
		"\t\t\tbins=2,\n" +
		"\t\t\tdensity=true,\n" +
		"\t\t}\n" +
		"\t\tfill=blue,\n" +
		"\t] table [row sep=\\\\, y index=0] {\n" +
		"\t\tdata \\\\\n" +
		"\t\t1 \\\\\n" +
		"\t\t2 \\\\\n" +
		"\t};"
	assert.Equal(t, expected, hist.String())
}

func TestHistogramOptionOverride(t *testing.T) {
	hist := NewHistogram()
	hist.SetBins(2)
	hist.SetBins(4)
	hist.AddHistOption(CustomHistogramOption("x=resp"))
	hist.AddHistOption(CustomHistogramOption("x=resp"))

	rendered := hist.String()
	assert.NotContains(t, rendered, "bins=2")
	assert.Contains(t, rendered, "bins=4,")
	// Custom entries accumulate instead of overriding.
	assert.Equal(t, 2, strings.Count(rendered, "x=resp,"))
}

func TestHistogramRequiredLibrary(t *testing.T) {
	lib, required := NewHistogram().RequiredLibrary()
	assert.True(t, required)
	assert.Equal(t, LibraryStatistics, lib)
}

func TestHistogramOptionSpellings(t *testing.T) {
	assert.Equal(t, "data min={0.5}", DataMin(0.5).String())
	assert.Equal(t, "data max={9}", DataMax(9).String())
	assert.Equal(t, "bins=10", Bins(10).String())
	assert.Equal(t, "intervals=false", Intervals(false).String())
	assert.Equal(t, "cumulative=true", Cumulative(true).String())
	assert.Equal(t, "density=true", Density(true).String())
	assert.Equal(t, "handler/.style={ybar interval}", Handler("ybar interval").String())
}
