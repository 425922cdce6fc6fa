package hclfig

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks from a figure file.
type fileRoot struct {
	Figures []*figureBlock `hcl:"figure,block"`
}

// figureBlock represents a `figure` block: one document, compiled to one
// artifact named after its label.
type figureBlock struct {
	Name     string          `hcl:"name,label"`
	Compat   *string         `hcl:"compat,optional"`
	Packages []*packageBlock `hcl:"package,block"`
	Pictures []*pictureBlock `hcl:"picture,block"`
}

// packageBlock represents an extra `\usepackage` import for the preamble.
type packageBlock struct {
	Name    string   `hcl:"name,label"`
	Options []string `hcl:"options,optional"`
}

// pictureBlock represents a `picture` block, one tikzpicture environment.
type pictureBlock struct {
	Options []string     `hcl:"options,optional"`
	Axes    []*axisBlock `hcl:"axis,block"`
}

// axisBlock represents an `axis` block. Its plot, histogram, and draw
// children land in Remain so their source order can be preserved; gohcl
// would otherwise regroup them by block type.
type axisBlock struct {
	Title       *string  `hcl:"title,optional"`
	XLabel      *string  `hcl:"x_label,optional"`
	YLabel      *string  `hcl:"y_label,optional"`
	XMin        *float64 `hcl:"x_min,optional"`
	XMax        *float64 `hcl:"x_max,optional"`
	YMin        *float64 `hcl:"y_min,optional"`
	YMax        *float64 `hcl:"y_max,optional"`
	XMode       *string  `hcl:"x_mode,optional"`
	YMode       *string  `hcl:"y_mode,optional"`
	Grid        *string  `hcl:"grid,optional"`
	XTicks      []float64 `hcl:"x_ticks,optional"`
	YTicks      []float64 `hcl:"y_ticks,optional"`
	XTickLabels []string  `hcl:"x_tick_labels,optional"`
	YTickLabels []string  `hcl:"y_tick_labels,optional"`
	Options     []string `hcl:"options,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

// plotBlock represents a `plot` block inside an axis.
type plotBlock struct {
	Type            *string     `hcl:"type,optional"`
	Tension         *float64    `hcl:"tension,optional"`
	BarWidth        *float64    `hcl:"bar_width,optional"`
	BarShift        *float64    `hcl:"bar_shift,optional"`
	XError          *string     `hcl:"x_error,optional"`
	XErrorDirection *string     `hcl:"x_error_direction,optional"`
	YError          *string     `hcl:"y_error,optional"`
	YErrorDirection *string     `hcl:"y_error_direction,optional"`
	Options         []string       `hcl:"options,optional"`
	Coordinates     hcl.Expression `hcl:"coordinates"`
}

// histogramBlock represents a `histogram` block inside an axis.
type histogramBlock struct {
	Samples     []float64 `hcl:"samples"`
	Bins        *int      `hcl:"bins,optional"`
	DataMin     *float64  `hcl:"data_min,optional"`
	DataMax     *float64  `hcl:"data_max,optional"`
	Density     bool      `hcl:"density,optional"`
	Cumulative  bool      `hcl:"cumulative,optional"`
	Intervals   *bool     `hcl:"intervals,optional"`
	Handler     *string   `hcl:"handler,optional"`
	Options     []string  `hcl:"options,optional"`
	HistOptions []string  `hcl:"hist_options,optional"`
}

// drawBlock represents a raw `draw` block inside an axis.
type drawBlock struct {
	Command string `hcl:"command"`
}

// axisChildSchema matches the ordered children of an axis block.
var axisChildSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "plot"},
		{Type: "histogram"},
		{Type: "draw"},
	},
}
