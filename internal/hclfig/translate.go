package hclfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/texfig/internal/document"
	"github.com/vk/texfig/internal/figure"
)

// translateFigure converts a decoded figure block into a document tree.
func translateFigure(b *figureBlock) (*document.Document, error) {
	doc := document.New()

	if b.Compat != nil {
		if err := doc.SetCompatVersion(*b.Compat); err != nil {
			return nil, err
		}
	}
	for _, pkg := range b.Packages {
		doc.AddPackage(document.NewPackage(pkg.Name, pkg.Options...))
	}
	if len(b.Pictures) == 0 {
		return nil, fmt.Errorf("figure has no picture blocks")
	}
	for i, pic := range b.Pictures {
		picture, err := translatePicture(pic)
		if err != nil {
			return nil, fmt.Errorf("picture %d: %w", i+1, err)
		}
		doc.AddPicture(picture)
	}
	return doc, nil
}

func translatePicture(b *pictureBlock) (*figure.Picture, error) {
	picture := figure.NewPicture()
	for _, opt := range b.Options {
		picture.AddOption(figure.CustomPictureOption(opt))
	}
	for i, ax := range b.Axes {
		axis, err := translateAxis(ax)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i+1, err)
		}
		picture.AddAxis(axis)
	}
	return picture, nil
}

func translateAxis(b *axisBlock) (*figure.Axis, error) {
	axis := figure.NewAxis()

	if b.Title != nil {
		axis.SetTitle(*b.Title)
	}
	if b.XLabel != nil {
		axis.SetXLabel(*b.XLabel)
	}
	if b.YLabel != nil {
		axis.SetYLabel(*b.YLabel)
	}
	if b.XMin != nil {
		axis.AddOption(figure.XMin(*b.XMin))
	}
	if b.XMax != nil {
		axis.AddOption(figure.XMax(*b.XMax))
	}
	if b.YMin != nil {
		axis.AddOption(figure.YMin(*b.YMin))
	}
	if b.YMax != nil {
		axis.AddOption(figure.YMax(*b.YMax))
	}
	if b.XMode != nil {
		scale, err := figure.ParseScale(*b.XMode)
		if err != nil {
			return nil, fmt.Errorf("x_mode: %w", err)
		}
		axis.AddOption(figure.XMode(scale))
	}
	if b.YMode != nil {
		scale, err := figure.ParseScale(*b.YMode)
		if err != nil {
			return nil, fmt.Errorf("y_mode: %w", err)
		}
		axis.AddOption(figure.YMode(scale))
	}
	if b.Grid != nil {
		mode, err := figure.ParseGridMode(*b.Grid)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		axis.AddOption(figure.Grid(mode))
	}
	if len(b.XTicks) > 0 {
		axis.AddOption(figure.XTick(figure.Ticks(b.XTicks)))
	}
	if len(b.YTicks) > 0 {
		axis.AddOption(figure.YTick(figure.Ticks(b.YTicks)))
	}
	if len(b.XTickLabels) > 0 {
		axis.AddOption(figure.XTickLabels(figure.TickLabels(b.XTickLabels)))
	}
	if len(b.YTickLabels) > 0 {
		axis.AddOption(figure.YTickLabels(figure.TickLabels(b.YTickLabels)))
	}
	for _, opt := range b.Options {
		axis.AddOption(figure.CustomAxisOption(opt))
	}

	// The remaining body holds the plot, histogram, and draw children. They
	// are read back through a block schema so they render in source order.
	content, diags := b.Remain.Content(axisChildSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	for _, block := range content.Blocks {
		switch block.Type {
		case "plot":
			var pb plotBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &pb); diags.HasErrors() {
				return nil, fmt.Errorf("plot block: %w", diags)
			}
			plot, err := translatePlot(&pb)
			if err != nil {
				return nil, fmt.Errorf("plot block: %w", err)
			}
			axis.AddPlot(plot)
		case "histogram":
			var hb histogramBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &hb); diags.HasErrors() {
				return nil, fmt.Errorf("histogram block: %w", diags)
			}
			hist, err := translateHistogram(&hb)
			if err != nil {
				return nil, fmt.Errorf("histogram block: %w", err)
			}
			axis.AddPlot(hist)
		case "draw":
			var db drawBlock
			if diags := gohcl.DecodeBody(block.Body, nil, &db); diags.HasErrors() {
				return nil, fmt.Errorf("draw block: %w", diags)
			}
			axis.AddPlot(figure.Draw(db.Command))
		}
	}
	return axis, nil
}

func translatePlot(b *plotBlock) (*figure.Plot2D, error) {
	plot := figure.NewPlot2D()

	if b.Type != nil {
		plotType, err := parsePlotType(b)
		if err != nil {
			return nil, err
		}
		plot.AddOption(figure.PlotType(plotType))
	}
	if b.XError != nil {
		character, err := figure.ParseErrorCharacter(*b.XError)
		if err != nil {
			return nil, fmt.Errorf("x_error: %w", err)
		}
		plot.AddOption(figure.XError(character))
	}
	if b.XErrorDirection != nil {
		direction, err := figure.ParseErrorDirection(*b.XErrorDirection)
		if err != nil {
			return nil, fmt.Errorf("x_error_direction: %w", err)
		}
		plot.AddOption(figure.XErrorDirection(direction))
	}
	if b.YError != nil {
		character, err := figure.ParseErrorCharacter(*b.YError)
		if err != nil {
			return nil, fmt.Errorf("y_error: %w", err)
		}
		plot.AddOption(figure.YError(character))
	}
	if b.YErrorDirection != nil {
		direction, err := figure.ParseErrorDirection(*b.YErrorDirection)
		if err != nil {
			return nil, fmt.Errorf("y_error_direction: %w", err)
		}
		plot.AddOption(figure.YErrorDirection(direction))
	}
	for _, opt := range b.Options {
		plot.AddOption(figure.CustomPlotOption(opt))
	}

	coords, err := decodeCoordinates(b.Coordinates)
	if err != nil {
		return nil, err
	}
	plot.SetCoordinates(coords)
	return plot, nil
}

// decodeCoordinates evaluates the coordinates expression into a coordinate
// series. Each row is either [x, y] or [x, y, x_error, y_error].
func decodeCoordinates(expr hcl.Expression) ([]figure.Coordinate, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("coordinates: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("coordinates must be a list of coordinate rows")
	}

	var coords []figure.Coordinate
	row := 0
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		row++

		nums, err := decodeNumberRow(elem)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", row, err)
		}
		switch len(nums) {
		case 2:
			coords = append(coords, figure.XY(nums[0], nums[1]))
		case 4:
			coords = append(coords, figure.XY(nums[0], nums[1]).
				WithXError(nums[2]).WithYError(nums[3]))
		default:
			return nil, fmt.Errorf(
				"coordinate %d has %d components, want [x, y] or [x, y, x_error, y_error]",
				row, len(nums))
		}
	}
	return coords, nil
}

// decodeNumberRow converts one coordinate row into its numeric components.
func decodeNumberRow(v cty.Value) ([]float64, error) {
	if v.IsNull() || !v.CanIterateElements() {
		return nil, fmt.Errorf("row must be a list of numbers")
	}

	var nums []float64
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		converted, err := convert.Convert(elem, cty.Number)
		if err != nil || converted.IsNull() {
			return nil, fmt.Errorf("row component %d is not a number", len(nums)+1)
		}
		f, _ := converted.AsBigFloat().Float64()
		nums = append(nums, f)
	}
	return nums, nil
}

// defaultTension matches what smooth curves use when the figure does not
// set one.
const defaultTension = 0.55

func parsePlotType(b *plotBlock) (figure.Type2D, error) {
	switch *b.Type {
	case "sharp":
		return figure.SharpPlot(), nil
	case "smooth":
		tension := defaultTension
		if b.Tension != nil {
			tension = *b.Tension
		}
		return figure.Smooth(tension), nil
	case "const_left":
		return figure.ConstLeft(), nil
	case "const_right":
		return figure.ConstRight(), nil
	case "const_mid":
		return figure.ConstMid(), nil
	case "jump_left":
		return figure.JumpLeft(), nil
	case "jump_right":
		return figure.JumpRight(), nil
	case "jump_mid":
		return figure.JumpMid(), nil
	case "xbar", "ybar":
		if b.BarWidth == nil || b.BarShift == nil {
			return figure.Type2D{}, fmt.Errorf("type %q requires bar_width and bar_shift", *b.Type)
		}
		if *b.Type == "xbar" {
			return figure.XBar(*b.BarWidth, *b.BarShift), nil
		}
		return figure.YBar(*b.BarWidth, *b.BarShift), nil
	case "xcomb":
		return figure.XComb(), nil
	case "ycomb":
		return figure.YComb(), nil
	case "only_marks":
		return figure.OnlyMarks(), nil
	default:
		return figure.Type2D{}, fmt.Errorf("unknown plot type %q", *b.Type)
	}
}

func translateHistogram(b *histogramBlock) (*figure.Histogram, error) {
	hist := figure.NewHistogram()
	hist.SetSamples(b.Samples)

	if b.Bins != nil {
		if *b.Bins <= 0 {
			return nil, fmt.Errorf("bins must be positive, got %d", *b.Bins)
		}
		hist.SetBins(*b.Bins)
	}
	if b.DataMin != nil {
		hist.AddHistOption(figure.DataMin(*b.DataMin))
	}
	if b.DataMax != nil {
		hist.AddHistOption(figure.DataMax(*b.DataMax))
	}
	if b.Density {
		hist.Normalize()
	}
	if b.Cumulative {
		hist.AddHistOption(figure.Cumulative(true))
	}
	if b.Intervals != nil {
		hist.AddHistOption(figure.Intervals(*b.Intervals))
	}
	if b.Handler != nil {
		hist.AddHistOption(figure.Handler(*b.Handler))
	}
	for _, opt := range b.HistOptions {
		hist.AddHistOption(figure.CustomHistogramOption(opt))
	}
	for _, opt := range b.Options {
		hist.AddOption(figure.CustomPlotOption(opt))
	}
	return hist, nil
}
