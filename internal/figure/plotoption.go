package figure

import (
	"fmt"

	"github.com/vk/texfig/internal/options"
)

// PlotOption is a presentation setting on a two-dimensional plot or
// histogram, written into the \addplot[...] option block.
type PlotOption struct {
	kind string
	text string
}

// Kind reports the option's override identity.
func (o PlotOption) Kind() string { return o.kind }

// String reports the option's markup spelling.
func (o PlotOption) String() string { return o.text }

// CustomPlotOption is a free-form option written verbatim. Custom options
// never override each other.
func CustomPlotOption(text string) PlotOption {
	return PlotOption{kind: options.KindCustom, text: text}
}

// PlotType controls how the coordinate series is drawn.
func PlotType(t Type2D) PlotOption {
	return PlotOption{kind: "type", text: t.String()}
}

// XError controls the character of x-coordinate error bars. Bars are not
// drawn unless XErrorDirection is also set.
func XError(c ErrorCharacter) PlotOption {
	return PlotOption{kind: "x error", text: fmt.Sprintf("error bars/x %s", c)}
}

// XErrorDirection controls the direction of x-coordinate error bars. Bars are
// not drawn unless XError is also set.
func XErrorDirection(d ErrorDirection) PlotOption {
	return PlotOption{kind: "x error dir", text: fmt.Sprintf("error bars/x dir=%s", d)}
}

// YError controls the character of y-coordinate error bars. Bars are not
// drawn unless YErrorDirection is also set.
func YError(c ErrorCharacter) PlotOption {
	return PlotOption{kind: "y error", text: fmt.Sprintf("error bars/y %s", c)}
}

// YErrorDirection controls the direction of y-coordinate error bars. Bars are
// not drawn unless YError is also set.
func YErrorDirection(d ErrorDirection) PlotOption {
	return PlotOption{kind: "y error dir", text: fmt.Sprintf("error bars/y dir=%s", d)}
}

// Type2D is the drawing style of a two-dimensional coordinate series.
type Type2D struct {
	text string
}

// String reports the PGFPlots spelling of the plot type.
func (t Type2D) String() string { return t.text }

// SharpPlot connects coordinates with straight lines.
func SharpPlot() Type2D { return Type2D{text: "sharp plot"} }

// Smooth interpolates smoothly between successive points. Tension controls
// how round the curve is; 0.55 is a reasonable starting value.
func Smooth(tension float64) Type2D {
	return Type2D{text: fmt.Sprintf("smooth, tension=%s", formatFloat(tension))}
}

// ConstLeft connects coordinates with horizontal and vertical lines, marks to
// the left of each horizontal line.
func ConstLeft() Type2D { return Type2D{text: "const plot mark left"} }

// ConstRight is ConstLeft with marks to the right of each horizontal line.
func ConstRight() Type2D { return Type2D{text: "const plot mark right"} }

// ConstMid is ConstLeft with marks in the middle of each horizontal line.
func ConstMid() Type2D { return Type2D{text: "const plot mark mid"} }

// JumpLeft is ConstLeft without the vertical lines.
func JumpLeft() Type2D { return Type2D{text: "jump mark left"} }

// JumpRight is ConstRight without the vertical lines.
func JumpRight() Type2D { return Type2D{text: "jump mark right"} }

// JumpMid is ConstMid without the vertical lines.
func JumpMid() Type2D { return Type2D{text: "jump mark mid"} }

// XBar draws horizontal bars between the y = 0 line and each coordinate.
// Width and shift are in pt units unless the document sets compat 1.7 or
// higher, in which case they are axis units.
func XBar(barWidth, barShift float64) Type2D {
	return Type2D{text: fmt.Sprintf("xbar, bar width=%s, bar shift=%s",
		formatFloat(barWidth), formatFloat(barShift))}
}

// YBar draws vertical bars between the x = 0 line and each coordinate.
func YBar(barWidth, barShift float64) Type2D {
	return Type2D{text: fmt.Sprintf("ybar, bar width=%s, bar shift=%s",
		formatFloat(barWidth), formatFloat(barShift))}
}

// XComb is XBar drawing single horizontal lines instead of rectangles.
func XComb() Type2D { return Type2D{text: "xcomb"} }

// YComb is YBar drawing single vertical lines instead of rectangles.
func YComb() Type2D { return Type2D{text: "ycomb"} }

// OnlyMarks draws markers only.
func OnlyMarks() Type2D { return Type2D{text: "only marks"} }

// ErrorCharacter controls whether error magnitudes are absolute values or
// relative to the coordinate value.
type ErrorCharacter int

const (
	// ErrorAbsolute treats error magnitudes as absolute values.
	ErrorAbsolute ErrorCharacter = iota
	// ErrorRelative treats error magnitudes as relative to the coordinate.
	ErrorRelative
)

// String reports the PGFPlots spelling of the error character.
func (c ErrorCharacter) String() string {
	if c == ErrorRelative {
		return "explicit relative"
	}
	return "explicit"
}

// ParseErrorCharacter converts a configuration string into an ErrorCharacter.
func ParseErrorCharacter(name string) (ErrorCharacter, error) {
	switch name {
	case "absolute":
		return ErrorAbsolute, nil
	case "relative":
		return ErrorRelative, nil
	default:
		return 0, fmt.Errorf("unknown error character %q: must be 'absolute' or 'relative'", name)
	}
}

// ErrorDirection controls which bounds of an error bar are drawn.
type ErrorDirection int

const (
	// ErrorDirectionNone draws no error bars.
	ErrorDirectionNone ErrorDirection = iota
	// ErrorDirectionPlus draws only upper bounds.
	ErrorDirectionPlus
	// ErrorDirectionMinus draws only lower bounds.
	ErrorDirectionMinus
	// ErrorDirectionBoth draws upper and lower bounds.
	ErrorDirectionBoth
)

// String reports the PGFPlots spelling of the error direction.
func (d ErrorDirection) String() string {
	switch d {
	case ErrorDirectionPlus:
		return "plus"
	case ErrorDirectionMinus:
		return "minus"
	case ErrorDirectionBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseErrorDirection converts a configuration string into an ErrorDirection.
func ParseErrorDirection(name string) (ErrorDirection, error) {
	switch name {
	case "none":
		return ErrorDirectionNone, nil
	case "plus":
		return ErrorDirectionPlus, nil
	case "minus":
		return ErrorDirectionMinus, nil
	case "both":
		return ErrorDirectionBoth, nil
	default:
		return 0, fmt.Errorf("unknown error direction %q: must be 'none', 'plus', 'minus' or 'both'", name)
	}
}
