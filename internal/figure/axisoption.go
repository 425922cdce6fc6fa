package figure

import (
	"fmt"
	"strings"

	"github.com/vk/texfig/internal/options"
)

// AxisOption is a presentation setting on an Axis environment, written into
// the \begin{axis}[...] option block.
type AxisOption struct {
	kind string
	text string
}

// Kind reports the option's override identity.
func (o AxisOption) Kind() string { return o.kind }

// String reports the option's markup spelling.
func (o AxisOption) String() string { return o.text }

// CustomAxisOption is a free-form option written verbatim. Custom options
// never override each other.
func CustomAxisOption(text string) AxisOption {
	return AxisOption{kind: options.KindCustom, text: text}
}

// XMin sets the x axis minimum limit.
func XMin(v float64) AxisOption {
	return AxisOption{kind: "xmin", text: fmt.Sprintf("xmin={%s}", formatFloat(v))}
}

// XMax sets the x axis maximum limit.
func XMax(v float64) AxisOption {
	return AxisOption{kind: "xmax", text: fmt.Sprintf("xmax={%s}", formatFloat(v))}
}

// YMin sets the y axis minimum limit.
func YMin(v float64) AxisOption {
	return AxisOption{kind: "ymin", text: fmt.Sprintf("ymin={%s}", formatFloat(v))}
}

// YMax sets the y axis maximum limit.
func YMax(v float64) AxisOption {
	return AxisOption{kind: "ymax", text: fmt.Sprintf("ymax={%s}", formatFloat(v))}
}

// ZMin sets the z axis minimum limit.
func ZMin(v float64) AxisOption {
	return AxisOption{kind: "zmin", text: fmt.Sprintf("zmin={%s}", formatFloat(v))}
}

// ZMax sets the z axis maximum limit.
func ZMax(v float64) AxisOption {
	return AxisOption{kind: "zmax", text: fmt.Sprintf("zmax={%s}", formatFloat(v))}
}

// Min sets the minimum limit of all axes at once.
func Min(v float64) AxisOption {
	return AxisOption{kind: "min", text: fmt.Sprintf("min={%s}", formatFloat(v))}
}

// Max sets the maximum limit of all axes at once.
func Max(v float64) AxisOption {
	return AxisOption{kind: "max", text: fmt.Sprintf("max={%s}", formatFloat(v))}
}

// XMode controls the scaling of the x axis.
func XMode(s Scale) AxisOption {
	return AxisOption{kind: "xmode", text: fmt.Sprintf("xmode=%s", s)}
}

// YMode controls the scaling of the y axis.
func YMode(s Scale) AxisOption {
	return AxisOption{kind: "ymode", text: fmt.Sprintf("ymode=%s", s)}
}

// Title sets the title of the axis environment. The value may be valid LaTeX,
// e.g. inline math.
func Title(title string) AxisOption {
	return AxisOption{kind: "title", text: fmt.Sprintf("title={%s}", title)}
}

// XLabel sets the label of the x axis.
func XLabel(label string) AxisOption {
	return AxisOption{kind: "xlabel", text: fmt.Sprintf("xlabel={%s}", label)}
}

// YLabel sets the label of the y axis.
func YLabel(label string) AxisOption {
	return AxisOption{kind: "ylabel", text: fmt.Sprintf("ylabel={%s}", label)}
}

// XTick places x axis ticks at the given positions.
func XTick(t Ticks) AxisOption {
	return AxisOption{kind: "xtick", text: fmt.Sprintf("xtick={%s}", t)}
}

// YTick places y axis ticks at the given positions.
func YTick(t Ticks) AxisOption {
	return AxisOption{kind: "ytick", text: fmt.Sprintf("ytick={%s}", t)}
}

// XTickLabels assigns a label to each x axis tick position.
func XTickLabels(l TickLabels) AxisOption {
	return AxisOption{kind: "xticklabels", text: fmt.Sprintf("xticklabels={%s}", l)}
}

// YTickLabels assigns a label to each y axis tick position.
func YTickLabels(l TickLabels) AxisOption {
	return AxisOption{kind: "yticklabels", text: fmt.Sprintf("yticklabels={%s}", l)}
}

// ZTickLabels assigns a label to each z axis tick position.
func ZTickLabels(l TickLabels) AxisOption {
	return AxisOption{kind: "zticklabels", text: fmt.Sprintf("zticklabels={%s}", l)}
}

// XAxisLine controls the x axis line type.
func XAxisLine(v AxisXLine) AxisOption {
	return AxisOption{kind: "axis x line", text: fmt.Sprintf("axis x line=%s", v)}
}

// XAxisLineStar is XAxisLine without correcting the positions of labels and
// tick lines affected by the changed axis line.
func XAxisLineStar(v AxisXLine) AxisOption {
	return AxisOption{kind: "axis x line*", text: fmt.Sprintf("axis x line*=%s", v)}
}

// YAxisLine controls the y axis line type.
func YAxisLine(v AxisLine) AxisOption {
	return AxisOption{kind: "axis y line", text: fmt.Sprintf("axis y line=%s", v)}
}

// YAxisLineStar is YAxisLine without position corrections.
func YAxisLineStar(v AxisLine) AxisOption {
	return AxisOption{kind: "axis y line*", text: fmt.Sprintf("axis y line*=%s", v)}
}

// ZAxisLine controls the z axis line type.
func ZAxisLine(v AxisLine) AxisOption {
	return AxisOption{kind: "axis z line", text: fmt.Sprintf("axis z line=%s", v)}
}

// ZAxisLineStar is ZAxisLine without position corrections.
func ZAxisLineStar(v AxisLine) AxisOption {
	return AxisOption{kind: "axis z line*", text: fmt.Sprintf("axis z line*=%s", v)}
}

// AxisLines controls the line type of every axis at once.
func AxisLines(v AxisLine) AxisOption {
	return AxisOption{kind: "axis lines", text: fmt.Sprintf("axis lines=%s", v)}
}

// AxisLinesStar is AxisLines without position corrections.
func AxisLinesStar(v AxisLine) AxisOption {
	return AxisOption{kind: "axis lines*", text: fmt.Sprintf("axis lines*=%s", v)}
}

// Grid controls the axis grid lines. Major grid lines are placed at the
// normal tick positions, minor grid lines at minor ticks.
func Grid(m GridMode) AxisOption {
	return AxisOption{kind: "grid", text: fmt.Sprintf("grid=%s", m)}
}

// Scale controls the scaling of an axis.
type Scale int

const (
	// ScaleNormal is linear scaling of the coordinates.
	ScaleNormal Scale = iota
	// ScaleLog applies the natural logarithm to each coordinate.
	ScaleLog
)

// String reports the PGFPlots spelling of the scale.
func (s Scale) String() string {
	if s == ScaleLog {
		return "log"
	}
	return "normal"
}

// ParseScale converts a configuration string into a Scale.
func ParseScale(name string) (Scale, error) {
	switch name {
	case "normal":
		return ScaleNormal, nil
	case "log":
		return ScaleLog, nil
	default:
		return 0, fmt.Errorf("unknown axis scale %q: must be 'normal' or 'log'", name)
	}
}

// GridMode selects which grid lines are drawn.
type GridMode int

const (
	// GridNone disables grid lines.
	GridNone GridMode = iota
	// GridMajor places grid lines at the normal tick positions.
	GridMajor
	// GridMinor places grid lines at the minor tick positions.
	GridMinor
	// GridBoth places grid lines at both.
	GridBoth
)

// String reports the PGFPlots spelling of the grid mode.
func (m GridMode) String() string {
	switch m {
	case GridMajor:
		return "major"
	case GridMinor:
		return "minor"
	case GridBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseGridMode converts a configuration string into a GridMode.
func ParseGridMode(name string) (GridMode, error) {
	switch name {
	case "none":
		return GridNone, nil
	case "major":
		return GridMajor, nil
	case "minor":
		return GridMinor, nil
	case "both":
		return GridBoth, nil
	default:
		return 0, fmt.Errorf("unknown grid mode %q: must be 'none', 'major', 'minor' or 'both'", name)
	}
}

// AxisXLine is the appearance of the x axis line.
type AxisXLine int

const (
	// AxisXLineBox draws the full axis box.
	AxisXLineBox AxisXLine = iota
	// AxisXLineTop draws the line at the top of the box.
	AxisXLineTop
	// AxisXLineMiddle draws the line through the middle.
	AxisXLineMiddle
	// AxisXLineCenter draws the line through the center.
	AxisXLineCenter
	// AxisXLineBottom draws the line at the bottom of the box.
	AxisXLineBottom
	// AxisXLineNone draws no x axis line.
	AxisXLineNone
)

// String reports the PGFPlots spelling of the x axis line type.
func (v AxisXLine) String() string {
	switch v {
	case AxisXLineTop:
		return "top"
	case AxisXLineMiddle:
		return "middle"
	case AxisXLineCenter:
		return "center"
	case AxisXLineBottom:
		return "bottom"
	case AxisXLineNone:
		return "none"
	default:
		return "box"
	}
}

// AxisLine is the appearance of the y or z axis line, or of all axis lines.
type AxisLine int

const (
	// AxisLineBox draws the full axis box.
	AxisLineBox AxisLine = iota
	// AxisLineLeft draws the line on the left of the box.
	AxisLineLeft
	// AxisLineMiddle draws the line through the middle.
	AxisLineMiddle
	// AxisLineCenter draws the line through the center.
	AxisLineCenter
	// AxisLineRight draws the line on the right of the box.
	AxisLineRight
	// AxisLineNone draws no axis line.
	AxisLineNone
)

// String reports the PGFPlots spelling of the axis line type.
func (v AxisLine) String() string {
	switch v {
	case AxisLineLeft:
		return "left"
	case AxisLineMiddle:
		return "middle"
	case AxisLineCenter:
		return "center"
	case AxisLineRight:
		return "right"
	case AxisLineNone:
		return "none"
	default:
		return "box"
	}
}

// Ticks is a list of positions where axis ticks are placed.
type Ticks []float64

// String renders the positions as a comma-joined list.
func (t Ticks) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}

// TickLabels is a list of labels assigned to tick positions in order.
type TickLabels []string

// String renders the labels as a comma-joined list.
func (l TickLabels) String() string {
	return strings.Join(l, ", ")
}
