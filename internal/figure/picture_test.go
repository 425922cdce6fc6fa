package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPictureEmpty(t *testing.T) {
	assert.Equal(t, "\\begin{tikzpicture}\n\\end{tikzpicture}", NewPicture().String())
}

func TestPictureRender(t *testing.T) {
	picture := NewPicture()
	picture.AddOption(CustomPictureOption("scale=2"))
	picture.AddAxis(NewAxis())

	expected := "\\begin{tikzpicture}[\n" +
		"\tscale=2,\n" +
		"]\n" +
		"\\begin{axis}\n" +
		"\\end{axis}\n" +
		"\\end{tikzpicture}"
	assert.Equal(t, expected, picture.String())
}

func TestPictureRequiredLibrariesUnion(t *testing.T) {
	first := NewAxis()
	first.AddPlot(NewHistogram())
	second := NewAxis()
	second.AddPlot(NewHistogram())

	picture := NewPicture()
	picture.AddAxis(first)
	picture.AddAxis(second)

	assert.Equal(t, []Library{LibraryStatistics}, picture.RequiredLibraries())
}

func TestPictureRawEnvironment(t *testing.T) {
	picture := NewPicture()
	picture.AddEnvironment(RawEnvironment("\\node at (0,0) {origin};"))

	assert.Contains(t, picture.String(), "\\node at (0,0) {origin};\n")
	assert.Empty(t, picture.RequiredLibraries())
}

func TestLibraryImportLine(t *testing.T) {
	assert.Equal(t, "\\usepgfplotslibrary{statistics}", LibraryStatistics.String())
	assert.Equal(t, "\\usepgfplotslibrary{colormaps}", Library("colormaps").String())
}
